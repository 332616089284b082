package auth

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const claimsContextKey = "claims"

// StoreClaims stashes verified token claims on the request context for
// downstream handlers. Called by the JWT middleware only.
func StoreClaims(c echo.Context, claims *Claims) {
	c.Set(claimsContextKey, claims)
}

// CurrentClaims returns the verified claims of the calling identity.
func CurrentClaims(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	return claims, ok && claims != nil
}

// CurrentUserID resolves the caller's user id from the stored claims.
func CurrentUserID(c echo.Context) (primitive.ObjectID, bool) {
	claims, ok := CurrentClaims(c)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
