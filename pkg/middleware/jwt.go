package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"SchoolServer/internal/auth"
)

// JWT authenticates requests: it extracts the bearer token, verifies it
// and stores the claims for downstream handlers. Any failure stops the
// request with 401 before the handler runs.
type JWT struct {
	tokens *auth.TokenService
}

func NewJWT(tokens *auth.TokenService) *JWT {
	return &JWT{tokens: tokens}
}

func (m *JWT) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Missing token"})
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims, err := m.tokens.Verify(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token"})
		}

		auth.StoreClaims(c, claims)
		return next(c)
	}
}
