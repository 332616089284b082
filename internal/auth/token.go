package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const TokenTTL = 7 * 24 * time.Hour

type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens. Verification is
// stateless: validity is purely signature- and time-based, so logout is
// a client-side token discard.
type TokenService struct {
	key []byte
	ttl time.Duration
}

func NewTokenService(log *zap.Logger) *TokenService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}
	return &TokenService{key: []byte(secret), ttl: TokenTTL}
}

func (t *TokenService) Issue(userID string, role Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.key)
}

// Verify returns the claims of a well-formed, correctly signed and
// unexpired token; every failure collapses to ErrTokenInvalid.
func (t *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
