package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(ttl time.Duration) *TokenService {
	return &TokenService{key: []byte("test-secret"), ttl: ttl}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(TokenTTL)

	token, err := svc.Issue("64b0c1f2a1b2c3d4e5f60718", RoleTeacher)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64b0c1f2a1b2c3d4e5f60718", claims.Subject)
	assert.Equal(t, RoleTeacher, claims.Role)
}

func TestTokenVerifyFailures(t *testing.T) {
	svc := newTestTokenService(TokenTTL)

	expiredSvc := newTestTokenService(-time.Minute)
	expired, err := expiredSvc.Issue("user", RoleStudent)
	require.NoError(t, err)

	otherKey := &TokenService{key: []byte("other-secret"), ttl: TokenTTL}
	foreign, err := otherKey.Issue("user", RoleStudent)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.jwt"},
		{name: "expired", token: expired},
		{name: "wrong key", token: foreign},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}
