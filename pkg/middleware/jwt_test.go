package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"SchoolServer/internal/auth"
)

func TestRequire(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	tokens := auth.NewTokenService(zap.NewNop())
	jwtMw := NewJWT(tokens)

	token, err := tokens.Issue("64b0c1f2a1b2c3d4e5f60718", auth.RoleStudent)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid token", header: "Bearer " + token, status: http.StatusOK},
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not.a.jwt", status: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/notices", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := jwtMw.Require(func(c echo.Context) error {
				claims, ok := auth.CurrentClaims(c)
				require.True(t, ok)
				assert.Equal(t, auth.RoleStudent, claims.Role)
				return c.NoContent(http.StatusOK)
			})
			_ = handler(c)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
