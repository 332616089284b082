package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"SchoolServer/internal/auth"
)

const testPolicy = `p, Admin, /api/*, GET, allow
p, Admin, /api/*, POST, allow
p, Admin, /api/*, PUT, allow
p, Admin, /api/*, DELETE, allow
p, Student, /api/users/profile, GET, allow
p, Student, /api/notices, GET, allow
p, Student, /api/notices/*, POST, allow
g, Teacher, Student
`

func newTestRBAC(t *testing.T) *RBAC {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.csv")
	require.NoError(t, os.WriteFile(path, []byte(testPolicy), 0o644))
	t.Setenv("RBAC_POLICY_PATH", path)

	rbac, err := NewRBAC(zap.NewNop())
	require.NoError(t, err)
	return rbac
}

func doEnforce(rbac *RBAC, role auth.Role, method, path string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		auth.StoreClaims(c, &auth.Claims{
			Role:             role,
			RegisteredClaims: jwt.RegisteredClaims{Subject: "64b0c1f2a1b2c3d4e5f60718"},
		})
	}

	handler := rbac.Enforce(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)
	return rec
}

func TestEnforceRoles(t *testing.T) {
	rbac := newTestRBAC(t)

	tests := []struct {
		name   string
		role   auth.Role
		method string
		path   string
		status int
	}{
		{name: "admin can delete users", role: auth.RoleAdmin, method: http.MethodDelete, path: "/api/users/123", status: http.StatusOK},
		{name: "admin can create notices", role: auth.RoleAdmin, method: http.MethodPost, path: "/api/notices", status: http.StatusOK},
		{name: "student reads own profile", role: auth.RoleStudent, method: http.MethodGet, path: "/api/users/profile", status: http.StatusOK},
		{name: "student lists notices", role: auth.RoleStudent, method: http.MethodGet, path: "/api/notices", status: http.StatusOK},
		{name: "student marks notice read", role: auth.RoleStudent, method: http.MethodPost, path: "/api/notices/123/read", status: http.StatusOK},
		{name: "student cannot create notices", role: auth.RoleStudent, method: http.MethodPost, path: "/api/notices", status: http.StatusForbidden},
		{name: "student cannot delete users", role: auth.RoleStudent, method: http.MethodDelete, path: "/api/users/123", status: http.StatusForbidden},
		{name: "teacher inherits student access", role: auth.RoleTeacher, method: http.MethodGet, path: "/api/notices", status: http.StatusOK},
		{name: "teacher cannot delete users", role: auth.RoleTeacher, method: http.MethodDelete, path: "/api/users/123", status: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doEnforce(rbac, tt.role, tt.method, tt.path)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestEnforceWithoutClaims(t *testing.T) {
	rbac := newTestRBAC(t)

	rec := doEnforce(rbac, "", http.MethodGet, "/api/notices")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
