package middleware

import (
	"net/http"
	"os"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"SchoolServer/internal/auth"
)

// rbacModel is the Casbin model: role, request path and method, with
// role inheritance so Teacher can extend Student permissions.
const rbacModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act, eft

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && r.act == p.act`

// RBAC is the role-authorization gate. The operation → allowed-roles
// mapping lives in one policy file instead of per-route checks.
type RBAC struct {
	enforcer *casbin.Enforcer
	log      *zap.Logger
}

func NewRBAC(log *zap.Logger) (*RBAC, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	policyPath := os.Getenv("RBAC_POLICY_PATH")
	if policyPath == "" {
		policyPath = "rbac_policy.csv"
	}
	enforcer, err := casbin.NewEnforcer(m, fileadapter.NewAdapter(policyPath))
	if err != nil {
		return nil, err
	}
	return &RBAC{enforcer: enforcer, log: log}, nil
}

// Enforce authorizes an already-authenticated request; it must run
// after JWT.Require so the claims are present.
func (m *RBAC) Enforce(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := auth.CurrentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Missing token"})
		}

		role := string(claims.Role)
		obj := c.Request().URL.Path
		act := c.Request().Method

		allowed, err := m.enforcer.Enforce(role, obj, act)
		if err != nil {
			m.log.Error("rbac enforce failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
		}
		if !allowed {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden: insufficient permissions"})
		}
		return next(c)
	}
}
