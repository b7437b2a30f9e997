package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hrm-api/internal/core/domain"
)

// RBAC enforces role-based access control: the request proceeds only when the
// intersection of the caller's decoded roles and the allowed set is non-empty.
// Runs after Auth, before the handler; never interleaved with business logic.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get(CtxRoles).([]domain.Role)
			if !domain.Allowed(roles, allowedRoles) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
