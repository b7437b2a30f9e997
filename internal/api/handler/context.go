package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hrm-api/internal/api/middleware"
	"github.com/peoplehub/hrm-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware. A
// missing username means the middleware did not run on this route; treat it as
// unauthenticated rather than panic.
func ctxPrincipal(c echo.Context) (username string, roles []domain.Role, err error) {
	username, _ = c.Get(middleware.CtxUsername).(string)
	if username == "" {
		return "", nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	roles, _ = c.Get(middleware.CtxRoles).([]domain.Role)
	return username, roles, nil
}
