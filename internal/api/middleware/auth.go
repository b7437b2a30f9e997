package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hrm-api/internal/api/metrics"
	"github.com/peoplehub/hrm-api/internal/core/domain"
	"github.com/peoplehub/hrm-api/internal/core/ports"
)

// Context keys under which the validated principal is stored. Handlers read
// these explicitly; nothing downstream consults ambient/global auth state.
const (
	CtxUsername = "username"
	CtxRoles    = "roles"
)

// Auth validates the bearer token and injects the decoded principal into the
// request context.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return auth(tokens, true)
}

// OptionalAuth is Auth for routes that serve both anonymous and authenticated
// callers. A missing Authorization header passes through with no principal
// set; a presented token must still be valid.
func OptionalAuth(tokens ports.TokenService) echo.MiddlewareFunc {
	return auth(tokens, false)
}

func auth(tokens ports.TokenService, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				if !required {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			username, roles, err := tokens.Validate(parts[1])
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrTokenExpired):
					metrics.TokenValidationsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				case errors.Is(err, domain.ErrTokenMalformed):
					metrics.TokenValidationsTotal.WithLabelValues("malformed").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "malformed token")
				default:
					metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}
			metrics.TokenValidationsTotal.WithLabelValues("success").Inc()

			c.Set(CtxUsername, username)
			c.Set(CtxRoles, roles)

			return next(c)
		}
	}
}
