package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/metrics"
)

// RequireRole lets the request through only for a principal of the given role. Anyone
// else, anonymous or logged in under another role, is sent to that role's login form.
// The session itself is left alone.
func RequireRole(role domain.Role, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := Principal(c)
			switch {
			case p == nil:
				metrics.GuardRedirectsTotal.WithLabelValues(string(role), "anonymous").Inc()
				return c.Redirect(http.StatusSeeOther, loginPath)
			case p.Role != role:
				metrics.GuardRedirectsTotal.WithLabelValues(string(role), "wrong_role").Inc()
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			return next(c)
		}
	}
}

// RequireAuth admits any authenticated principal and sends anonymous requests to loginPath.
func RequireAuth(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Principal(c) == nil {
				metrics.GuardRedirectsTotal.WithLabelValues("any", "anonymous").Inc()
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			return next(c)
		}
	}
}
