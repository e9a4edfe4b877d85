package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAnyClaim rejects requests whose caller holds none of the named
// claims. Route-level defence in depth: the services repeat the check before
// mutating anything, so the gate holds even for direct service callers.
func RequireAnyClaim(names ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := CallerFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			for _, name := range names {
				if caller.Claims.Has(name) {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "caller lacks required claim")
		}
	}
}
