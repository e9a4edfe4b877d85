package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/factoryops/user-admin-api/internal/api/middleware"
	"github.com/factoryops/user-admin-api/internal/core/domain"
)

// ctxCaller extracts the caller principal injected by the Auth middleware.
// Its absence means the route was wired without the middleware; fail closed
// with 401 rather than passing a zero (claimless) caller downstream.
func ctxCaller(c echo.Context) (domain.Caller, error) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return domain.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return caller, nil
}
