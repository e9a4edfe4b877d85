package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/factoryops/user-admin-api/internal/core/domain"
)

// Error codes surfaced in the envelope. The two admin operations only ever
// produce permission-denied or internal; the remaining codes come from the
// transport layer (auth middleware, binding, validation) and the login and
// reset endpoints.
const (
	codePermissionDenied = "permission-denied"
	codeInternal         = "internal"
	codeUnauthenticated  = "unauthenticated"
	codeInvalidArgument  = "invalid-argument"
	codeNotFound         = "not-found"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their tagged code and HTTP status.
//   - Forwards internal failure messages as-is, per the operation contract.
//   - Renders a consistent JSON envelope: {"error": code, "message": text}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code, msg := resolveError(err, log, c)
		_ = c.JSON(status, errorResponse{Error: code, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, middleware denials).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, codeForStatus(he.Code), fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden, codePermissionDenied, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, codeUnauthenticated, "invalid credentials"
	case errors.Is(err, domain.ErrResetTokenInvalid):
		return http.StatusBadRequest, codeInvalidArgument, err.Error()
	case errors.Is(err, domain.ErrIdentityNotFound):
		return http.StatusNotFound, codeNotFound, "identity not found"
	}

	// Everything else is internal. The underlying message is part of the
	// contract and is forwarded verbatim; log it with request context too.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("internal error")

	return http.StatusInternalServerError, codeInternal, err.Error()
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return codeUnauthenticated
	case http.StatusForbidden:
		return codePermissionDenied
	case http.StatusBadRequest:
		return codeInvalidArgument
	case http.StatusNotFound:
		return codeNotFound
	default:
		return codeInternal
	}
}
