package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/factoryops/user-admin-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/roles/assign", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_PermissionDenied(t *testing.T) {
	err := fmt.Errorf("%w: only admins can modify roles", domain.ErrPermissionDenied)
	code, resp := renderError(t, err)

	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if resp["error"] != "permission-denied" {
		t.Fatalf("expected permission-denied tag, got %q", resp["error"])
	}
	if resp["message"] == "" {
		t.Fatalf("expected human-readable message")
	}
}

func TestErrorHandler_InternalForwardsMessage(t *testing.T) {
	code, resp := renderError(t, errors.New("set claims: identity store unavailable"))

	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if resp["error"] != "internal" {
		t.Fatalf("expected internal tag, got %q", resp["error"])
	}
	if resp["message"] != "set claims: identity store unavailable" {
		t.Fatalf("underlying message must be forwarded as-is, got %q", resp["message"])
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, resp := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))

	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if resp["error"] != "unauthenticated" || resp["message"] != "missing authorization header" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestErrorHandler_InvalidCredentials(t *testing.T) {
	code, resp := renderError(t, domain.ErrInvalidCredentials)

	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if resp["error"] != "unauthenticated" {
		t.Fatalf("unexpected tag: %q", resp["error"])
	}
}

func TestErrorHandler_ResetTokenInvalid(t *testing.T) {
	code, resp := renderError(t, domain.ErrResetTokenInvalid)

	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if resp["error"] != "invalid-argument" {
		t.Fatalf("unexpected tag: %q", resp["error"])
	}
}
