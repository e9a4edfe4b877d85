package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/factoryops/user-admin-api/internal/api/metrics"
	"github.com/factoryops/user-admin-api/internal/core/domain"
	"github.com/factoryops/user-admin-api/internal/core/ports"
)

// AuthHandler handles login and credential-reset completion.
type AuthHandler struct {
	tokens     ports.TokenService
	identities ports.IdentityService
}

func NewAuthHandler(tokens ports.TokenService, identities ports.IdentityService) *AuthHandler {
	return &AuthHandler{tokens: tokens, identities: identities}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	UID   string `json:"uid"`
}

type resetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// Login authenticates an identity and returns a JWT carrying its claims.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, identity, err := h.tokens.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// A missing identity reads the same as a wrong password, so login
		// cannot be used to probe which emails exist.
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, UID: identity.ID})
}

// ResetPassword redeems a one-time reset token and sets a new credential.
//
// @Summary      Complete a credential reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Reset token and new password"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/password/reset [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.identities.ResetCredential(c.Request().Context(), req.Token, req.Password); err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			metrics.ResetTokensRedeemedTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}

	metrics.ResetTokensRedeemedTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
