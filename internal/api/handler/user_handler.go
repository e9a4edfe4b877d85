package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/factoryops/user-admin-api/internal/api/metrics"
	"github.com/factoryops/user-admin-api/internal/core/domain"
	"github.com/factoryops/user-admin-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user provisioning.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type provisionUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	// Role is intentionally unconstrained, see assignRoleRequest.
	Role string `json:"role"`
}

type provisionUserResponse struct {
	Success   bool   `json:"success"`
	UID       string `json:"uid"`
	ResetLink string `json:"resetLink"`
}

// Provision creates a new identity with an initial role and returns the
// one-time credential-reset link. Delivering the link to the user is the
// operator's responsibility.
//
// @Summary      Provision a new user with a role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      provisionUserRequest  true  "Email and initial role"
// @Success      201   {object}  provisionUserResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/users/provision [post]
func (h *UserHandler) Provision(c echo.Context) error {
	var req provisionUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	result, err := h.service.ProvisionUser(c.Request().Context(), caller, req.Email, req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrPermissionDenied) {
			metrics.PermissionDeniedTotal.WithLabelValues("provision_user").Inc()
		}
		return err
	}

	metrics.UsersProvisionedTotal.WithLabelValues(req.Role).Inc()
	metrics.ResetLinksIssuedTotal.Inc()
	return c.JSON(http.StatusCreated, provisionUserResponse{
		Success:   true,
		UID:       result.UID,
		ResetLink: result.ResetLink,
	})
}
