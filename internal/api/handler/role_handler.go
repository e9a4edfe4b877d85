package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/factoryops/user-admin-api/internal/api/metrics"
	"github.com/factoryops/user-admin-api/internal/core/domain"
	"github.com/factoryops/user-admin-api/internal/core/ports"
)

// RoleHandler handles HTTP requests for role assignment.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

type assignRoleRequest struct {
	UID string `json:"uid" validate:"required"`
	// Role is intentionally unconstrained: an unrecognised value derives
	// all-false claims and is stored verbatim in the profile.
	Role string `json:"role"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Assign overwrites the target identity's claims and mirrors the role into
// its profile record.
//
// @Summary      Assign a role to an existing user
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      assignRoleRequest  true  "Target uid and role"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/roles/assign [post]
func (h *RoleHandler) Assign(c echo.Context) error {
	var req assignRoleRequest
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

	if err := h.service.AssignRole(c.Request().Context(), caller, req.UID, req.Role); err != nil {
		if errors.Is(err, domain.ErrPermissionDenied) {
			metrics.PermissionDeniedTotal.WithLabelValues("assign_role").Inc()
		}
		return err
	}

	metrics.RoleAssignmentsTotal.WithLabelValues(req.Role).Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
