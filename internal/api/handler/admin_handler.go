package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/neplink/classifieds-api/internal/core/domain"
	"github.com/neplink/classifieds-api/internal/core/ports"
)

type AdminHandler struct {
	admin ports.AdminService
	log   zerolog.Logger
}

func NewAdminHandler(admin ports.AdminService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, log: log}
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin owner user"`
}

// Stats godoc
// @Summary      Record counts across all resources
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ports.Stats
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.admin.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// ListUsers godoc
// @Summary      List all accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} domain.User
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUserRole godoc
// @Summary      Change an account's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "user id"
// @Param        request body updateRoleRequest true "new role"
// @Success      200 {object} domain.User
// @Failure      400 {object} errorResponse
// @Failure      404 {object} errorResponse
// @Router       /api/admin/users/{id} [put]
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := h.parseUserID(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.admin.ChangeRole(c.Request().Context(), actor, id, req.Role)
	if err != nil {
		return h.mapError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete an account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "user id"
// @Success      200 {object} messageResponse
// @Failure      400 {object} errorResponse
// @Failure      404 {object} errorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := h.parseUserID(c)
	if err != nil {
		return err
	}

	if err := h.admin.DeleteUser(c.Request().Context(), actor, id); err != nil {
		return h.mapError(err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user removed"})
}

func (h *AdminHandler) parseUserID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return id, nil
}

func (h *AdminHandler) mapError(err error) error {
	switch err {
	case domain.ErrUserNotFound:
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	case domain.ErrSelfAction:
		return echo.NewHTTPError(http.StatusBadRequest, "cannot modify your own account")
	case domain.ErrInvalidCredentials:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid role")
	default:
		return err
	}
}
