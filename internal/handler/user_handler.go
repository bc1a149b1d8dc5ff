package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/service"
)

// UserHandler handles user CRUD and role endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateRolesRequest replaces the authenticated user's role set.
type UpdateRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,oneof=STUDENT TUTOR"`
}

// AddRoleRequest adds one role to the authenticated user.
type AddRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=STUDENT TUTOR"`
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// GetPublicProfile godoc
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param sub path string true "User subject"
// @Success 200 {object} service.PublicProfile
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{sub}/public [get]
func (h *UserHandler) GetPublicProfile(c echo.Context) error {
	sub := c.Param("sub")
	if sub == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sub is required")
	}

	profile, err := h.userService.GetPublicProfile(c.Request().Context(), sub)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// GetTutorRate godoc
// @Summary Get a tutor's hourly rate
// @Tags users
// @Produce json
// @Param sub path string true "User subject"
// @Success 200 {object} map[string]*int
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tutors/{sub}/rate [get]
func (h *UserHandler) GetTutorRate(c echo.Context) error {
	sub := c.Param("sub")
	if sub == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sub is required")
	}

	rate, err := h.userService.GetTutorRate(c.Request().Context(), sub)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]*int{"tokensPerHour": rate})
}

// Me godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetUserBySub(c.Request().Context(), sub)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteMe godoc
// @Summary Delete the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /me [delete]
func (h *UserHandler) DeleteMe(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.Request().Context(), sub); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}

// UpdateRoles godoc
// @Summary Replace the authenticated user's roles
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateRolesRequest true "Roles"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /me/roles [put]
func (h *UserHandler) UpdateRoles(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	var req UpdateRolesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateRoles(c.Request().Context(), sub, req.Roles)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// AddRole godoc
// @Summary Add a role to the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddRoleRequest true "Role"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /me/roles [post]
func (h *UserHandler) AddRole(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	var req AddRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.AddRole(c.Request().Context(), sub, req.Role)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// GetRoles godoc
// @Summary Get the authenticated user's roles
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.RolesInfo
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /me/roles [get]
func (h *UserHandler) GetRoles(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	info, err := h.userService.GetRoles(c.Request().Context(), sub)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, info)
}
