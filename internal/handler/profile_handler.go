package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/service"
)

// ProfileHandler handles student and tutor profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpdateTokensPerHourRequest sets a tutor's hourly rate in tokens.
type UpdateTokensPerHourRequest struct {
	TokensPerHour int `json:"tokensPerHour" validate:"required,min=1"`
}

// GetStudentProfile godoc
// @Summary Get the authenticated student's profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.StudentProfile
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /students/profile [get]
func (h *ProfileHandler) GetStudentProfile(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.GetStudentProfile(c.Request().Context(), sub)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateStudentProfile godoc
// @Summary Update the authenticated student's profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.StudentProfileUpdate true "Fields to update"
// @Success 200 {object} service.StudentProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /students/profile [put]
func (h *ProfileHandler) UpdateStudentProfile(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	var update service.StudentProfileUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	profile, err := h.profileService.UpdateStudentProfile(c.Request().Context(), sub, update)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveStudentRole godoc
// @Summary Remove the student role from the authenticated user
// @Description Removes the student role and clears student-only profile data. Deletes the user entirely when no roles remain.
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.RoleRemovalResult
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /students/profile [delete]
func (h *ProfileHandler) RemoveStudentRole(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	result, err := h.profileService.RemoveStudentRole(c.Request().Context(), sub)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// GetTutorProfile godoc
// @Summary Get the authenticated tutor's profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.TutorProfile
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tutors/profile [get]
func (h *ProfileHandler) GetTutorProfile(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.GetTutorProfile(c.Request().Context(), sub)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateTutorProfile godoc
// @Summary Update the authenticated tutor's profile
// @Description Updates tutor profile fields. Submitted specializations are reconciled against the verified ledger: verified entries survive, new names are recorded as unverified manual entries.
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.TutorProfileUpdate true "Fields to update"
// @Success 200 {object} service.TutorProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /tutors/profile [put]
func (h *ProfileHandler) UpdateTutorProfile(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	var update service.TutorProfileUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	profile, err := h.profileService.UpdateTutorProfile(c.Request().Context(), sub, update)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveTutorRole godoc
// @Summary Remove the tutor role from the authenticated user
// @Description Removes the tutor role and clears tutor-only profile data. Deletes the user entirely when no roles remain.
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.RoleRemovalResult
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tutors/profile [delete]
func (h *ProfileHandler) RemoveTutorRole(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	result, err := h.profileService.RemoveTutorRole(c.Request().Context(), sub)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// GetProfileStatus godoc
// @Summary Get profile completeness for the authenticated user
// @Description Reports whether the profile is complete for a role. The role query parameter selects which role to evaluate; it must be one the user holds.
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role to evaluate (STUDENT or TUTOR)"
// @Success 200 {object} model.ProfileStatus
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /me/profile-status [get]
func (h *ProfileHandler) GetProfileStatus(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	status, err := h.profileService.GetProfileStatus(c.Request().Context(), sub, c.QueryParam("role"))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, status)
}

// GetTokensPerHour godoc
// @Summary Get the authenticated tutor's hourly rate
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]*int
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tutors/rate [get]
func (h *ProfileHandler) GetTokensPerHour(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	rate, err := h.profileService.GetTokensPerHour(c.Request().Context(), sub)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]*int{"tokensPerHour": rate})
}

// UpdateTokensPerHour godoc
// @Summary Set the authenticated tutor's hourly rate
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateTokensPerHourRequest true "Hourly rate in tokens"
// @Success 200 {object} service.TutorProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /tutors/rate [put]
func (h *ProfileHandler) UpdateTokensPerHour(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	var req UpdateTokensPerHourRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.UpdateTokensPerHour(c.Request().Context(), sub, req.TokensPerHour)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}
