package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/service"
)

// CredentialHandler handles tutor credential upload and removal.
type CredentialHandler struct {
	credentialService service.CredentialService
}

// NewCredentialHandler creates a new credential handler.
func NewCredentialHandler(credentialService service.CredentialService) *CredentialHandler {
	return &CredentialHandler{credentialService: credentialService}
}

// RemoveCredentialsRequest lists the document URLs to remove.
type RemoveCredentialsRequest struct {
	URLs []string `json:"urls" validate:"required,min=1,dive,required"`
}

// Upload godoc
// @Summary Upload and validate tutor credential documents
// @Description Stores each file, classifies it, and records verified specializations for accepted documents. Each file is processed independently; the report details every outcome.
// @Tags credentials
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param files formData file true "Credential documents (repeatable)"
// @Success 200 {object} model.BatchReport
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tutors/credentials [post]
func (h *CredentialHandler) Upload(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart form is required")
	}
	headers := form.File["files"]

	files := make([]service.UploadedFile, 0, len(headers))
	for _, header := range headers {
		src, err := header.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "failed to open uploaded file")
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "failed to read uploaded file")
		}
		files = append(files, service.UploadedFile{Name: header.Filename, Data: data})
	}

	report, err := h.credentialService.Ingest(c.Request().Context(), sub, files)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, report)
}

// Remove godoc
// @Summary Remove tutor credential documents
// @Description Removes the given document URLs from the tutor's credential list, drops specializations verified by those documents, and deletes the stored objects best-effort.
// @Tags credentials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RemoveCredentialsRequest true "Document URLs"
// @Success 200 {object} model.RemovalReport
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tutors/credentials [delete]
func (h *CredentialHandler) Remove(c echo.Context) error {
	sub, err := subjectFromContext(c)
	if err != nil {
		return err
	}

	var req RemoveCredentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	report, err := h.credentialService.Remove(c.Request().Context(), sub, req.URLs)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, report)
}
