package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/service"
)

// SearchHandler handles tutor search.
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchTutors godoc
// @Summary Search tutors
// @Description Case-insensitive substring match over tutor names, bios, and specializations. A blank query returns all tutors.
// @Tags search
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} model.User
// @Failure 500 {object} errors.ErrorResponse
// @Router /tutors/search [get]
func (h *SearchHandler) SearchTutors(c echo.Context) error {
	tutors, err := h.searchService.SearchTutors(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tutors)
}
