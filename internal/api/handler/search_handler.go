package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/recruiting-system/internal/core/ports"
)

// SearchHandler runs LinkedIn-style profile searches against the external
// web-search provider.
type SearchHandler struct {
	search ports.ProfileSearchService
}

func NewSearchHandler(search ports.ProfileSearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// searchFiltersRequest keys follow the frontend's camelCase contract.
type searchFiltersRequest struct {
	Skills         []string `json:"skills"`
	Industries     []string `json:"industries"`
	Companies      []string `json:"companies"`
	Certifications []string `json:"certifications"`
	JobTitles      []string `json:"jobTitles"`
}

type searchLinkedInRequest struct {
	Filters    searchFiltersRequest `json:"filters"`
	NumResults int                  `json:"numResults" validate:"gte=0,lte=10"`
}

// LinkedIn handles POST /v1/search/linkedin. A request without keywords
// returns 200 with an error message in the envelope, not a failure.
//
// @Summary      Search public LinkedIn profiles by keywords
// @Tags         search
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      searchLinkedInRequest  true  "Keyword labels grouped by category"
// @Success      200   {object}  ports.ProfileSearchResult
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/search/linkedin [post]
func (h *SearchHandler) LinkedIn(c echo.Context) error {
	var req searchLinkedInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.search.SearchProfiles(c.Request().Context(), ports.SearchFilters{
		Skills:         req.Filters.Skills,
		Industries:     req.Filters.Industries,
		Companies:      req.Filters.Companies,
		Certifications: req.Filters.Certifications,
		JobTitles:      req.Filters.JobTitles,
	}, req.NumResults)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
