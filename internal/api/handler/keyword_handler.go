package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/recruiting-system/internal/core/domain"
	"github.com/crewbase/recruiting-system/internal/core/ports"
)

// KeywordHandler exposes keyword lookups for the tagging UI.
type KeywordHandler struct {
	keywords ports.KeywordService
}

func NewKeywordHandler(keywords ports.KeywordService) *KeywordHandler {
	return &KeywordHandler{keywords: keywords}
}

type keywordUsageResponse struct {
	Usage []domain.KeywordUsage `json:"usage"`
}

// Search handles GET /v1/keywords.
//
// @Summary      Search keywords by name prefix or substring
// @Tags         keywords
// @Produce      json
// @Security     BearerAuth
// @Param        q         query     string  false  "Search text, matched case-insensitively"
// @Param        category  query     string  false  "Restrict to one category"
// @Param        limit     query     int     false  "Max results (default 20, max 100)"
// @Success      200  {array}   domain.Keyword
// @Failure      422  {object}  map[string]string
// @Router       /v1/keywords [get]
func (h *KeywordHandler) Search(c echo.Context) error {
	var category *domain.KeywordCategory
	if raw := c.QueryParam("category"); raw != "" {
		cat := domain.KeywordCategory(raw)
		if !cat.IsValid() {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "unknown keyword category: "+raw)
		}
		category = &cat
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	keywords, err := h.keywords.Search(c.Request().Context(), c.QueryParam("q"), category, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, keywords)
}

// Usage handles GET /v1/keywords/usage. Counts are served from cache when
// warm, so they may trail writes by up to the cache TTL.
//
// @Summary      Report contractor counts per keyword
// @Tags         keywords
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  keywordUsageResponse
// @Router       /v1/keywords/usage [get]
func (h *KeywordHandler) Usage(c echo.Context) error {
	usage, err := h.keywords.Usage(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, keywordUsageResponse{Usage: usage})
}
