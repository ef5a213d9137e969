package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/recruiting-system/internal/core/domain"
	"github.com/crewbase/recruiting-system/internal/core/ports"
)

// ContractorHandler handles HTTP requests for contractor records, their
// keyword associations, and their history timeline.
type ContractorHandler struct {
	contractors  ports.ContractorService
	associations ports.AssociationService
	history      ports.HistoryService
}

func NewContractorHandler(
	contractors ports.ContractorService,
	associations ports.AssociationService,
	history ports.HistoryService,
) *ContractorHandler {
	return &ContractorHandler{
		contractors:  contractors,
		associations: associations,
		history:      history,
	}
}

// --- Request / Response types ---

type contractorRequest struct {
	FullName    string  `json:"full_name" validate:"required"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Phone       string  `json:"phone"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	PayRate     float64 `json:"pay_rate" validate:"gte=0"`
	PayCurrency string  `json:"pay_currency"`
	Available   bool    `json:"available"`
	Flagged     bool    `json:"flagged"`
	ResumePath  string  `json:"resume_path"`
	ResumeURL   string  `json:"resume_url"`
}

func (r contractorRequest) toInput() ports.ContractorInput {
	return ports.ContractorInput{
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Phone,
		City:        r.City,
		State:       r.State,
		Country:     r.Country,
		PayRate:     r.PayRate,
		PayCurrency: r.PayCurrency,
		Available:   r.Available,
		Flagged:     r.Flagged,
		ResumePath:  r.ResumePath,
		ResumeURL:   r.ResumeURL,
	}
}

type listContractorsResponse struct {
	Items      []*domain.Contractor `json:"items"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
}

// keywordRefRequest is one submitted keyword: either a persisted id or a
// pending free-text label to resolve.
type keywordRefRequest struct {
	ID    string `json:"id,omitempty"`
	Label string `json:"label,omitempty"`
}

type setKeywordsRequest struct {
	Keywords map[string][]keywordRefRequest `json:"keywords" validate:"required"`
}

type contractorKeywordsResponse struct {
	Keywords map[domain.KeywordCategory][]domain.Keyword `json:"keywords"`
}

// Create handles POST /v1/contractors.
//
// @Summary      Create a contractor
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      contractorRequest  true  "Contractor details"
// @Success      201   {object}  domain.Contractor
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/contractors [post]
func (h *ContractorHandler) Create(c echo.Context) error {
	var req contractorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	email, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	contractor, err := h.contractors.CreateContractor(c.Request().Context(), req.toInput(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, contractor)
}

// Get handles GET /v1/contractors/:id.
//
// @Summary      Get a contractor by id
// @Tags         contractors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contractor id"
// @Success      200  {object}  domain.Contractor
// @Failure      404  {object}  map[string]string
// @Router       /v1/contractors/{id} [get]
func (h *ContractorHandler) Get(c echo.Context) error {
	contractor, err := h.contractors.GetContractor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contractor)
}

// Update handles PUT /v1/contractors/:id.
//
// @Summary      Update a contractor
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Contractor id"
// @Param        body  body      contractorRequest  true  "Contractor details"
// @Success      200   {object}  domain.Contractor
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/contractors/{id} [put]
func (h *ContractorHandler) Update(c echo.Context) error {
	var req contractorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	email, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	contractor, err := h.contractors.UpdateContractor(c.Request().Context(), c.Param("id"), req.toInput(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contractor)
}

// Delete handles DELETE /v1/contractors/:id. Admin only; associations,
// history, and tasks go with the record.
//
// @Summary      Delete a contractor
// @Tags         contractors
// @Security     BearerAuth
// @Param        id  path  string  true  "Contractor id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/contractors/{id} [delete]
func (h *ContractorHandler) Delete(c echo.Context) error {
	if err := h.contractors.DeleteContractor(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/contractors.
//
// @Summary      List contractors
// @Tags         contractors
// @Produce      json
// @Security     BearerAuth
// @Param        search       query     string  false  "Substring match on name or email"
// @Param        keyword_ids  query     string  false  "Comma-separated keyword ids; contractors must carry all of them"
// @Param        available    query     bool    false  "Filter by availability"
// @Param        flagged      query     bool    false  "Filter by flagged status"
// @Param        page         query     int     false  "Page number (1-based)"
// @Param        limit        query     int     false  "Page size (max 100)"
// @Success      200  {object}  listContractorsResponse
// @Router       /v1/contractors [get]
func (h *ContractorHandler) List(c echo.Context) error {
	input := ports.ListContractorsInput{
		Search: strings.TrimSpace(c.QueryParam("search")),
	}

	if raw := c.QueryParam("keyword_ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				input.KeywordIDs = append(input.KeywordIDs, id)
			}
		}
	}
	if raw := c.QueryParam("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "available must be a boolean")
		}
		input.Available = &v
	}
	if raw := c.QueryParam("flagged"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "flagged must be a boolean")
		}
		input.Flagged = &v
	}
	input.Page, _ = strconv.Atoi(c.QueryParam("page"))
	input.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	result, err := h.contractors.ListContractors(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listContractorsResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// SetKeywords handles PUT /v1/contractors/:id/keywords. The submitted set
// replaces the contractor's keywords: labels without ids are resolved
// (created on first use), and omitted keywords are unlinked.
//
// @Summary      Replace a contractor's keywords
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Contractor id"
// @Param        body  body      setKeywordsRequest  true  "Keyword refs grouped by category"
// @Success      200   {object}  contractorKeywordsResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/contractors/{id}/keywords [put]
func (h *ContractorHandler) SetKeywords(c echo.Context) error {
	var req setKeywordsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	refs := make(ports.CategorizedKeywordRefs, len(req.Keywords))
	for rawCategory, items := range req.Keywords {
		category := domain.KeywordCategory(rawCategory)
		if !category.IsValid() {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "unknown keyword category: "+rawCategory)
		}
		for _, item := range items {
			if item.ID != "" {
				refs[category] = append(refs[category], domain.PersistedKeyword(item.ID))
				continue
			}
			refs[category] = append(refs[category], domain.PendingKeyword(item.Label, category))
		}
	}

	contractorID := c.Param("id")
	if err := h.associations.ReplaceKeywords(c.Request().Context(), contractorID, refs); err != nil {
		return err
	}

	keywords, err := h.associations.ListKeywords(c.Request().Context(), contractorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contractorKeywordsResponse{Keywords: keywords})
}

// GetKeywords handles GET /v1/contractors/:id/keywords.
//
// @Summary      List a contractor's keywords grouped by category
// @Tags         contractors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contractor id"
// @Success      200  {object}  contractorKeywordsResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/contractors/{id}/keywords [get]
func (h *ContractorHandler) GetKeywords(c echo.Context) error {
	keywords, err := h.associations.ListKeywords(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contractorKeywordsResponse{Keywords: keywords})
}

// History handles GET /v1/contractors/:id/history.
//
// @Summary      List a contractor's timeline, newest first
// @Tags         contractors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contractor id"
// @Success      200  {array}   domain.ContractorHistory
// @Failure      404  {object}  map[string]string
// @Router       /v1/contractors/{id}/history [get]
func (h *ContractorHandler) History(c echo.Context) error {
	entries, err := h.history.ListHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
