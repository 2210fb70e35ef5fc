package handlers

import (
	"net/http"
	"strings"

	"ndiscare-backend/internal/search"
	"ndiscare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves the admin contractor search. It holds the
// pipeline service so the store and geocoder stay injectable.
type SearchHandler struct {
	svc *search.Service
}

func NewSearchHandler(svc *search.Service) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// SearchContractors handles GET /admin/contractors/search.
// All params optional; invalid enum filter values are rejected with 400
// before any database work.
func (h *SearchHandler) SearchContractors(c *gin.Context) {
	q := parseSearchQuery(c)

	q.Normalize()
	if err := q.Validate(); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err, "Invalid search filter")
		return
	}

	result, err := h.svc.Search(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err, "Contractor search failed")
		return
	}

	utils.PagedResponse(c, result.Items, result.Pagination, q.AppliedFilters())
}

func parseSearchQuery(c *gin.Context) *search.Query {
	return &search.Query{
		Page:      utils.StringToInt(c.Query("page"), search.DefaultPage),
		PageSize:  utils.StringToInt(c.Query("pageSize"), search.DefaultPageSize),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Location:  c.Query("location"),
		// Both spellings are live in the frontend, accept either
		SupportType:        firstOf(c.Query("typeOfSupport"), c.Query("supportType")),
		Gender:             c.Query("gender"),
		Languages:          splitCSV(c.Query("languages")),
		Age:                c.Query("age"),
		Within:             firstOf(c.Query("within"), c.Query("distance")),
		DocumentCategories: splitCSV(c.Query("documentCategories")),
		DocumentStatuses:   splitCSV(c.Query("documentStatuses")),
		RequirementTypes:   splitCSV(c.Query("requirementTypes")),
	}
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
