package search

import (
	"fmt"
	"strconv"
	"strings"

	"ndiscare-backend/internal/models"
)

// Pagination bounds. pageSize is clamped, not rejected.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DefaultRadiusKm applies when a location is given without an explicit
// "within" radius. Wide on purpose: it keeps the bounding-box pre-filter
// meaningful even for an unscoped location search.
const DefaultRadiusKm = 500.0

// Query is the request-scoped search input. Every field is optional,
// the zero value means "match everything, first page".
type Query struct {
	Page      int
	PageSize  int
	Search    string
	SortBy    string
	SortOrder string

	Location    string
	SupportType string
	Gender      string
	Languages   []string
	Age         string // "25-40" or "60+", anything else means no constraint
	Within      string // radius in km, "none"/"0" disables distance ranking

	DocumentCategories []string
	DocumentStatuses   []string
	RequirementTypes   []string
}

// SupportTypes maps the kebab-case codes the frontend sends to the
// display names stored on worker_services rows. Also the allow-list for
// the supportType parameter.
var SupportTypes = map[string]string{
	"personal-care":           "Personal Care",
	"domestic-assistance":     "Domestic Assistance",
	"community-participation": "Community Participation",
	"nursing":                 "Nursing",
	"allied-health":           "Allied Health",
	"transport":               "Transport",
	"social-support":          "Social Support",
	"respite-care":            "Respite Care",
}

var validStatuses = map[string]bool{
	models.StatusNotStarted:    true,
	models.StatusInProgress:    true,
	models.StatusPendingReview: true,
	models.StatusApproved:      true,
	models.StatusRejected:      true,
}

var validCategories = map[string]bool{
	models.CategoryIdentity:      true,
	models.CategoryClearance:     true,
	models.CategoryQualification: true,
	models.CategoryTraining:      true,
	models.CategoryMedical:       true,
}

var validRequirementTypes = map[string]bool{
	models.DocPoliceCheck:   true,
	models.DocWWCC:          true,
	models.DocNDISScreening: true,
	models.DocFirstAid:      true,
	models.DocQualification: true,
	models.DocVaccination:   true,
}

// ValidationError marks a rejected filter value. Handlers map it to 400.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for filter %q", e.Value, e.Field)
}

// Normalize fills defaults and case-normalizes free-text filter values
// to the capitalization the database stores (title case). The columns
// have no case-insensitive collation guarantee, so we match their casing
// instead of asking the database to fold case.
func (q *Query) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		q.SortOrder = "desc"
	}

	q.Gender = TitleCase(q.Gender)
	for i, lang := range q.Languages {
		q.Languages[i] = TitleCase(lang)
	}
	q.SupportType = strings.ToLower(strings.TrimSpace(q.SupportType))

	q.DocumentCategories = lowerAll(q.DocumentCategories)
	q.DocumentStatuses = lowerAll(q.DocumentStatuses)
	q.RequirementTypes = lowerAll(q.RequirementTypes)
}

// Validate rejects unknown values on the enumerated dimensions before
// anything hits the database. Age and sortBy are deliberately lenient
// (bad age token = no constraint, unknown sort key = default sort).
func (q *Query) Validate() error {
	if q.SupportType != "" {
		if _, ok := SupportTypes[q.SupportType]; !ok {
			return &ValidationError{Field: "supportType", Value: q.SupportType}
		}
	}
	for _, s := range q.DocumentStatuses {
		if !validStatuses[s] {
			return &ValidationError{Field: "documentStatuses", Value: s}
		}
	}
	for _, cat := range q.DocumentCategories {
		if !validCategories[cat] {
			return &ValidationError{Field: "documentCategories", Value: cat}
		}
	}
	for _, rt := range q.RequirementTypes {
		if !validRequirementTypes[rt] {
			return &ValidationError{Field: "requirementTypes", Value: rt}
		}
	}
	return nil
}

// AgeRange parses the age token. ok is false when the token doesn't
// constrain anything. max == 0 means open-ended ("60+").
func (q *Query) AgeRange() (min, max int, ok bool) {
	token := strings.TrimSpace(q.Age)
	if token == "" {
		return 0, 0, false
	}
	if strings.HasSuffix(token, "+") {
		floor, err := strconv.Atoi(strings.TrimSuffix(token, "+"))
		if err != nil || floor < 0 {
			return 0, 0, false
		}
		return floor, 0, true
	}
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	hi, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || lo < 0 || hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}

// RadiusKm parses the "within" token. disabled is true for "none" or a
// zero/negative radius, meaning the caller asked to skip distance
// ranking entirely. An absent token gets the wide default.
func (q *Query) RadiusKm() (radius float64, disabled bool) {
	token := strings.ToLower(strings.TrimSpace(q.Within))
	if token == "" {
		return DefaultRadiusKm, false
	}
	if token == "none" {
		return 0, true
	}
	token = strings.TrimSuffix(token, "km")
	r, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return DefaultRadiusKm, false
	}
	if r <= 0 {
		return 0, true
	}
	return r, false
}

// Offset is the skip count for the current page.
func (q *Query) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// TitleCase normalizes "fEMale" -> "Female", "personal care" -> "Personal Care".
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func lowerAll(values []string) []string {
	out := values[:0]
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
