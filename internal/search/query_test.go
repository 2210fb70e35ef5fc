package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	q := &Query{}
	q.Normalize()

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultPageSize, q.PageSize)
	assert.Equal(t, "desc", q.SortOrder)
}

func TestNormalizeClampsPageSize(t *testing.T) {
	q := &Query{Page: -3, PageSize: 9999}
	q.Normalize()

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, MaxPageSize, q.PageSize)
}

func TestValidateRejectsUnknownEnumValues(t *testing.T) {
	tests := []struct {
		name string
		q    Query
	}{
		{"status", Query{DocumentStatuses: []string{"approved", "bogus"}}},
		{"category", Query{DocumentCategories: []string{"paperwork"}}},
		{"requirement type", Query{RequirementTypes: []string{"passport"}}},
		{"support type", Query{SupportType: "gardening"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.q.Normalize()
			err := tt.q.Validate()
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestValidateAcceptsKnownValues(t *testing.T) {
	q := &Query{
		SupportType:        "nursing",
		DocumentStatuses:   []string{"Approved", "REJECTED"}, // any casing
		DocumentCategories: []string{"identity"},
		RequirementTypes:   []string{"first-aid"},
	}
	q.Normalize()
	assert.NoError(t, q.Validate())
}

func TestRadiusKm(t *testing.T) {
	tests := []struct {
		within       string
		wantRadius   float64
		wantDisabled bool
	}{
		{"", DefaultRadiusKm, false},
		{"none", 0, true},
		{"NONE", 0, true},
		{"0", 0, true},
		{"-5", 0, true},
		{"20", 20, false},
		{"25km", 25, false},
		{"junk", DefaultRadiusKm, false},
	}
	for _, tt := range tests {
		q := &Query{Within: tt.within}
		radius, disabled := q.RadiusKm()
		assert.Equal(t, tt.wantDisabled, disabled, "within=%q", tt.within)
		if !disabled {
			assert.Equal(t, tt.wantRadius, radius, "within=%q", tt.within)
		}
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Female", TitleCase("fEMALE"))
	assert.Equal(t, "Personal Care", TitleCase("  personal   care "))
	assert.Equal(t, "", TitleCase(""))
}
