package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeNoFilters(t *testing.T) {
	q := &Query{}
	q.Normalize()

	p := Compose(q)
	assert.True(t, p.IsUniversal(), "empty query should compose to match-all")
}

func TestComposeGenderNormalized(t *testing.T) {
	q := &Query{Gender: "fEMale"}
	q.Normalize()

	p := Compose(q)
	require.Len(t, p.Conds, 1)
	assert.Equal(t, "workers.gender = ?", p.Conds[0].Expr)
	assert.Equal(t, []interface{}{"Female"}, p.Conds[0].Args)
}

func TestComposeAgeTokens(t *testing.T) {
	tests := []struct {
		token    string
		wantExpr string
		wantArgs []interface{}
	}{
		{"25-40", "workers.age BETWEEN ? AND ?", []interface{}{25, 40}},
		{"60+", "workers.age >= ?", []interface{}{60}},
	}
	for _, tt := range tests {
		q := &Query{Age: tt.token}
		q.Normalize()
		p := Compose(q)
		require.Len(t, p.Conds, 1, "token %q", tt.token)
		assert.Equal(t, tt.wantExpr, p.Conds[0].Expr)
		assert.Equal(t, tt.wantArgs, p.Conds[0].Args)
	}

	// Garbage token means no constraint, not an error
	for _, token := range []string{"abc", "40-25", "-5-10", "+60"} {
		q := &Query{Age: token}
		q.Normalize()
		assert.True(t, Compose(q).IsUniversal(), "token %q should not constrain", token)
	}
}

func TestComposeSupportType(t *testing.T) {
	q := &Query{SupportType: "Personal-Care"}
	q.Normalize()

	p := Compose(q)
	require.Len(t, p.Conds, 1)
	assert.Contains(t, p.Conds[0].Expr, "worker_services")
	assert.Equal(t, []interface{}{"Personal Care"}, p.Conds[0].Args)
}

func TestComposeLanguagesAreOneOrGroup(t *testing.T) {
	q := &Query{Languages: []string{"english", "AUSLAN"}}
	q.Normalize()

	p := Compose(q)
	assert.Empty(t, p.Conds)
	require.Len(t, p.OrGroups, 1)
	require.Len(t, p.OrGroups[0], 2)
	assert.Equal(t, []interface{}{"%English%"}, p.OrGroups[0][0].Args)
	assert.Equal(t, []interface{}{"%Auslan%"}, p.OrGroups[0][1].Args)
}

func TestComposeFreeTextIsCaseInsensitive(t *testing.T) {
	q := &Query{Search: "SMith"}
	q.Normalize()

	p := Compose(q)
	require.Len(t, p.OrGroups, 1)
	require.Len(t, p.OrGroups[0], 3)
	for _, c := range p.OrGroups[0] {
		assert.Contains(t, c.Expr, "LOWER(")
		assert.Equal(t, []interface{}{"%smith%"}, c.Args)
	}
}

// Two disjunctive dimensions active at once must stay separate OR groups
// that each AND into the predicate. Flattening them into one pool would
// let "approved OR has-police-check" match, which is wrong.
func TestComposeKeepsOrGroupsApart(t *testing.T) {
	q := &Query{
		RequirementTypes: []string{"police-check", "wwcc"},
		DocumentStatuses: []string{"approved", "pending_review"},
	}
	q.Normalize()
	require.NoError(t, q.Validate())

	p := Compose(q)
	assert.Empty(t, p.Conds)
	require.Len(t, p.OrGroups, 2, "each dimension must be its own group")
	for _, group := range p.OrGroups {
		assert.Len(t, group, 2)
	}
}

func TestComposeMixedSimpleAndDisjunctive(t *testing.T) {
	q := &Query{
		Gender:             "female",
		Age:                "30-50",
		DocumentCategories: []string{"clearance", "identity"},
	}
	q.Normalize()
	require.NoError(t, q.Validate())

	p := Compose(q)
	assert.Len(t, p.Conds, 2)
	require.Len(t, p.OrGroups, 1)
	assert.Len(t, p.OrGroups[0], 2)
}
