package search

import "strings"

// Cond is one SQL condition fragment with its placeholder args.
type Cond struct {
	Expr string
	Args []interface{}
}

// Fragment is what a single filter dimension contributes to the query.
// And conditions are combined with every other fragment's conditions.
// Or conditions are OR'd together inside this fragment only, then the
// whole group is AND'd with the rest. Keeping the two apart is the point:
// flattening everything into one AND (or one OR) silently changes the
// meaning as soon as two multi-value filters are active at once.
type Fragment struct {
	And []Cond
	Or  []Cond
}

// Predicate is the composed filter for one search request. Empty slices
// mean match-all.
type Predicate struct {
	Conds    []Cond
	OrGroups [][]Cond
}

// IsUniversal reports whether the predicate matches every row.
func (p Predicate) IsUniversal() bool {
	return len(p.Conds) == 0 && len(p.OrGroups) == 0
}

// filterBuilder inspects the query and either contributes a fragment or
// reports not-applicable. Builders are independent: adding a filter
// dimension is a new entry here, never an edit to an existing one.
type filterBuilder struct {
	name  string
	build func(q *Query) (Fragment, bool)
}

// filterBuilders is an immutable table, composed fresh per request.
var filterBuilders = []filterBuilder{
	{"gender", genderFilter},
	{"age", ageFilter},
	{"supportType", supportTypeFilter},
	{"languages", languagesFilter},
	{"search", searchFilter},
	{"documentCategories", documentCategoriesFilter},
	{"documentStatuses", documentStatusesFilter},
	{"requirementTypes", requirementTypesFilter},
}

// Compose runs every builder over the query and assembles the predicate.
// Simple conditions all AND together; each disjunctive fragment becomes
// its own OR group so that "any of these types AND any of these statuses"
// keeps both "any of" clauses intact.
func Compose(q *Query) Predicate {
	var p Predicate
	for _, fb := range filterBuilders {
		frag, ok := fb.build(q)
		if !ok {
			continue
		}
		p.Conds = append(p.Conds, frag.And...)
		if len(frag.Or) > 0 {
			p.OrGroups = append(p.OrGroups, frag.Or)
		}
	}
	return p
}

func genderFilter(q *Query) (Fragment, bool) {
	if q.Gender == "" {
		return Fragment{}, false
	}
	return Fragment{And: []Cond{{Expr: "workers.gender = ?", Args: []interface{}{q.Gender}}}}, true
}

func ageFilter(q *Query) (Fragment, bool) {
	min, max, ok := q.AgeRange()
	if !ok {
		return Fragment{}, false
	}
	if max == 0 {
		return Fragment{And: []Cond{{Expr: "workers.age >= ?", Args: []interface{}{min}}}}, true
	}
	return Fragment{And: []Cond{{Expr: "workers.age BETWEEN ? AND ?", Args: []interface{}{min, max}}}}, true
}

func supportTypeFilter(q *Query) (Fragment, bool) {
	display, ok := SupportTypes[q.SupportType]
	if !ok {
		return Fragment{}, false
	}
	return Fragment{And: []Cond{{
		Expr: "EXISTS (SELECT 1 FROM worker_services ws WHERE ws.worker_id = workers.id AND ws.category = ?)",
		Args: []interface{}{display},
	}}}, true
}

// languagesFilter matches workers speaking ANY of the requested languages.
func languagesFilter(q *Query) (Fragment, bool) {
	if len(q.Languages) == 0 {
		return Fragment{}, false
	}
	var or []Cond
	for _, lang := range q.Languages {
		or = append(or, Cond{
			Expr: "workers.languages LIKE ?",
			Args: []interface{}{"%" + lang + "%"},
		})
	}
	return Fragment{Or: or}, true
}

// searchFilter does case-insensitive free text over name and mobile.
// Names have no canonical casing in the database, so here we fold case
// explicitly instead of normalizing the input.
func searchFilter(q *Query) (Fragment, bool) {
	term := strings.TrimSpace(q.Search)
	if term == "" {
		return Fragment{}, false
	}
	like := "%" + strings.ToLower(term) + "%"
	return Fragment{Or: []Cond{
		{Expr: "LOWER(workers.first_name) LIKE ?", Args: []interface{}{like}},
		{Expr: "LOWER(workers.last_name) LIKE ?", Args: []interface{}{like}},
		{Expr: "LOWER(workers.mobile) LIKE ?", Args: []interface{}{like}},
	}}, true
}

func requirementExists(column string, value string) Cond {
	return Cond{
		Expr: "EXISTS (SELECT 1 FROM verification_requirements vr WHERE vr.worker_id = workers.id AND vr." + column + " = ?)",
		Args: []interface{}{value},
	}
}

func documentCategoriesFilter(q *Query) (Fragment, bool) {
	if len(q.DocumentCategories) == 0 {
		return Fragment{}, false
	}
	var or []Cond
	for _, cat := range q.DocumentCategories {
		or = append(or, requirementExists("category", cat))
	}
	return Fragment{Or: or}, true
}

func documentStatusesFilter(q *Query) (Fragment, bool) {
	if len(q.DocumentStatuses) == 0 {
		return Fragment{}, false
	}
	var or []Cond
	for _, status := range q.DocumentStatuses {
		or = append(or, requirementExists("status", status))
	}
	return Fragment{Or: or}, true
}

func requirementTypesFilter(q *Query) (Fragment, bool) {
	if len(q.RequirementTypes) == 0 {
		return Fragment{}, false
	}
	var or []Cond
	for _, rt := range q.RequirementTypes {
		or = append(or, requirementExists("document_type", rt))
	}
	return Fragment{Or: or}, true
}
