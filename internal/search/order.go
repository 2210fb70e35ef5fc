package search

// sortColumns is the allow-list of sort keys. Anything else falls back
// to creation time; a raw pass-through of the sortBy parameter would let
// callers order by arbitrary columns (or inject SQL), so unknown keys
// never reach the query.
var sortColumns = map[string]string{
	"createdAt": "workers.created_at",
	"firstName": "workers.first_name",
	"lastName":  "workers.last_name",
	"city":      "workers.city",
	"state":     "workers.state",
}

// OrderClause translates sortBy/sortOrder into a SQL ORDER BY body.
// Default is newest first.
func OrderClause(sortBy, sortOrder string) string {
	col, ok := sortColumns[sortBy]
	if !ok {
		col = "workers.created_at"
		sortOrder = "desc"
	}
	if sortOrder == "asc" {
		return col + " ASC"
	}
	return col + " DESC"
}
