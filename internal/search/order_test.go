package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClauseAllowList(t *testing.T) {
	assert.Equal(t, "workers.first_name ASC", OrderClause("firstName", "asc"))
	assert.Equal(t, "workers.state DESC", OrderClause("state", "desc"))
	assert.Equal(t, "workers.created_at ASC", OrderClause("createdAt", "asc"))
}

func TestOrderClauseUnknownKeyFallsBack(t *testing.T) {
	// Unknown keys must never pass through to the query
	assert.Equal(t, "workers.created_at DESC", OrderClause("passwordHash", "asc"))
	assert.Equal(t, "workers.created_at DESC", OrderClause("", ""))
	assert.Equal(t, "workers.created_at DESC", OrderClause("created_at; DROP TABLE workers", "desc"))
}
