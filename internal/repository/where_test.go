package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileWhere_Empty(t *testing.T) {
	var ph placeholders
	cond, err := compileWhere(nil, &ph)

	require.NoError(t, err)
	assert.Empty(t, cond.Clause)
	assert.Empty(t, cond.Params)
}

func TestCompileWhere_Predicates(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	paid := false

	q := query.New().
		InitiatorIn([]string{"u1", "u2"}).
		PaidEq(&paid).
		DateFrom(&start).
		TextContains("50%_off").
		Build()

	var ph placeholders
	cond, err := compileWhere(q.Predicates, &ph)

	require.NoError(t, err)
	assert.Equal(t,
		"e.initiator_id = ANY($1) AND e.paid = $2 AND e.event_date >= $3 AND "+
			"(e.annotation ILIKE $4 OR e.description ILIKE $4)",
		cond.Clause,
	)
	assert.Equal(t, []any{pq.Array([]string{"u1", "u2"}), false, start, `%50\%\_off%`}, cond.Params)
}

func TestCompileWhere_HasCapacityUsesConfirmedStatus(t *testing.T) {
	var ph placeholders
	cond, err := compileWhere(query.New().HasCapacity(true).Build().Predicates, &ph)

	require.NoError(t, err)
	assert.Contains(t, cond.Clause, "e.participant_limit = 0 OR")
	assert.Equal(t, []any{string(domain.RequestStatusConfirmed)}, cond.Params)
}

func TestCompileWhere_IDIn(t *testing.T) {
	var ph placeholders
	cond, err := compileWhere(query.New().IDIn([]string{"e1", "e2"}).Build().Predicates, &ph)

	require.NoError(t, err)
	assert.Equal(t, "e.id = ANY($1)", cond.Clause)
	assert.Equal(t, []any{pq.Array([]string{"e1", "e2"})}, cond.Params)
}

func TestCompileWhere_UnknownKind(t *testing.T) {
	var ph placeholders
	_, err := compileWhere([]query.Predicate{{Kind: query.Kind(99)}}, &ph)

	assert.Error(t, err)
}

func TestBuildFind(t *testing.T) {
	q := query.New().
		StateIn(domain.EventStatePublished).
		OrderBy(query.OrderByEventDate).
		Page(domain.Page{From: 10, Size: 5}).
		Build()

	sql, args, err := buildFind(q)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sql, selectEvent))
	assert.True(t, strings.HasSuffix(sql, " WHERE e.state = ANY($1) ORDER BY e.event_date, e.id LIMIT $2 OFFSET $3"))
	assert.Equal(t, []any{pq.Array([]string{"PUBLISHED"}), 5, 10}, args)
}

func TestBuildFind_NoLimit(t *testing.T) {
	sql, args, err := buildFind(query.New().Build())

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(sql, " ORDER BY e.id"))
	assert.Empty(t, args)
}
