package query

import (
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuilder_OmitsAbsentFilters(t *testing.T) {
	q := New().
		InitiatorIn(nil).
		StateIn().
		CategoryIn([]string{}).
		PaidEq(nil).
		DateAfter(nil).
		DateUntil(nil).
		TextContains("").
		HasCapacity(false).
		Build()

	assert.Empty(t, q.Predicates)
}

func TestBuilder_KeepsOrder(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	paid := true

	q := New().
		StateIn(domain.EventStatePublished).
		TextContains("jazz").
		PaidEq(&paid).
		DateAfter(&start).
		HasCapacity(true).
		OrderBy(OrderByEventDate).
		Page(domain.Page{From: 20, Size: 10}).
		Build()

	kinds := make([]Kind, len(q.Predicates))
	for i, p := range q.Predicates {
		kinds[i] = p.Kind
	}
	assert.Equal(t, []Kind{StateIn, TextContains, PaidEq, DateAfter, HasCapacity}, kinds)
	assert.Equal(t, []string{"PUBLISHED"}, q.Predicates[0].Strings)
	assert.True(t, q.Predicates[2].Bool)
	assert.Equal(t, start, q.Predicates[3].Time)
	assert.Equal(t, OrderByEventDate, q.Order)
	assert.Equal(t, 20, q.Offset)
	assert.Equal(t, 10, q.Limit)
}

func TestBuilder_BuildCopiesPredicates(t *testing.T) {
	b := New().CategoryIn([]string{"c1"})
	q := b.Build()
	b.TextContains("more")

	assert.Len(t, q.Predicates, 1)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "has_capacity", HasCapacity.String())
	assert.Equal(t, "id_in", IDIn.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
