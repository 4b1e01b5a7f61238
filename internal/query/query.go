// Package query describes event lookups as an ordered list of named
// predicates. Storage backends compile the list into their own filter form.
package query

import (
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
)

type Kind int

const (
	InitiatorIn Kind = iota + 1
	StateIn
	CategoryIn
	PaidEq
	// DateAfter is event_date > T.
	DateAfter
	// DateFrom is event_date >= T.
	DateFrom
	// DateBefore is event_date < T.
	DateBefore
	// DateUntil is event_date <= T.
	DateUntil
	// TextContains matches annotation or description, case-insensitively.
	TextContains
	// HasCapacity keeps events that are unlimited or below their limit.
	HasCapacity
	IDIn
)

var kindNames = map[Kind]string{
	InitiatorIn:  "initiator_in",
	StateIn:      "state_in",
	CategoryIn:   "category_in",
	PaidEq:       "paid_eq",
	DateAfter:    "date_after",
	DateFrom:     "date_from",
	DateBefore:   "date_before",
	DateUntil:    "date_until",
	TextContains: "text_contains",
	HasCapacity:  "has_capacity",
	IDIn:         "id_in",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Predicate is a single named condition. Only the field matching Kind is set.
type Predicate struct {
	Kind    Kind
	Strings []string
	Time    time.Time
	Bool    bool
	Text    string
}

type Order int

const (
	OrderByID Order = iota
	OrderByEventDate
)

type EventQuery struct {
	Predicates []Predicate
	Order      Order
	Offset     int
	// Limit of 0 means no limit.
	Limit int
}

// Builder accumulates predicates in call order. Absent inputs (empty slices,
// nil pointers, blank text) add nothing.
type Builder struct {
	q EventQuery
}

func New() *Builder {
	return &Builder{}
}

func (b *Builder) add(p Predicate) *Builder {
	b.q.Predicates = append(b.q.Predicates, p)
	return b
}

func (b *Builder) InitiatorIn(ids []string) *Builder {
	if len(ids) == 0 {
		return b
	}
	return b.add(Predicate{Kind: InitiatorIn, Strings: ids})
}

func (b *Builder) IDIn(ids []string) *Builder {
	if len(ids) == 0 {
		return b
	}
	return b.add(Predicate{Kind: IDIn, Strings: ids})
}

func (b *Builder) StateIn(states ...domain.EventState) *Builder {
	if len(states) == 0 {
		return b
	}
	s := make([]string, len(states))
	for i, st := range states {
		s[i] = string(st)
	}
	return b.add(Predicate{Kind: StateIn, Strings: s})
}

func (b *Builder) CategoryIn(ids []string) *Builder {
	if len(ids) == 0 {
		return b
	}
	return b.add(Predicate{Kind: CategoryIn, Strings: ids})
}

func (b *Builder) PaidEq(paid *bool) *Builder {
	if paid == nil {
		return b
	}
	return b.add(Predicate{Kind: PaidEq, Bool: *paid})
}

func (b *Builder) DateAfter(t *time.Time) *Builder { return b.date(DateAfter, t) }
func (b *Builder) DateFrom(t *time.Time) *Builder { return b.date(DateFrom, t) }
func (b *Builder) DateBefore(t *time.Time) *Builder { return b.date(DateBefore, t) }
func (b *Builder) DateUntil(t *time.Time) *Builder { return b.date(DateUntil, t) }

func (b *Builder) date(k Kind, t *time.Time) *Builder {
	if t == nil {
		return b
	}
	return b.add(Predicate{Kind: k, Time: *t})
}

func (b *Builder) TextContains(text string) *Builder {
	if text == "" {
		return b
	}
	return b.add(Predicate{Kind: TextContains, Text: text})
}

func (b *Builder) HasCapacity(only bool) *Builder {
	if !only {
		return b
	}
	return b.add(Predicate{Kind: HasCapacity})
}

func (b *Builder) OrderBy(o Order) *Builder {
	b.q.Order = o
	return b
}

func (b *Builder) Page(p domain.Page) *Builder {
	b.q.Offset = p.From
	b.q.Limit = p.Size
	return b
}

func (b *Builder) Build() EventQuery {
	q := b.q
	q.Predicates = append([]Predicate(nil), b.q.Predicates...)
	return q
}
