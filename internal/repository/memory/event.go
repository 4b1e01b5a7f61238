package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/query"
)

type EventRepository struct {
	s *Store
}

func (r *EventRepository) Create(_ context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.events[e.ID] = *e
	return nil
}

func (r *EventRepository) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

func (r *EventRepository) Update(_ context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[e.ID]; !ok {
		return domain.ErrEventNotFound
	}
	r.s.events[e.ID] = *e
	return nil
}

func (r *EventRepository) Find(_ context.Context, q query.EventQuery) ([]*domain.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Event, 0)
	for _, e := range r.s.events {
		ok, err := r.matchAll(&e, q.Predicates)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, &e)
		}
	}

	switch q.Order {
	case query.OrderByEventDate:
		sort.Slice(res, func(i, j int) bool {
			if !res[i].EventDate.Equal(res[j].EventDate) {
				return res[i].EventDate.Before(res[j].EventDate)
			}
			return res[i].ID < res[j].ID
		})
	default:
		sortByID(res, func(e *domain.Event) string { return e.ID })
	}

	return paginate(res, domain.Page{From: q.Offset, Size: q.Limit}), nil
}

// matchAll is the in-process compiler of query predicates; s.mu must be held.
func (r *EventRepository) matchAll(e *domain.Event, preds []query.Predicate) (bool, error) {
	for _, p := range preds {
		ok, err := r.match(e, p)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (r *EventRepository) match(e *domain.Event, p query.Predicate) (bool, error) {
	switch p.Kind {
	case query.InitiatorIn:
		return contains(p.Strings, e.InitiatorID), nil
	case query.IDIn:
		return contains(p.Strings, e.ID), nil
	case query.StateIn:
		return contains(p.Strings, string(e.State)), nil
	case query.CategoryIn:
		return contains(p.Strings, e.CategoryID), nil
	case query.PaidEq:
		return e.Paid == p.Bool, nil
	case query.DateAfter:
		return e.EventDate.After(p.Time), nil
	case query.DateFrom:
		return !e.EventDate.Before(p.Time), nil
	case query.DateBefore:
		return e.EventDate.Before(p.Time), nil
	case query.DateUntil:
		return !e.EventDate.After(p.Time), nil
	case query.TextContains:
		needle := strings.ToLower(p.Text)
		return strings.Contains(strings.ToLower(e.Annotation), needle) ||
			strings.Contains(strings.ToLower(e.Description), needle), nil
	case query.HasCapacity:
		return e.ParticipantLimit == 0 || r.s.confirmedLocked(e.ID) < e.ParticipantLimit, nil
	default:
		return false, fmt.Errorf("unsupported predicate %s", p.Kind)
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
