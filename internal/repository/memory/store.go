// Package memory is an in-process storage backend. It backs the service in
// `storage.driver: memory` mode and in tests; the Postgres repositories are
// the production path.
package memory

import (
	"sort"
	"sync"

	"github.com/stpnv0/EventHub/internal/domain"
)

type Store struct {
	mu         sync.RWMutex
	users      map[string]domain.User
	categories map[string]domain.Category
	locations  map[[2]float64]domain.Location
	events     map[string]domain.Event
	requests   map[string]domain.ParticipationRequest
	comps      map[string]domain.Compilation
	hits       []domain.Hit
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]domain.User),
		categories: make(map[string]domain.Category),
		locations:  make(map[[2]float64]domain.Location),
		events:     make(map[string]domain.Event),
		requests:   make(map[string]domain.ParticipationRequest),
		comps:      make(map[string]domain.Compilation),
	}
}

func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }
func (s *Store) Categories() *CategoryRepository { return &CategoryRepository{s: s} }
func (s *Store) Locations() *LocationRepository { return &LocationRepository{s: s} }
func (s *Store) Events() *EventRepository { return &EventRepository{s: s} }
func (s *Store) Requests() *RequestRepository { return &RequestRepository{s: s} }
func (s *Store) Stats() *StatsRepository { return &StatsRepository{s: s} }
func (s *Store) Compilations() *CompilationRepository { return &CompilationRepository{s: s} }

// confirmedLocked counts CONFIRMED requests of an event; s.mu must be held.
func (s *Store) confirmedLocked(eventID string) int {
	n := 0
	for _, r := range s.requests {
		if r.EventID == eventID && r.Status == domain.RequestStatusConfirmed {
			n++
		}
	}
	return n
}

func paginate[T any](items []T, page domain.Page) []T {
	if page.From >= len(items) {
		return []T{}
	}
	items = items[page.From:]
	if page.Size > 0 && page.Size < len(items) {
		items = items[:page.Size]
	}
	return items
}

func sortByID[T any](items []T, id func(T) string) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
