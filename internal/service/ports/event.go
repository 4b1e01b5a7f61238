package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/query"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Find(ctx context.Context, q query.EventQuery) ([]*domain.Event, error)
}

// EventLocker serializes every read-modify-write on a single event.
type EventLocker interface {
	Lock(eventID string) (unlock func())
}

type Ledger interface {
	Count(ctx context.Context, eventID string) (int, error)
	Counts(ctx context.Context, eventIDs []string) (map[string]int, error)
	TryReserve(ctx context.Context, eventID string, limit int) (bool, error)
	Release(ctx context.Context, eventID string) error
	Tracked() []string
	Reset(eventID string, count int)
	Forget(eventID string)
}
