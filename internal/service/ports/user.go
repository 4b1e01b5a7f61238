package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, ids []string, page domain.Page) ([]*domain.User, error)
}

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context, page domain.Page) ([]*domain.Category, error)
}

type LocationRepo interface {
	// GetOrCreate is idempotent by coordinate pair.
	GetOrCreate(ctx context.Context, lat, lon float64) (*domain.Location, error)
}
