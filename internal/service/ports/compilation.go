package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

// CompilationRepo stores compilations together with their ordered event ids.
type CompilationRepo interface {
	Create(ctx context.Context, c *domain.Compilation) error
	GetByID(ctx context.Context, id string) (*domain.Compilation, error)
	Update(ctx context.Context, c *domain.Compilation) error
	Delete(ctx context.Context, id string) error
	// List filters by pinned when it is set.
	List(ctx context.Context, pinned *bool, page domain.Page) ([]*domain.Compilation, error)
}
