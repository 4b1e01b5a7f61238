package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type StatsCollector interface {
	Record(ctx context.Context, hit domain.Hit) error
	Query(ctx context.Context, q domain.StatsQuery) ([]domain.ViewStats, error)
}
