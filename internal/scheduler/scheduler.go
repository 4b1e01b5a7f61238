// Package scheduler periodically checks the confirmation ledger against the
// persisted requests.
package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type ledgerReconciler interface {
	Reconcile(ctx context.Context) ([]domain.LedgerDrift, error)
}

type Scheduler struct {
	reconciler ledgerReconciler
	interval   time.Duration
	logger     logger.Logger
}

func New(
	reconciler ledgerReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reconciler: reconciler,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("ledger reconciler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("ledger reconciler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	drifts, err := s.reconciler.Reconcile(ctx)
	if err != nil {
		s.logger.Error("ledger reconciliation failed",
			logger.String("error", err.Error()),
		)
	}

	for _, d := range drifts {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "invariant violation: confirmed count drifted",
			logger.String("event_id", d.EventID),
			logger.Int("tracked", d.Tracked),
			logger.Int("persisted", d.Persisted),
			logger.Int("limit", d.Limit),
		)
	}
}
