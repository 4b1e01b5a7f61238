package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// StatsRepository stores endpoint hits next to the main schema and
// aggregates them into view counts.
type StatsRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewStatsRepo(db *dbpg.DB) *StatsRepository {
	return &StatsRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *StatsRepository) Record(ctx context.Context, hit domain.Hit) error {
	query := `INSERT INTO endpoint_hits (app, uri, ip, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, hit.App, hit.URI, hit.IP, hit.Timestamp); err != nil {
		return fmt.Errorf("insert hit: %w", err)
	}
	return nil
}

func (r *StatsRepository) Query(ctx context.Context, q domain.StatsQuery) ([]domain.ViewStats, error) {
	count := "COUNT(ip)"
	if q.Unique {
		count = "COUNT(DISTINCT ip)"
	}
	query := `SELECT app, uri, ` + count + ` AS hits
			  FROM endpoint_hits
			  WHERE created_at BETWEEN $1 AND $2
			    AND (cardinality($3::text[]) = 0 OR uri = ANY($3::text[]))
			  GROUP BY app, uri
			  ORDER BY hits DESC`

	uris := q.URIs
	if uris == nil {
		uris = []string{}
	}
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, q.Start, q.End, pq.Array(uris))
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	res := make([]domain.ViewStats, 0)
	for rows.Next() {
		var v domain.ViewStats
		if err = rows.Scan(&v.App, &v.URI, &v.Hits); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		res = append(res, v)
	}

	return res, rows.Err()
}
