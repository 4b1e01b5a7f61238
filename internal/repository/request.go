package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const selectRequest = `SELECT id, event_id, requester_id, status, created FROM requests`

type RequestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRequestRepo(db *dbpg.DB) *RequestRepository {
	return &RequestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanRequest(row rowScanner) (*domain.ParticipationRequest, error) {
	var r domain.ParticipationRequest
	if err := row.Scan(&r.ID, &r.EventID, &r.RequesterID, &r.Status, &r.Created); err != nil {
		return nil, err
	}
	r.Created = r.Created.UTC()
	return &r, nil
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.ParticipationRequest) error {
	query := `INSERT INTO requests (id, event_id, requester_id, status, created)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, req.ID, req.EventID, req.RequesterID, req.Status, req.Created)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateRequest
		}
		return fmt.Errorf("insert request: %w", err)
	}

	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*domain.ParticipationRequest, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, selectRequest+` WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}

	return req, nil
}

func (r *RequestRepository) ExistsActive(ctx context.Context, requesterID, eventID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM requests
				WHERE requester_id = $1 AND event_id = $2 AND status = ANY($3)
			  )`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, requesterID, eventID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return false, fmt.Errorf("check request: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan exists: %w", err)
	}

	return exists, nil
}

func (r *RequestRepository) ListPendingByIDs(ctx context.Context, eventID string, ids []string) ([]*domain.ParticipationRequest, error) {
	if len(ids) == 0 {
		return []*domain.ParticipationRequest{}, nil
	}
	return r.list(ctx, selectRequest+` WHERE event_id = $1 AND id = ANY($2) AND status = $3 ORDER BY created, id`,
		eventID, pq.Array(ids), domain.RequestStatusPending)
}

func (r *RequestRepository) ApplyDecisions(ctx context.Context, confirmedIDs, rejectedIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Обновляем обе группы в одной транзакции
	query := `UPDATE requests SET status = $1 WHERE id = ANY($2) AND status = $3`
	for _, batch := range []struct {
		status domain.RequestStatus
		ids    []string
	}{
		{domain.RequestStatusConfirmed, confirmedIDs},
		{domain.RequestStatusRejected, rejectedIDs},
	} {
		if len(batch.ids) == 0 {
			continue
		}
		res, err := tx.ExecContext(ctx, query, batch.status, pq.Array(batch.ids), domain.RequestStatusPending)
		if err != nil {
			return fmt.Errorf("set %s: %w", batch.status, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("requests rows affected: %w", err)
		}
		// every id was loaded as PENDING under the event lock
		if int(n) != len(batch.ids) {
			return fmt.Errorf("set %s: %w: %d of %d requests updated",
				batch.status, domain.ErrRequestNotFound, n, len(batch.ids))
		}
	}

	return tx.Commit()
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `UPDATE requests SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("request rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrRequestNotFound
	}

	return nil
}

func (r *RequestRepository) ListByRequester(ctx context.Context, requesterID string) ([]*domain.ParticipationRequest, error) {
	return r.list(ctx, selectRequest+` WHERE requester_id = $1 ORDER BY created, id`, requesterID)
}

func (r *RequestRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.ParticipationRequest, error) {
	return r.list(ctx, selectRequest+` WHERE event_id = $1 ORDER BY created, id`, eventID)
}

func (r *RequestRepository) list(ctx context.Context, query string, args ...any) ([]*domain.ParticipationRequest, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.ParticipationRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		res = append(res, req)
	}

	return res, rows.Err()
}

func (r *RequestRepository) CountConfirmed(ctx context.Context, eventIDs []string) (map[string]int, error) {
	res := make(map[string]int, len(eventIDs))
	if len(eventIDs) == 0 {
		return res, nil
	}

	query := `SELECT event_id, COUNT(*)
			  FROM requests
			  WHERE event_id = ANY($1) AND status = $2
			  GROUP BY event_id`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(eventIDs), domain.RequestStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count confirmed: %w", err)
	}
	defer rows.Close()

	for _, id := range eventIDs {
		res[id] = 0
	}
	for rows.Next() {
		var (
			id string
			n  int
		)
		if err = rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		res[id] = n
	}

	return res, rows.Err()
}
