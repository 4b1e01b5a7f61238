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

// event ids come back in their stored position
const selectCompilation = `SELECT c.id, c.title, c.pinned,
		COALESCE(array_agg(ce.event_id::text ORDER BY ce.position)
			FILTER (WHERE ce.event_id IS NOT NULL), '{}')
	FROM compilations c
	LEFT JOIN compilation_events ce ON ce.compilation_id = c.id`

const insertCompilationEvents = `INSERT INTO compilation_events (compilation_id, event_id, position)
	SELECT $1, ids.id, ids.ord - 1
	FROM unnest($2::uuid[]) WITH ORDINALITY AS ids(id, ord)`

type CompilationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCompilationRepo(db *dbpg.DB) *CompilationRepository {
	return &CompilationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CompilationRepository) Create(ctx context.Context, c *domain.Compilation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO compilations (id, title, pinned) VALUES ($1, $2, $3)`, c.ID, c.Title, c.Pinned); err != nil {
		return fmt.Errorf("insert compilation: %w", err)
	}
	if err = r.linkEvents(ctx, tx, c); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *CompilationRepository) GetByID(ctx context.Context, id string) (*domain.Compilation, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, selectCompilation+` WHERE c.id = $1 GROUP BY c.id`, id)
	if err != nil {
		return nil, fmt.Errorf("get compilation: %w", err)
	}

	c, err := scanCompilation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCompilationNotFound
		}
		return nil, fmt.Errorf("scan compilation: %w", err)
	}

	return c, nil
}

// Update rewrites the compilation row and replaces its event links.
func (r *CompilationRepository) Update(ctx context.Context, c *domain.Compilation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE compilations SET title = $2, pinned = $3 WHERE id = $1`, c.ID, c.Title, c.Pinned)
	if err != nil {
		return fmt.Errorf("update compilation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("compilation rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrCompilationNotFound
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM compilation_events WHERE compilation_id = $1`, c.ID); err != nil {
		return fmt.Errorf("unlink compilation events: %w", err)
	}
	if err = r.linkEvents(ctx, tx, c); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *CompilationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM compilations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete compilation: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("compilation rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrCompilationNotFound
	}

	return nil
}

func (r *CompilationRepository) List(ctx context.Context, pinned *bool, page domain.Page) ([]*domain.Compilation, error) {
	query := selectCompilation + `
		WHERE $1::boolean IS NULL OR c.pinned = $1
		GROUP BY c.id
		ORDER BY c.id
		OFFSET $2 LIMIT $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pinned, page.From, page.Size)
	if err != nil {
		return nil, fmt.Errorf("list compilations: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Compilation, 0)
	for rows.Next() {
		c, err := scanCompilation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan compilation: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func (r *CompilationRepository) linkEvents(ctx context.Context, tx *sql.Tx, c *domain.Compilation) error {
	if len(c.EventIDs) == 0 {
		return nil
	}
	if _, err := tx.ExecContext(ctx, insertCompilationEvents, c.ID, pq.Array(c.EventIDs)); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("link compilation events: %w", err)
	}
	return nil
}

func scanCompilation(row rowScanner) (*domain.Compilation, error) {
	var (
		c        domain.Compilation
		eventIDs pq.StringArray
	)
	if err := row.Scan(&c.ID, &c.Title, &c.Pinned, &eventIDs); err != nil {
		return nil, err
	}
	c.EventIDs = []string(eventIDs)
	return &c, nil
}
