package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CategoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCategoryRepo(db *dbpg.DB) *CategoryRepository {
	return &CategoryRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	_, err := r.db.ExecWithRetry(ctx, r.strategy, `INSERT INTO categories (id, name) VALUES ($1, $2)`, c.ID, c.Name)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrCategoryNameTaken
		}
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT id, name FROM categories WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	var c domain.Category
	if err = row.Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}

	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context, page domain.Page) ([]*domain.Category, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT id, name FROM categories ORDER BY name OFFSET $1 LIMIT $2`, page.From, page.Size)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err = rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

type LocationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLocationRepo(db *dbpg.DB) *LocationRepository {
	return &LocationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *LocationRepository) GetOrCreate(ctx context.Context, lat, lon float64) (*domain.Location, error) {
	// the no-op update makes RETURNING yield the existing row on conflict
	query := `INSERT INTO locations (id, lat, lon) VALUES ($1, $2, $3)
			  ON CONFLICT (lat, lon) DO UPDATE SET lat = EXCLUDED.lat
			  RETURNING id, lat, lon`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, uuid.New().String(), lat, lon)
	if err != nil {
		return nil, fmt.Errorf("upsert location: %w", err)
	}

	var l domain.Location
	if err = row.Scan(&l.ID, &l.Lat, &l.Lon); err != nil {
		return nil, fmt.Errorf("scan location: %w", err)
	}

	return &l, nil
}
