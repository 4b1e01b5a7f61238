package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/query"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const selectEvent = `SELECT e.id, e.title, e.annotation, e.description, e.category_id, e.initiator_id,
		l.id, l.lat, l.lon, e.paid, e.participant_limit, e.request_moderation,
		e.state, e.created_on, e.event_date, e.published_on
	FROM events e
	JOIN locations l ON l.id = e.location_id`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		e           domain.Event
		publishedOn sql.NullTime
	)
	if err := row.Scan(
		&e.ID, &e.Title, &e.Annotation, &e.Description, &e.CategoryID, &e.InitiatorID,
		&e.Location.ID, &e.Location.Lat, &e.Location.Lon,
		&e.Paid, &e.ParticipantLimit, &e.RequestModeration,
		&e.State, &e.CreatedOn, &e.EventDate, &publishedOn,
	); err != nil {
		return nil, err
	}
	if publishedOn.Valid {
		t := publishedOn.Time.UTC()
		e.PublishedOn = &t
	}
	e.CreatedOn = e.CreatedOn.UTC()
	e.EventDate = e.EventDate.UTC()
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, annotation, description, category_id, initiator_id, location_id,
				paid, participant_limit, request_moderation, state, created_on, event_date, published_on)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Annotation, e.Description, e.CategoryID, e.InitiatorID, e.Location.ID,
		e.Paid, e.ParticipantLimit, e.RequestModeration, e.State, e.CreatedOn, e.EventDate, e.PublishedOn,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, selectEvent+` WHERE e.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, annotation = $3, description = $4, category_id = $5, location_id = $6,
			      paid = $7, participant_limit = $8, request_moderation = $9, state = $10,
			      event_date = $11, published_on = $12
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Annotation, e.Description, e.CategoryID, e.Location.ID,
		e.Paid, e.ParticipantLimit, e.RequestModeration, e.State, e.EventDate, e.PublishedOn,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) Find(ctx context.Context, q query.EventQuery) ([]*domain.Event, error) {
	stmt, args, err := buildFind(q)
	if err != nil {
		return nil, fmt.Errorf("build event query: %w", err)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}
