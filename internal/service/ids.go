package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
)

// canonicalID rewrites any spelling uuid.Parse accepts (upper case, braces,
// urn prefix) into the lower-case hyphenated form the stores hold. Values
// that are not uuids pass through and fail the lookup that follows.
func canonicalID(id string) string {
	if u, err := uuid.Parse(id); err == nil {
		return u.String()
	}
	return id
}

func canonicalIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	res := make([]string, len(ids))
	for i, id := range ids {
		res[i] = canonicalID(id)
	}
	return res
}

// loadLocked takes the per-event lock keyed by the stored event id and
// returns the event as read under that lock. The caller must run unlock.
func loadLocked(
	ctx context.Context,
	repo ports.EventRepo,
	locker ports.EventLocker,
	eventID string,
) (*domain.Event, func(), error) {
	event, err := repo.GetByID(ctx, canonicalID(eventID))
	if err != nil {
		return nil, nil, fmt.Errorf("get event: %w", err)
	}

	unlock := locker.Lock(event.ID)

	event, err = repo.GetByID(ctx, event.ID)
	if err != nil {
		unlock()
		return nil, nil, fmt.Errorf("get event: %w", err)
	}
	return event, unlock, nil
}
