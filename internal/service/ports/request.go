package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type RequestRepo interface {
	Create(ctx context.Context, r *domain.ParticipationRequest) error
	GetByID(ctx context.Context, id string) (*domain.ParticipationRequest, error)
	ExistsActive(ctx context.Context, requesterID, eventID string) (bool, error)
	// ListPendingByIDs returns only requests of eventID that are still PENDING.
	ListPendingByIDs(ctx context.Context, eventID string, ids []string) ([]*domain.ParticipationRequest, error)
	// ApplyDecisions persists a batch outcome in one transaction.
	ApplyDecisions(ctx context.Context, confirmedIDs, rejectedIDs []string) error
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
	ListByRequester(ctx context.Context, requesterID string) ([]*domain.ParticipationRequest, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.ParticipationRequest, error)
	CountConfirmed(ctx context.Context, eventIDs []string) (map[string]int, error)
}
