package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type Notifier interface {
	NotifyRequestCreated(ctx context.Context, initiator *domain.User, event *domain.Event, req *domain.ParticipationRequest)
	NotifyRequestDecided(ctx context.Context, requester *domain.User, event *domain.Event, req *domain.ParticipationRequest)
	NotifyEventModerated(ctx context.Context, initiator *domain.User, event *domain.Event)
}
