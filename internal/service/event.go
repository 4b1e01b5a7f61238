package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/lifecycle"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type eventEnricher interface {
	Enrich(ctx context.Context, events []*domain.Event) ([]*domain.EventView, error)
}

type EventService struct {
	eventRepo    ports.EventRepo
	userRepo     ports.UserRepo
	categoryRepo ports.CategoryRepo
	locationRepo ports.LocationRepo
	ledger       ports.Ledger
	locker       ports.EventLocker
	enricher     eventEnricher
	notifier     ports.Notifier
	logger       logger.Logger
	now          func() time.Time
}

func NewEventService(
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	categoryRepo ports.CategoryRepo,
	locationRepo ports.LocationRepo,
	ledger ports.Ledger,
	locker ports.EventLocker,
	enricher eventEnricher,
	notifier ports.Notifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		ledger:       ledger,
		locker:       locker,
		enricher:     enricher,
		notifier:     notifier,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *EventService) Create(ctx context.Context, initiatorID string, input domain.CreateEventInput) (*domain.EventView, error) {
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Annotation) == "" ||
		strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: title, annotation and description are required", domain.ErrValidation)
	}

	now := s.now()
	if err := lifecycle.ValidateEventDate(input.EventDate, now); err != nil {
		return nil, err
	}

	limit := 0
	if input.ParticipantLimit != nil {
		limit = *input.ParticipantLimit
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrNegativeLimit, limit)
	}

	initiator, err := s.userRepo.GetByID(ctx, canonicalID(initiatorID))
	if err != nil {
		return nil, fmt.Errorf("check initiator: %w", err)
	}
	initiatorID = initiator.ID
	category, err := s.categoryRepo.GetByID(ctx, canonicalID(input.CategoryID))
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	loc, err := s.locationRepo.GetOrCreate(ctx, input.Lat, input.Lon)
	if err != nil {
		return nil, fmt.Errorf("resolve location: %w", err)
	}

	event := &domain.Event{
		ID:                uuid.New().String(),
		Title:             input.Title,
		Annotation:        input.Annotation,
		Description:       input.Description,
		CategoryID:        category.ID,
		InitiatorID:       initiatorID,
		Location:          *loc,
		Paid:              input.Paid != nil && *input.Paid,
		ParticipantLimit:  limit,
		RequestModeration: input.RequestModeration == nil || *input.RequestModeration,
		State:             domain.EventStatePending,
		CreatedOn:         now,
		EventDate:         input.EventDate.UTC(),
	}

	if err = s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("initiator_id", initiatorID),
	)

	return &domain.EventView{Event: *event}, nil
}

func (s *EventService) UpdateByOwner(ctx context.Context, userID, eventID string, edit domain.OwnerEdit) (*domain.EventView, error) {
	user, err := s.userRepo.GetByID(ctx, canonicalID(userID))
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	userID = user.ID
	if err := s.resolvePatch(ctx, &edit.Patch); err != nil {
		return nil, err
	}

	event, err := s.update(ctx, eventID, edit.Patch, func(e *domain.Event) error {
		return lifecycle.ApplyOwnerEdit(e, edit, userID, s.now())
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("event updated by owner",
		logger.String("event_id", event.ID),
		logger.String("state", string(event.State)),
	)

	return s.view(ctx, event)
}

func (s *EventService) UpdateByAdmin(ctx context.Context, eventID string, edit domain.AdminEdit) (*domain.EventView, error) {
	if err := s.resolvePatch(ctx, &edit.Patch); err != nil {
		return nil, err
	}

	event, err := s.update(ctx, eventID, edit.Patch, func(e *domain.Event) error {
		return lifecycle.ApplyAdminEdit(e, edit, s.now())
	})
	if err != nil {
		return nil, err
	}

	if edit.Action != nil {
		s.logger.Info("event moderated",
			logger.String("event_id", event.ID),
			logger.String("action", edit.Action.String()),
			logger.String("state", string(event.State)),
		)
		go s.notifyModerated(context.WithoutCancel(ctx), event)
	}

	return s.view(ctx, event)
}

// update loads, edits and stores an event under its lock. The confirmed count
// is consulted so a new positive limit never lands below it.
func (s *EventService) update(
	ctx context.Context,
	eventID string,
	patch domain.EventPatch,
	apply func(e *domain.Event) error,
) (*domain.Event, error) {
	event, unlock, err := loadLocked(ctx, s.eventRepo, s.locker, eventID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err = apply(event); err != nil {
		return nil, err
	}

	if patch.ParticipantLimit != nil && *patch.ParticipantLimit > 0 {
		confirmed, err := s.ledger.Count(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("count confirmed: %w", err)
		}
		if confirmed > *patch.ParticipantLimit {
			return nil, fmt.Errorf("%w: %d confirmed, new limit %d",
				domain.ErrLimitBelowConfirmed, confirmed, *patch.ParticipantLimit)
		}
	}

	if err = s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

// resolvePatch checks the category and swaps raw coordinates for a stored location.
func (s *EventService) resolvePatch(ctx context.Context, p *domain.EventPatch) error {
	if p.CategoryID != nil && strings.TrimSpace(*p.CategoryID) != "" {
		category, err := s.categoryRepo.GetByID(ctx, canonicalID(*p.CategoryID))
		if err != nil {
			return fmt.Errorf("check category: %w", err)
		}
		p.CategoryID = &category.ID
	}
	if p.Location != nil {
		loc, err := s.locationRepo.GetOrCreate(ctx, p.Location.Lat, p.Location.Lon)
		if err != nil {
			return fmt.Errorf("resolve location: %w", err)
		}
		p.Location = loc
	}
	return nil
}

func (s *EventService) view(ctx context.Context, e *domain.Event) (*domain.EventView, error) {
	views, err := s.enricher.Enrich(ctx, []*domain.Event{e})
	if err != nil {
		return nil, fmt.Errorf("enrich event: %w", err)
	}
	return views[0], nil
}

func (s *EventService) notifyModerated(ctx context.Context, event *domain.Event) {
	initiator, err := s.userRepo.GetByID(ctx, event.InitiatorID)
	if err != nil {
		s.logger.Error("failed to get initiator for notification",
			logger.String("user_id", event.InitiatorID),
			logger.String("error", err.Error()),
		)
		return
	}
	s.notifier.NotifyEventModerated(ctx, initiator, event)
}
