package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RequestService admits, cancels and decides participation requests.
// Every path that changes the confirmed count of an event runs under that
// event's lock, and every confirmation goes through Ledger.TryReserve.
// The ledger is mutated before the request row so that a failed write can be
// compensated while the lock is still held.
type RequestService struct {
	requestRepo ports.RequestRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	ledger      ports.Ledger
	locker      ports.EventLocker
	notifier    ports.Notifier
	logger      logger.Logger
	now         func() time.Time
}

func NewRequestService(
	requestRepo ports.RequestRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	ledger ports.Ledger,
	locker ports.EventLocker,
	notifier ports.Notifier,
	logger logger.Logger,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		ledger:      ledger,
		locker:      locker,
		notifier:    notifier,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *RequestService) Create(ctx context.Context, requesterID, eventID string) (*domain.ParticipationRequest, error) {
	requester, err := s.userRepo.GetByID(ctx, canonicalID(requesterID))
	if err != nil {
		return nil, fmt.Errorf("check requester: %w", err)
	}
	requesterID = requester.ID

	event, unlock, err := loadLocked(ctx, s.eventRepo, s.locker, eventID)
	if err != nil {
		return nil, err
	}
	defer unlock()
	eventID = event.ID

	// проверка дубликата, владельца и статуса события
	exists, err := s.requestRepo.ExistsActive(ctx, requesterID, eventID)
	if err != nil {
		return nil, fmt.Errorf("check existing request: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateRequest
	}
	if requesterID == event.InitiatorID {
		return nil, domain.ErrSelfRequest
	}
	if event.State != domain.EventStatePublished {
		return nil, domain.ErrEventNotPublished
	}

	status := domain.RequestStatusPending
	if !event.RequestModeration || event.ParticipantLimit == 0 {
		status = domain.RequestStatusConfirmed
	}

	// резервируем место до записи в БД
	if status == domain.RequestStatusConfirmed {
		ok, err := s.ledger.TryReserve(ctx, eventID, event.ParticipantLimit)
		if err != nil {
			return nil, fmt.Errorf("reserve slot: %w", err)
		}
		if !ok {
			return nil, domain.ErrParticipantLimitReached
		}
	}

	req := &domain.ParticipationRequest{
		ID:          uuid.New().String(),
		EventID:     eventID,
		RequesterID: requesterID,
		Status:      status,
		Created:     s.now(),
	}
	if err = s.requestRepo.Create(ctx, req); err != nil {
		if status == domain.RequestStatusConfirmed {
			s.release(ctx, eventID, 1)
		}
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info("participation request created",
		logger.String("request_id", req.ID),
		logger.String("event_id", eventID),
		logger.String("requester_id", requesterID),
		logger.String("status", string(status)),
	)

	// notify
	go s.notifyCreated(context.WithoutCancel(ctx), event, req)

	return req, nil
}

func (s *RequestService) Cancel(ctx context.Context, requesterID, requestID string) (*domain.ParticipationRequest, error) {
	requesterID, requestID = canonicalID(requesterID), canonicalID(requestID)

	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if req.RequesterID != requesterID {
		return nil, domain.ErrNotRequester
	}

	unlock := s.locker.Lock(req.EventID)
	defer unlock()

	// status may have been decided while we waited for the lock
	req, err = s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("reload request: %w", err)
	}

	prev := req.Status
	switch prev {
	case domain.RequestStatusPending, domain.RequestStatusConfirmed:
	default:
		return nil, fmt.Errorf("%w: status is %s", domain.ErrRequestNotCancelable, prev)
	}

	if prev == domain.RequestStatusConfirmed {
		if err = s.ledger.Release(ctx, req.EventID); err != nil {
			s.logInvariant(ctx, "release on cancel failed", req.EventID, err)
			return nil, fmt.Errorf("release slot: %w", err)
		}
	}

	if err = s.requestRepo.UpdateStatus(ctx, req.ID, domain.RequestStatusCanceled); err != nil {
		if prev == domain.RequestStatusConfirmed {
			s.restore(ctx, req.EventID, 1)
		}
		return nil, fmt.Errorf("cancel request: %w", err)
	}
	req.Status = domain.RequestStatusCanceled

	s.logger.Info("participation request canceled",
		logger.String("request_id", req.ID),
		logger.String("event_id", req.EventID),
		logger.String("previous_status", string(prev)),
	)

	return req, nil
}

// UpdateStatuses confirms or rejects pending requests of an event in the
// order given. Confirmations stop being admitted once the limit is hit and
// the remaining ids are rejected instead.
func (s *RequestService) UpdateStatuses(
	ctx context.Context,
	initiatorID, eventID string,
	upd domain.StatusUpdate,
) (*domain.StatusUpdateResult, error) {
	if upd.Status != domain.RequestStatusConfirmed && upd.Status != domain.RequestStatusRejected {
		return nil, fmt.Errorf("%w: got %q", domain.ErrInvalidStatus, upd.Status)
	}

	event, unlock, err := loadLocked(ctx, s.eventRepo, s.locker, eventID)
	if err != nil {
		return nil, err
	}
	defer unlock()
	eventID = event.ID

	if event.InitiatorID != canonicalID(initiatorID) {
		return nil, domain.ErrNotInitiator
	}

	if event.ParticipantLimit > 0 {
		confirmed, err := s.ledger.Count(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("count confirmed: %w", err)
		}
		if confirmed > event.ParticipantLimit {
			err = fmt.Errorf("%w: event %s has %d confirmed, limit %d",
				domain.ErrCapacityExceeded, eventID, confirmed, event.ParticipantLimit)
			s.logInvariant(ctx, "capacity exceeded", eventID, err)
			return nil, err
		}
		if confirmed == event.ParticipantLimit {
			return nil, domain.ErrLimitAlreadyReached
		}
	}

	ids := dedupe(canonicalIDs(upd.RequestIDs))
	pending, err := s.requestRepo.ListPendingByIDs(ctx, eventID, ids)
	if err != nil {
		return nil, fmt.Errorf("load pending requests: %w", err)
	}
	pending = inOrder(pending, ids)

	result := &domain.StatusUpdateResult{
		Confirmed: make([]*domain.ParticipationRequest, 0, len(pending)),
		Rejected:  make([]*domain.ParticipationRequest, 0, len(pending)),
	}
	reserved := 0

	for _, r := range pending {
		if upd.Status == domain.RequestStatusRejected {
			r.Status = domain.RequestStatusRejected
			result.Rejected = append(result.Rejected, r)
			continue
		}

		ok, err := s.ledger.TryReserve(ctx, eventID, event.ParticipantLimit)
		if err != nil {
			s.release(ctx, eventID, reserved)
			return nil, fmt.Errorf("reserve slot: %w", err)
		}
		if ok {
			reserved++
			r.Status = domain.RequestStatusConfirmed
			result.Confirmed = append(result.Confirmed, r)
		} else {
			r.Status = domain.RequestStatusRejected
			result.Rejected = append(result.Rejected, r)
		}
	}

	if len(pending) > 0 {
		if err = s.requestRepo.ApplyDecisions(ctx, requestIDs(result.Confirmed), requestIDs(result.Rejected)); err != nil {
			s.release(ctx, eventID, reserved)
			return nil, fmt.Errorf("apply decisions: %w", err)
		}
	}

	s.logger.Info("participation requests decided",
		logger.String("event_id", eventID),
		logger.String("desired_status", string(upd.Status)),
		logger.Int("confirmed", len(result.Confirmed)),
		logger.Int("rejected", len(result.Rejected)),
		logger.Int("skipped", len(ids)-len(pending)),
	)

	go s.notifyDecided(context.WithoutCancel(ctx), event, result)

	return result, nil
}

func (s *RequestService) ListByRequester(ctx context.Context, requesterID string) ([]*domain.ParticipationRequest, error) {
	requester, err := s.userRepo.GetByID(ctx, canonicalID(requesterID))
	if err != nil {
		return nil, fmt.Errorf("check requester: %w", err)
	}
	return s.requestRepo.ListByRequester(ctx, requester.ID)
}

func (s *RequestService) ListByEvent(ctx context.Context, initiatorID, eventID string) ([]*domain.ParticipationRequest, error) {
	event, err := s.eventRepo.GetByID(ctx, canonicalID(eventID))
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.InitiatorID != canonicalID(initiatorID) {
		return nil, domain.ErrNotInitiator
	}
	return s.requestRepo.ListByEvent(ctx, event.ID)
}

// Reconcile compares every tracked ledger count with the persisted requests
// and resets drifted entries to the persisted value.
func (s *RequestService) Reconcile(ctx context.Context) ([]domain.LedgerDrift, error) {
	var (
		drifts []domain.LedgerDrift
		errs   []error
	)
	for _, id := range s.ledger.Tracked() {
		if err := ctx.Err(); err != nil {
			return drifts, err
		}
		d, err := s.reconcileEvent(ctx, id)
		if err != nil {
			errs = append(errs, fmt.Errorf("event %s: %w", id, err))
			continue
		}
		if d != nil {
			drifts = append(drifts, *d)
		}
	}
	return drifts, errors.Join(errs...)
}

func (s *RequestService) reconcileEvent(ctx context.Context, eventID string) (*domain.LedgerDrift, error) {
	unlock := s.locker.Lock(eventID)
	defer unlock()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if errors.Is(err, domain.ErrEventNotFound) {
		s.ledger.Forget(eventID)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	tracked, err := s.ledger.Count(ctx, eventID)
	if err != nil {
		return nil, err
	}
	counts, err := s.requestRepo.CountConfirmed(ctx, []string{eventID})
	if err != nil {
		return nil, err
	}
	persisted := counts[eventID]

	// only published events admit requests, the rest are rehydrated on demand
	if event.State != domain.EventStatePublished {
		defer s.ledger.Forget(eventID)
	}

	overLimit := event.ParticipantLimit > 0 && persisted > event.ParticipantLimit
	if tracked == persisted && !overLimit {
		return nil, nil
	}

	s.ledger.Reset(eventID, persisted)
	return &domain.LedgerDrift{
		EventID:   eventID,
		Tracked:   tracked,
		Persisted: persisted,
		Limit:     event.ParticipantLimit,
	}, nil
}

// release gives back n slots taken earlier in the same critical section.
func (s *RequestService) release(ctx context.Context, eventID string, n int) {
	for i := 0; i < n; i++ {
		if err := s.ledger.Release(ctx, eventID); err != nil {
			s.logInvariant(ctx, "compensating release failed", eventID, err)
			return
		}
	}
}

// restore re-takes n slots released earlier in the same critical section.
func (s *RequestService) restore(ctx context.Context, eventID string, n int) {
	for i := 0; i < n; i++ {
		if _, err := s.ledger.TryReserve(ctx, eventID, 0); err != nil {
			s.logInvariant(ctx, "compensating reserve failed", eventID, err)
			return
		}
	}
}

func (s *RequestService) logInvariant(ctx context.Context, msg, eventID string, err error) {
	s.logger.LogAttrs(ctx, logger.ErrorLevel, msg,
		logger.String("event_id", eventID),
		logger.String("error", err.Error()),
	)
}

func (s *RequestService) notifyCreated(ctx context.Context, event *domain.Event, req *domain.ParticipationRequest) {
	initiator, err := s.userRepo.GetByID(ctx, event.InitiatorID)
	if err != nil {
		s.logger.Error("failed to get initiator for notification",
			logger.String("user_id", event.InitiatorID),
			logger.String("error", err.Error()),
		)
		return
	}
	s.notifier.NotifyRequestCreated(ctx, initiator, event, req)
}

func (s *RequestService) notifyDecided(ctx context.Context, event *domain.Event, res *domain.StatusUpdateResult) {
	for _, list := range [][]*domain.ParticipationRequest{res.Confirmed, res.Rejected} {
		for _, r := range list {
			requester, err := s.userRepo.GetByID(ctx, r.RequesterID)
			if err != nil {
				s.logger.Error("failed to get requester for notification",
					logger.String("user_id", r.RequesterID),
					logger.String("error", err.Error()),
				)
				continue
			}
			s.notifier.NotifyRequestDecided(ctx, requester, event, r)
		}
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	res := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		res = append(res, id)
	}
	return res
}

// inOrder sorts loaded requests by their position in ids.
func inOrder(reqs []*domain.ParticipationRequest, ids []string) []*domain.ParticipationRequest {
	byID := make(map[string]*domain.ParticipationRequest, len(reqs))
	for _, r := range reqs {
		byID[r.ID] = r
	}
	res := make([]*domain.ParticipationRequest, 0, len(reqs))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			res = append(res, r)
		}
	}
	return res
}

func requestIDs(reqs []*domain.ParticipationRequest) []string {
	res := make([]string, len(reqs))
	for i, r := range reqs {
		res[i] = r.ID
	}
	return res
}
