package memory

import (
	"context"
	"sort"

	"github.com/stpnv0/EventHub/internal/domain"
)

type RequestRepository struct {
	s *Store
}

func (r *RequestRepository) Create(_ context.Context, req *domain.ParticipationRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.requests {
		if existing.RequesterID == req.RequesterID && existing.EventID == req.EventID &&
			existing.Status != domain.RequestStatusCanceled {
			return domain.ErrDuplicateRequest
		}
	}
	r.s.requests[req.ID] = *req
	return nil
}

func (r *RequestRepository) GetByID(_ context.Context, id string) (*domain.ParticipationRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	req, ok := r.s.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return &req, nil
}

func (r *RequestRepository) ExistsActive(_ context.Context, requesterID, eventID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, req := range r.s.requests {
		if req.RequesterID == requesterID && req.EventID == eventID &&
			req.Status != domain.RequestStatusCanceled {
			return true, nil
		}
	}
	return false, nil
}

func (r *RequestRepository) ListPendingByIDs(_ context.Context, eventID string, ids []string) ([]*domain.ParticipationRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.ParticipationRequest, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		req, ok := r.s.requests[id]
		if !ok || seen[id] || req.EventID != eventID || req.Status != domain.RequestStatusPending {
			continue
		}
		seen[id] = true
		res = append(res, &req)
	}
	return res, nil
}

func (r *RequestRepository) ApplyDecisions(_ context.Context, confirmedIDs, rejectedIDs []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// validate first so a missing id leaves nothing half-applied
	for _, ids := range [][]string{confirmedIDs, rejectedIDs} {
		for _, id := range ids {
			if _, ok := r.s.requests[id]; !ok {
				return domain.ErrRequestNotFound
			}
		}
	}
	r.setStatusLocked(confirmedIDs, domain.RequestStatusConfirmed)
	r.setStatusLocked(rejectedIDs, domain.RequestStatusRejected)
	return nil
}

func (r *RequestRepository) setStatusLocked(ids []string, status domain.RequestStatus) {
	for _, id := range ids {
		req := r.s.requests[id]
		req.Status = status
		r.s.requests[id] = req
	}
}

func (r *RequestRepository) UpdateStatus(_ context.Context, id string, status domain.RequestStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.requests[id]; !ok {
		return domain.ErrRequestNotFound
	}
	r.setStatusLocked([]string{id}, status)
	return nil
}

func (r *RequestRepository) ListByRequester(_ context.Context, requesterID string) ([]*domain.ParticipationRequest, error) {
	return r.list(func(req domain.ParticipationRequest) bool { return req.RequesterID == requesterID }), nil
}

func (r *RequestRepository) ListByEvent(_ context.Context, eventID string) ([]*domain.ParticipationRequest, error) {
	return r.list(func(req domain.ParticipationRequest) bool { return req.EventID == eventID }), nil
}

func (r *RequestRepository) list(keep func(domain.ParticipationRequest) bool) []*domain.ParticipationRequest {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.ParticipationRequest, 0)
	for _, req := range r.s.requests {
		if !keep(req) {
			continue
		}
		res = append(res, &req)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].Created.Equal(res[j].Created) {
			return res[i].Created.Before(res[j].Created)
		}
		return res[i].ID < res[j].ID
	})
	return res
}

func (r *RequestRepository) CountConfirmed(_ context.Context, eventIDs []string) (map[string]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make(map[string]int, len(eventIDs))
	for _, id := range eventIDs {
		res[id] = r.s.confirmedLocked(id)
	}
	return res, nil
}
