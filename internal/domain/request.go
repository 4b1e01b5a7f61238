package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusConfirmed RequestStatus = "CONFIRMED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCanceled  RequestStatus = "CANCELED"
)

// ActiveStatuses block a second request from the same requester.
var ActiveStatuses = []RequestStatus{RequestStatusPending, RequestStatusConfirmed, RequestStatusRejected}

type ParticipationRequest struct {
	ID          string        `json:"id"`
	EventID     string        `json:"event_id"`
	RequesterID string        `json:"requester_id"`
	Status      RequestStatus `json:"status"`
	Created     time.Time     `json:"created"`
}

type StatusUpdate struct {
	RequestIDs []string
	Status     RequestStatus
}

type StatusUpdateResult struct {
	Confirmed []*ParticipationRequest `json:"confirmed"`
	Rejected  []*ParticipationRequest `json:"rejected"`
}

// LedgerDrift describes an event whose in-process confirmed count
// disagreed with the persisted requests.
type LedgerDrift struct {
	EventID   string
	Tracked   int
	Persisted int
	Limit     int
}
