package domain

import (
	"fmt"
	"time"
)

type EventState string

const (
	EventStatePending   EventState = "PENDING"
	EventStatePublished EventState = "PUBLISHED"
	EventStateCanceled  EventState = "CANCELED"
)

func ParseEventState(s string) (EventState, error) {
	switch st := EventState(s); st {
	case EventStatePending, EventStatePublished, EventStateCanceled:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
}

type Location struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Event references its initiator, category and location by id only;
// participation requests point at the event, never the other way round.
type Event struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Annotation        string     `json:"annotation"`
	Description       string     `json:"description"`
	CategoryID        string     `json:"category_id"`
	InitiatorID       string     `json:"initiator_id"`
	Location          Location   `json:"location"`
	Paid              bool       `json:"paid"`
	ParticipantLimit  int        `json:"participant_limit"`
	RequestModeration bool       `json:"request_moderation"`
	State             EventState `json:"state"`
	CreatedOn         time.Time  `json:"created_on"`
	EventDate         time.Time  `json:"event_date"`
	PublishedOn       *time.Time `json:"published_on"`
}

// EventView is an event enriched with derived read-side data.
type EventView struct {
	Event
	ConfirmedRequests int   `json:"confirmed_requests"`
	Views             int64 `json:"views"`
}

type CreateEventInput struct {
	Title             string
	Annotation        string
	Description       string
	CategoryID        string
	Lat               float64
	Lon               float64
	EventDate         time.Time
	Paid              *bool
	ParticipantLimit  *int
	RequestModeration *bool
}

// EventPatch carries optional field changes; nil means "leave as is".
type EventPatch struct {
	Title             *string
	Annotation        *string
	Description       *string
	CategoryID        *string
	Location          *Location
	Paid              *bool
	ParticipantLimit  *int
	RequestModeration *bool
	EventDate         *time.Time
}

type OwnerEdit struct {
	Patch  EventPatch
	Action OwnerAction
}

type AdminEdit struct {
	Patch  EventPatch
	Action AdminAction
}
