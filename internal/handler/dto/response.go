package dto

import (
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
)

type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type EventFullResponse struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	Annotation        string           `json:"annotation"`
	Description       string           `json:"description"`
	Category          string           `json:"category"`
	Initiator         string           `json:"initiator"`
	Location          LocationResponse `json:"location"`
	Paid              bool             `json:"paid"`
	ParticipantLimit  int              `json:"participantLimit"`
	RequestModeration bool             `json:"requestModeration"`
	State             string           `json:"state"`
	CreatedOn         string           `json:"createdOn"`
	EventDate         string           `json:"eventDate"`
	PublishedOn       *string          `json:"publishedOn"`
	ConfirmedRequests int              `json:"confirmedRequests"`
	Views             int64            `json:"views"`
}

type EventShortResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Annotation        string `json:"annotation"`
	Category          string `json:"category"`
	Initiator         string `json:"initiator"`
	EventDate         string `json:"eventDate"`
	Paid              bool   `json:"paid"`
	ConfirmedRequests int    `json:"confirmedRequests"`
	Views             int64  `json:"views"`
}

type ParticipationRequestResponse struct {
	ID        string `json:"id"`
	Event     string `json:"event"`
	Requester string `json:"requester"`
	Status    string `json:"status"`
	Created   string `json:"created"`
}

type StatusUpdateResponse struct {
	ConfirmedRequests []ParticipationRequestResponse `json:"confirmedRequests"`
	RejectedRequests  []ParticipationRequestResponse `json:"rejectedRequests"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegramChatId,omitempty"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CompilationResponse struct {
	ID     string               `json:"id"`
	Title  string               `json:"title"`
	Pinned bool                 `json:"pinned"`
	Events []EventShortResponse `json:"events"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.DateTime)
}

func ToEventFullResponse(v *domain.EventView) EventFullResponse {
	resp := EventFullResponse{
		ID:                v.ID,
		Title:             v.Title,
		Annotation:        v.Annotation,
		Description:       v.Description,
		Category:          v.CategoryID,
		Initiator:         v.InitiatorID,
		Location:          LocationResponse{Lat: v.Location.Lat, Lon: v.Location.Lon},
		Paid:              v.Paid,
		ParticipantLimit:  v.ParticipantLimit,
		RequestModeration: v.RequestModeration,
		State:             string(v.State),
		CreatedOn:         formatTime(v.CreatedOn),
		EventDate:         formatTime(v.EventDate),
		ConfirmedRequests: v.ConfirmedRequests,
		Views:             v.Views,
	}
	if v.PublishedOn != nil {
		published := formatTime(*v.PublishedOn)
		resp.PublishedOn = &published
	}
	return resp
}

func ToEventShortResponse(v *domain.EventView) EventShortResponse {
	return EventShortResponse{
		ID:                v.ID,
		Title:             v.Title,
		Annotation:        v.Annotation,
		Category:          v.CategoryID,
		Initiator:         v.InitiatorID,
		EventDate:         formatTime(v.EventDate),
		Paid:              v.Paid,
		ConfirmedRequests: v.ConfirmedRequests,
		Views:             v.Views,
	}
}

func ToEventFullList(views []*domain.EventView) []EventFullResponse {
	resp := make([]EventFullResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, ToEventFullResponse(v))
	}
	return resp
}

func ToEventShortList(views []*domain.EventView) []EventShortResponse {
	resp := make([]EventShortResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, ToEventShortResponse(v))
	}
	return resp
}

func ToRequestResponse(r *domain.ParticipationRequest) ParticipationRequestResponse {
	return ParticipationRequestResponse{
		ID:        r.ID,
		Event:     r.EventID,
		Requester: r.RequesterID,
		Status:    string(r.Status),
		Created:   formatTime(r.Created),
	}
}

func ToRequestList(reqs []*domain.ParticipationRequest) []ParticipationRequestResponse {
	resp := make([]ParticipationRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		resp = append(resp, ToRequestResponse(r))
	}
	return resp
}

func ToStatusUpdateResponse(res *domain.StatusUpdateResult) StatusUpdateResponse {
	return StatusUpdateResponse{
		ConfirmedRequests: ToRequestList(res.Confirmed),
		RejectedRequests:  ToRequestList(res.Rejected),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
	}
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func ToCompilationResponse(v *domain.CompilationView) CompilationResponse {
	return CompilationResponse{
		ID:     v.ID,
		Title:  v.Title,
		Pinned: v.Pinned,
		Events: ToEventShortList(v.Events),
	}
}

func ToCompilationList(views []*domain.CompilationView) []CompilationResponse {
	resp := make([]CompilationResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, ToCompilationResponse(v))
	}
	return resp
}
