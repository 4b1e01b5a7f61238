package dto

type LocationRequest struct {
	Lat *float64 `json:"lat" binding:"required,min=-90,max=90"`
	Lon *float64 `json:"lon" binding:"required,min=-180,max=180"`
}

// Dates travel as "2006-01-02 15:04:05" in UTC.
type CreateEventRequest struct {
	Title             string           `json:"title"             binding:"required,min=3,max=120"`
	Annotation        string           `json:"annotation"        binding:"required,min=20,max=2000"`
	Description       string           `json:"description"       binding:"required,min=20,max=7000"`
	Category          string           `json:"category"          binding:"required,uuid"`
	EventDate         string           `json:"eventDate"         binding:"required"`
	Location          *LocationRequest `json:"location"          binding:"required"`
	Paid              *bool            `json:"paid"`
	ParticipantLimit  *int             `json:"participantLimit"  binding:"omitempty,min=0"`
	RequestModeration *bool            `json:"requestModeration"`
}

type UpdateEventRequest struct {
	Title             *string          `json:"title"             binding:"omitempty,min=3,max=120"`
	Annotation        *string          `json:"annotation"        binding:"omitempty,min=20,max=2000"`
	Description       *string          `json:"description"       binding:"omitempty,min=20,max=7000"`
	Category          *string          `json:"category"          binding:"omitempty,uuid"`
	EventDate         *string          `json:"eventDate"`
	Location          *LocationRequest `json:"location"`
	Paid              *bool            `json:"paid"`
	ParticipantLimit  *int             `json:"participantLimit"  binding:"omitempty,min=0"`
	RequestModeration *bool            `json:"requestModeration"`
	StateAction       string           `json:"stateAction"`
}

type StatusUpdateRequest struct {
	RequestIDs []string `json:"requestIds" binding:"required,min=1,dive,uuid"`
	Status     string   `json:"status"     binding:"required"`
}

type CreateUserRequest struct {
	Name           string `json:"name"           binding:"required,min=2,max=250"`
	Email          string `json:"email"          binding:"required,email,min=6,max=254"`
	TelegramChatID *int64 `json:"telegramChatId"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

type CreateCompilationRequest struct {
	Title  string   `json:"title"  binding:"required,min=1,max=50"`
	Pinned *bool    `json:"pinned"`
	Events []string `json:"events" binding:"omitempty,dive,uuid"`
}

// UpdateCompilationRequest replaces the event list when "events" is present.
type UpdateCompilationRequest struct {
	Title  *string  `json:"title"  binding:"omitempty,max=50"`
	Pinned *bool    `json:"pinned"`
	Events []string `json:"events" binding:"omitempty,dive,uuid"`
}
