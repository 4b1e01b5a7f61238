package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, initiatorID string, input domain.CreateEventInput) (*domain.EventView, error)
	UpdateByOwner(ctx context.Context, userID, eventID string, edit domain.OwnerEdit) (*domain.EventView, error)
	UpdateByAdmin(ctx context.Context, eventID string, edit domain.AdminEdit) (*domain.EventView, error)
}

type CatalogSvc interface {
	ListByOwner(ctx context.Context, userID string, page domain.Page) ([]*domain.EventView, error)
	GetByOwner(ctx context.Context, userID, eventID string) (*domain.EventView, error)
	SearchAdmin(ctx context.Context, f domain.AdminSearch) ([]*domain.EventView, error)
	SearchPublic(ctx context.Context, f domain.PublicSearch, hit domain.Hit) ([]*domain.EventView, error)
	GetPublished(ctx context.Context, eventID string, hit domain.Hit) (*domain.EventView, error)
}

type RequestSvc interface {
	Create(ctx context.Context, requesterID, eventID string) (*domain.ParticipationRequest, error)
	Cancel(ctx context.Context, requesterID, requestID string) (*domain.ParticipationRequest, error)
	UpdateStatuses(ctx context.Context, initiatorID, eventID string, upd domain.StatusUpdate) (*domain.StatusUpdateResult, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*domain.ParticipationRequest, error)
	ListByEvent(ctx context.Context, initiatorID, eventID string) ([]*domain.ParticipationRequest, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context, ids []string, page domain.Page) ([]*domain.User, error)
}

type CategorySvc interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context, page domain.Page) ([]*domain.Category, error)
}

type CompilationSvc interface {
	Create(ctx context.Context, input domain.CreateCompilationInput) (*domain.CompilationView, error)
	Update(ctx context.Context, id string, patch domain.CompilationPatch) (*domain.CompilationView, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.CompilationView, error)
	List(ctx context.Context, pinned *bool, page domain.Page) ([]*domain.CompilationView, error)
}

type Handler struct {
	eventService    EventSvc
	catalogService  CatalogSvc
	requestService  RequestSvc
	userService     UserSvc
	categoryService CategorySvc
	compService     CompilationSvc
}

func NewHandler(
	eventService EventSvc,
	catalogService CatalogSvc,
	requestService RequestSvc,
	userService UserSvc,
	categoryService CategorySvc,
	compService CompilationSvc,
) *Handler {
	return &Handler{
		eventService:    eventService,
		catalogService:  catalogService,
		requestService:  requestService,
		userService:     userService,
		categoryService: categoryService,
		compService:     compService,
	}
}

// pathID reads a uuid path parameter in canonical form, answering 400 when
// it is malformed.
func pathID(c *ginext.Context, name string) (string, bool) {
	return parseID(c, name, c.Param(name))
}

func parseID(c *ginext.Context, name, raw string) (string, bool) {
	u, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return "", false
	}
	return u.String(), true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
