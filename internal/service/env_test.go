package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/keylock"
	"github.com/stpnv0/EventHub/internal/ledger"
	"github.com/stpnv0/EventHub/internal/repository/memory"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type nopNotifier struct{}

func (nopNotifier) NotifyRequestCreated(context.Context, *domain.User, *domain.Event, *domain.ParticipationRequest) {
}

func (nopNotifier) NotifyRequestDecided(context.Context, *domain.User, *domain.Event, *domain.ParticipationRequest) {
}

func (nopNotifier) NotifyEventModerated(context.Context, *domain.User, *domain.Event) {}

// env wires the services over one in-memory store.
type env struct {
	store    *memory.Store
	ledger   *ledger.Ledger
	locks    *keylock.Mutex
	requests *RequestService
	events   *EventService
	catalog  *CatalogService
	category string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	log := newTestLogger(t)
	store := memory.NewStore()
	led := ledger.New(store.Requests())
	locks := keylock.New()

	catalog := NewCatalogService(store.Events(), store.Users(), led, store.Stats(), log, "event-hub")
	e := &env{
		store:  store,
		ledger: led,
		locks:  locks,
		requests: NewRequestService(store.Requests(), store.Events(), store.Users(),
			led, locks, nopNotifier{}, log),
		events: NewEventService(store.Events(), store.Users(), store.Categories(), store.Locations(),
			led, locks, catalog, nopNotifier{}, log),
		catalog: catalog,
	}

	cat := &domain.Category{ID: uuid.New().String(), Name: "concerts"}
	require.NoError(t, store.Categories().Create(context.Background(), cat))
	e.category = cat.ID

	return e
}

func (e *env) user(t *testing.T, name string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     strings.ToLower(name) + "@example.com",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, e.store.Users().Create(context.Background(), u))
	return u
}

func (e *env) event(t *testing.T, initiatorID string, limit int, moderation bool, state domain.EventState) *domain.Event {
	t.Helper()
	now := time.Now().UTC()
	ev := &domain.Event{
		ID:                uuid.New().String(),
		Title:             "Jazz night",
		Annotation:        "Live jazz in the park",
		Description:       "Bring a blanket",
		CategoryID:        e.category,
		InitiatorID:       initiatorID,
		Location:          domain.Location{ID: uuid.New().String(), Lat: 55.75, Lon: 37.61},
		ParticipantLimit:  limit,
		RequestModeration: moderation,
		State:             state,
		CreatedOn:         now,
		EventDate:         now.Add(48 * time.Hour),
	}
	if state == domain.EventStatePublished {
		ev.PublishedOn = &now
	}
	require.NoError(t, e.store.Events().Create(context.Background(), ev))
	return ev
}

// confirmed is the persisted count, independent of the ledger.
func (e *env) confirmed(t *testing.T, eventID string) int {
	t.Helper()
	counts, err := e.store.Requests().CountConfirmed(context.Background(), []string{eventID})
	require.NoError(t, err)
	return counts[eventID]
}
