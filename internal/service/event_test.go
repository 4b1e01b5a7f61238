package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/keylock"
	"github.com/stpnv0/EventHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventMocks struct {
	events     *mocks.MockEventRepo
	users      *mocks.MockUserRepo
	categories *mocks.MockCategoryRepo
	locations  *mocks.MockLocationRepo
}

func newMockedEventService(t *testing.T) (*EventService, eventMocks) {
	t.Helper()
	m := eventMocks{
		events:     mocks.NewMockEventRepo(t),
		users:      mocks.NewMockUserRepo(t),
		categories: mocks.NewMockCategoryRepo(t),
		locations:  mocks.NewMockLocationRepo(t),
	}
	svc := NewEventService(m.events, m.users, m.categories, m.locations,
		nil, keylock.New(), nil, nopNotifier{}, newTestLogger(t))
	return svc, m
}

func validInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:       "Concert",
		Annotation:  "Live music in the old town",
		Description: "Three bands, one night",
		CategoryID:  "c1",
		Lat:         55.75,
		Lon:         37.61,
		EventDate:   time.Now().Add(24 * time.Hour),
	}
}

func TestEventService_Create_Success(t *testing.T) {
	svc, m := newMockedEventService(t)

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.categories.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Category{ID: "c1"}, nil)
	m.locations.EXPECT().GetOrCreate(mock.Anything, 55.75, 37.61).
		Return(&domain.Location{ID: "l1", Lat: 55.75, Lon: 37.61}, nil)
	m.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	view, err := svc.Create(context.Background(), "u1", validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "Concert", view.Title)
	assert.Equal(t, "u1", view.InitiatorID)
	assert.Equal(t, "l1", view.Location.ID)
	assert.Equal(t, domain.EventStatePending, view.State)
	assert.False(t, view.Paid)
	assert.Equal(t, 0, view.ParticipantLimit)
	assert.True(t, view.RequestModeration)
	assert.Nil(t, view.PublishedOn)
}

func TestEventService_Create_ExplicitOptions(t *testing.T) {
	svc, m := newMockedEventService(t)

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.categories.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Category{ID: "c1"}, nil)
	m.locations.EXPECT().GetOrCreate(mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.Location{ID: "l1"}, nil)
	m.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	paid, moderation, limit := true, false, 25
	input := validInput()
	input.Paid = &paid
	input.RequestModeration = &moderation
	input.ParticipantLimit = &limit

	view, err := svc.Create(context.Background(), "u1", input)

	require.NoError(t, err)
	assert.True(t, view.Paid)
	assert.False(t, view.RequestModeration)
	assert.Equal(t, 25, view.ParticipantLimit)
}

func TestEventService_Create_ValidationFailsFast(t *testing.T) {
	negative := -1

	tests := []struct {
		name    string
		mutate  func(*domain.CreateEventInput)
		wantErr error
	}{
		{"empty title", func(in *domain.CreateEventInput) { in.Title = " " }, domain.ErrValidation},
		{"date too soon", func(in *domain.CreateEventInput) { in.EventDate = time.Now().Add(time.Hour) }, domain.ErrEventDateTooSoon},
		{"negative limit", func(in *domain.CreateEventInput) { in.ParticipantLimit = &negative }, domain.ErrNegativeLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newMockedEventService(t)
			input := validInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), "u1", input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Create_UnknownCategory(t *testing.T) {
	svc, m := newMockedEventService(t)

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.categories.EXPECT().GetByID(mock.Anything, "c1").Return(nil, domain.ErrCategoryNotFound)

	_, err := svc.Create(context.Background(), "u1", validInput())

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestEventService_Create_RepoError(t *testing.T) {
	svc, m := newMockedEventService(t)

	repoErr := errors.New("db error")
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.categories.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Category{ID: "c1"}, nil)
	m.locations.EXPECT().GetOrCreate(mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.Location{ID: "l1"}, nil)
	m.events.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), "u1", validInput())

	assert.ErrorIs(t, err, repoErr)
}

func TestEventService_UpdateByOwner(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	stranger := e.user(t, "Stranger")
	ev := e.event(t, owner.ID, 0, true, domain.EventStatePending)

	title := "Jazz & wine"
	view, err := e.events.UpdateByOwner(ctx, owner.ID, ev.ID, domain.OwnerEdit{
		Patch:  domain.EventPatch{Title: &title, Location: &domain.Location{Lat: 59.93, Lon: 30.33}},
		Action: domain.CancelReview{},
	})
	require.NoError(t, err)
	assert.Equal(t, title, view.Title)
	assert.Equal(t, domain.EventStateCanceled, view.State)
	assert.NotEmpty(t, view.Location.ID)
	assert.Equal(t, 59.93, view.Location.Lat)

	view, err = e.events.UpdateByOwner(ctx, owner.ID, ev.ID, domain.OwnerEdit{Action: domain.SendToReview{}})
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatePending, view.State)

	_, err = e.events.UpdateByOwner(ctx, stranger.ID, ev.ID, domain.OwnerEdit{Patch: domain.EventPatch{Title: &title}})
	assert.ErrorIs(t, err, domain.ErrNotInitiator)
}

func TestEventService_UpdateByOwner_PublishedIsFrozen(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	ev := e.event(t, owner.ID, 0, true, domain.EventStatePublished)

	title := "New title"
	_, err := e.events.UpdateByOwner(context.Background(), owner.ID, ev.ID, domain.OwnerEdit{
		Patch: domain.EventPatch{Title: &title},
	})

	assert.ErrorIs(t, err, domain.ErrEventPublished)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, err := e.store.Events().GetByID(context.Background(), ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jazz night", stored.Title)
}

func TestEventService_UpdateByAdmin_Transitions(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")

	pending := e.event(t, owner.ID, 0, true, domain.EventStatePending)
	canceled := e.event(t, owner.ID, 0, true, domain.EventStateCanceled)
	published := e.event(t, owner.ID, 0, true, domain.EventStatePublished)

	view, err := e.events.UpdateByAdmin(ctx, pending.ID, domain.AdminEdit{Action: domain.PublishEvent{}})
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatePublished, view.State)
	require.NotNil(t, view.PublishedOn)

	_, err = e.events.UpdateByAdmin(ctx, canceled.ID, domain.AdminEdit{Action: domain.PublishEvent{}})
	assert.ErrorIs(t, err, domain.ErrEventNotPending)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.events.UpdateByAdmin(ctx, published.ID, domain.AdminEdit{Action: domain.RejectEvent{}})
	assert.ErrorIs(t, err, domain.ErrEventAlreadyPublished)

	_, err = e.events.UpdateByAdmin(ctx, "missing", domain.AdminEdit{Action: domain.RejectEvent{}})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_UpdateByAdmin_LimitBelowConfirmed(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	ev := e.event(t, owner.ID, 5, false, domain.EventStatePublished)

	for _, name := range []string{"A", "B"} {
		_, err := e.requests.Create(ctx, e.user(t, name).ID, ev.ID)
		require.NoError(t, err)
	}

	tooLow := 1
	_, err := e.events.UpdateByAdmin(ctx, ev.ID, domain.AdminEdit{
		Patch: domain.EventPatch{ParticipantLimit: &tooLow},
	})
	assert.ErrorIs(t, err, domain.ErrLimitBelowConfirmed)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	exact := 2
	view, err := e.events.UpdateByAdmin(ctx, ev.ID, domain.AdminEdit{
		Patch: domain.EventPatch{ParticipantLimit: &exact},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, view.ParticipantLimit)
	assert.Equal(t, 2, view.ConfirmedRequests)
}

func TestEventService_UpdateByAdmin_UnknownCategory(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	ev := e.event(t, owner.ID, 0, true, domain.EventStatePending)

	category := "missing"
	_, err := e.events.UpdateByAdmin(context.Background(), ev.ID, domain.AdminEdit{
		Patch: domain.EventPatch{CategoryID: &category},
	})

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestEventService_UpdateByAdmin_NotifiesInitiator(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	ev := e.event(t, owner.ID, 0, true, domain.EventStatePending)

	notifier := mocks.NewMockNotifier(t)
	done := make(chan *domain.Event, 1)
	notifier.EXPECT().
		NotifyEventModerated(mock.Anything, mock.MatchedBy(func(u *domain.User) bool { return u.ID == owner.ID }), mock.Anything).
		Run(func(_ context.Context, _ *domain.User, event *domain.Event) { done <- event }).
		Return()

	svc := NewEventService(e.store.Events(), e.store.Users(), e.store.Categories(), e.store.Locations(),
		e.ledger, e.locks, e.catalog, notifier, newTestLogger(t))

	_, err := svc.UpdateByAdmin(context.Background(), ev.ID, domain.AdminEdit{Action: domain.RejectEvent{}})
	require.NoError(t, err)

	select {
	case got := <-done:
		assert.Equal(t, domain.EventStateCanceled, got.State)
	case <-time.After(time.Second):
		t.Fatal("initiator was not notified")
	}
}
