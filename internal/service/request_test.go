package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/stpnv0/EventHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestService_Create_AutoConfirmWithoutModeration(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")
	ev := e.event(t, owner.ID, 5, false, domain.EventStatePublished)

	req, err := e.requests.Create(context.Background(), alice.ID, ev.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusConfirmed, req.Status)
	assert.Equal(t, ev.ID, req.EventID)
	assert.Equal(t, alice.ID, req.RequesterID)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, 1, e.confirmed(t, ev.ID))
}

func TestRequestService_Create_PendingWithModeration(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")
	ev := e.event(t, owner.ID, 5, true, domain.EventStatePublished)

	req, err := e.requests.Create(context.Background(), alice.ID, ev.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, req.Status)
	assert.Equal(t, 0, e.confirmed(t, ev.ID))
}

func TestRequestService_Create_Rejections(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")
	published := e.event(t, owner.ID, 5, true, domain.EventStatePublished)
	pending := e.event(t, owner.ID, 5, true, domain.EventStatePending)

	tests := []struct {
		name        string
		requesterID string
		eventID     string
		wantErr     error
		wantKind    error
	}{
		{"self request", owner.ID, published.ID, domain.ErrSelfRequest, domain.ErrForbidden},
		{"unpublished event", alice.ID, pending.ID, domain.ErrEventNotPublished, domain.ErrForbidden},
		{"unknown event", alice.ID, "missing", domain.ErrEventNotFound, domain.ErrNotFound},
		{"unknown user", "missing", published.ID, domain.ErrUserNotFound, domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.requests.Create(context.Background(), tt.requesterID, tt.eventID)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.wantKind)
		})
	}
}

func TestRequestService_Create_DuplicateUntilCanceled(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")
	ev := e.event(t, owner.ID, 5, true, domain.EventStatePublished)

	first, err := e.requests.Create(ctx, alice.ID, ev.ID)
	require.NoError(t, err)

	_, err = e.requests.Create(ctx, alice.ID, ev.ID)
	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)

	_, err = e.requests.Cancel(ctx, alice.ID, first.ID)
	require.NoError(t, err)

	_, err = e.requests.Create(ctx, alice.ID, ev.ID)
	assert.NoError(t, err)
}

func TestRequestService_Create_RejectedRequestStillBlocks(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")
	ev := e.event(t, owner.ID, 5, true, domain.EventStatePublished)

	req, err := e.requests.Create(ctx, alice.ID, ev.ID)
	require.NoError(t, err)
	_, err = e.requests.UpdateStatuses(ctx, owner.ID, ev.ID, domain.StatusUpdate{
		RequestIDs: []string{req.ID},
		Status:     domain.RequestStatusRejected,
	})
	require.NoError(t, err)

	_, err = e.requests.Create(ctx, alice.ID, ev.ID)
	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
}

func TestRequestService_Create_UnlimitedNeverRejects(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	ev := e.event(t, owner.ID, 0, true, domain.EventStatePublished)

	for i := 0; i < 20; i++ {
		u := e.user(t, fmt.Sprintf("guest%d", i))
		req, err := e.requests.Create(context.Background(), u.ID, ev.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RequestStatusConfirmed, req.Status)
	}

	assert.Equal(t, 20, e.confirmed(t, ev.ID))
}

func TestRequestService_Create_ConcurrentRace(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	ev := e.event(t, owner.ID, 10, false, domain.EventStatePublished)

	const n = 50
	users := make([]*domain.User, n)
	for i := range users {
		users[i] = e.user(t, fmt.Sprintf("guest%d", i))
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		confirmed int
		limited   int
	)
	start := make(chan struct{})
	for _, u := range users {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			req, err := e.requests.Create(context.Background(), u.ID, ev.ID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil && req.Status == domain.RequestStatusConfirmed:
				confirmed++
			case errors.Is(err, domain.ErrParticipantLimitReached):
				limited++
			default:
				t.Errorf("unexpected outcome: req=%v err=%v", req, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 10, confirmed)
	assert.Equal(t, 40, limited)
	assert.Equal(t, 10, e.confirmed(t, ev.ID))

	tracked, err := e.ledger.Count(context.Background(), ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, tracked)
}

func TestRequestService_Create_UpperCaseIDsShareCapacity(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")
	bob := e.user(t, "Bob")
	ev := e.event(t, owner.ID, 1, false, domain.EventStatePublished)

	first, err := e.requests.Create(ctx, alice.ID, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusConfirmed, first.Status)

	_, err = e.requests.Create(ctx, bob.ID, strings.ToUpper(ev.ID))
	assert.ErrorIs(t, err, domain.ErrParticipantLimitReached)

	_, err = e.requests.Create(ctx, strings.ToUpper(owner.ID), ev.ID)
	assert.ErrorIs(t, err, domain.ErrSelfRequest)

	_, err = e.requests.Create(ctx, "{"+alice.ID+"}", "urn:uuid:"+ev.ID)
	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)

	assert.Equal(t, 1, e.confirmed(t, ev.ID))
	assert.Equal(t, []string{ev.ID}, e.ledger.Tracked())
}

func TestRequestService_Create_MixedCaseRace(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	ev := e.event(t, owner.ID, 3, false, domain.EventStatePublished)

	const n = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		confirmed int
	)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		u := e.user(t, fmt.Sprintf("guest%d", i))
		eventID := ev.ID
		if i%2 == 1 {
			eventID = strings.ToUpper(ev.ID)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			req, err := e.requests.Create(context.Background(), u.ID, eventID)
			if err == nil && req.Status == domain.RequestStatusConfirmed {
				mu.Lock()
				confirmed++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 3, confirmed)
	assert.Equal(t, 3, e.confirmed(t, ev.ID))
}

type failingRequestRepo struct {
	ports.RequestRepo
	err error
}

func (r failingRequestRepo) Create(context.Context, *domain.ParticipationRequest) error {
	return r.err
}

func (r failingRequestRepo) UpdateStatus(context.Context, string, domain.RequestStatus) error {
	return r.err
}

func (r failingRequestRepo) ApplyDecisions(context.Context, []string, []string) error {
	return r.err
}

func TestRequestService_Create_PersistFailureReleasesSlot(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")
	ev := e.event(t, owner.ID, 1, false, domain.EventStatePublished)

	dbErr := errors.New("db down")
	svc := NewRequestService(failingRequestRepo{RequestRepo: e.store.Requests(), err: dbErr},
		e.store.Events(), e.store.Users(), e.ledger, e.locks, nopNotifier{}, newTestLogger(t))

	_, err := svc.Create(context.Background(), alice.ID, ev.ID)

	require.ErrorIs(t, err, dbErr)
	tracked, err := e.ledger.Count(context.Background(), ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, tracked)
}

func TestRequestService_Create_NotifiesInitiator(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")
	ev := e.event(t, owner.ID, 0, true, domain.EventStatePublished)

	notifier := mocks.NewMockNotifier(t)
	done := make(chan struct{})
	notifier.EXPECT().
		NotifyRequestCreated(mock.Anything, mock.MatchedBy(func(u *domain.User) bool { return u.ID == owner.ID }),
			mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Event, *domain.ParticipationRequest) { close(done) }).
		Return()

	svc := NewRequestService(e.store.Requests(), e.store.Events(), e.store.Users(),
		e.ledger, e.locks, notifier, newTestLogger(t))

	_, err := svc.Create(context.Background(), alice.ID, ev.ID)
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("initiator was not notified")
	}
}

func TestRequestService_Cancel_FreesCapacity(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")
	bob := e.user(t, "Bob")
	ev := e.event(t, owner.ID, 1, false, domain.EventStatePublished)

	first, err := e.requests.Create(ctx, alice.ID, ev.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestStatusConfirmed, first.Status)

	_, err = e.requests.Create(ctx, bob.ID, ev.ID)
	require.ErrorIs(t, err, domain.ErrParticipantLimitReached)

	canceled, err := e.requests.Cancel(ctx, alice.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCanceled, canceled.Status)

	second, err := e.requests.Create(ctx, bob.ID, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusConfirmed, second.Status)
	assert.Equal(t, 1, e.confirmed(t, ev.ID))
}

func TestRequestService_Cancel_Rules(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")
	bob := e.user(t, "Bob")
	ev := e.event(t, owner.ID, 0, true, domain.EventStatePublished)

	req, err := e.requests.Create(ctx, alice.ID, ev.ID)
	require.NoError(t, err)

	_, err = e.requests.Cancel(ctx, bob.ID, req.ID)
	assert.ErrorIs(t, err, domain.ErrNotRequester)

	_, err = e.requests.Cancel(ctx, alice.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)

	_, err = e.requests.Cancel(ctx, alice.ID, req.ID)
	require.NoError(t, err)

	_, err = e.requests.Cancel(ctx, alice.ID, req.ID)
	assert.ErrorIs(t, err, domain.ErrRequestNotCancelable)
}

func TestRequestService_Cancel_PersistFailureRestoresSlot(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")
	ev := e.event(t, owner.ID, 1, false, domain.EventStatePublished)

	req, err := e.requests.Create(ctx, alice.ID, ev.ID)
	require.NoError(t, err)

	dbErr := errors.New("db down")
	svc := NewRequestService(failingRequestRepo{RequestRepo: e.store.Requests(), err: dbErr},
		e.store.Events(), e.store.Users(), e.ledger, e.locks, nopNotifier{}, newTestLogger(t))

	_, err = svc.Cancel(ctx, alice.ID, req.ID)
	require.ErrorIs(t, err, dbErr)

	tracked, err := e.ledger.Count(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, tracked)
}

func pendingRequests(t *testing.T, e *env, eventID string, names ...string) []string {
	t.Helper()
	ids := make([]string, len(names))
	for i, name := range names {
		u := e.user(t, name)
		req, err := e.requests.Create(context.Background(), u.ID, eventID)
		require.NoError(t, err)
		require.Equal(t, domain.RequestStatusPending, req.Status)
		ids[i] = req.ID
	}
	return ids
}

func TestRequestService_UpdateStatuses_ConfirmsInOrderUntilFull(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	ev := e.event(t, owner.ID, 2, true, domain.EventStatePublished)
	ids := pendingRequests(t, e, ev.ID, "A", "B", "C")

	res, err := e.requests.UpdateStatuses(context.Background(), owner.ID, ev.ID, domain.StatusUpdate{
		RequestIDs: ids,
		Status:     domain.RequestStatusConfirmed,
	})

	require.NoError(t, err)
	require.Len(t, res.Confirmed, 2)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, ids[0], res.Confirmed[0].ID)
	assert.Equal(t, ids[1], res.Confirmed[1].ID)
	assert.Equal(t, ids[2], res.Rejected[0].ID)
	assert.Equal(t, domain.RequestStatusRejected, res.Rejected[0].Status)
	assert.Equal(t, 2, e.confirmed(t, ev.ID))

	stored, err := e.store.Requests().GetByID(context.Background(), ids[2])
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusRejected, stored.Status)
}

func TestRequestService_UpdateStatuses_PreExhausted(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	ev := e.event(t, owner.ID, 1, true, domain.EventStatePublished)
	ids := pendingRequests(t, e, ev.ID, "A", "B")

	_, err := e.requests.UpdateStatuses(ctx, owner.ID, ev.ID, domain.StatusUpdate{
		RequestIDs: ids[:1],
		Status:     domain.RequestStatusConfirmed,
	})
	require.NoError(t, err)

	for _, status := range []domain.RequestStatus{domain.RequestStatusConfirmed, domain.RequestStatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			_, err := e.requests.UpdateStatuses(ctx, owner.ID, ev.ID, domain.StatusUpdate{
				RequestIDs: []string{ids[1], "unknown"},
				Status:     status,
			})

			assert.ErrorIs(t, err, domain.ErrLimitAlreadyReached)
			assert.ErrorIs(t, err, domain.ErrForbidden)
		})
	}

	stored, err := e.store.Requests().GetByID(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, stored.Status)
}

func TestRequestService_UpdateStatuses_RejectAll(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	ev := e.event(t, owner.ID, 3, true, domain.EventStatePublished)
	ids := pendingRequests(t, e, ev.ID, "A", "B")

	res, err := e.requests.UpdateStatuses(context.Background(), owner.ID, ev.ID, domain.StatusUpdate{
		RequestIDs: ids,
		Status:     domain.RequestStatusRejected,
	})

	require.NoError(t, err)
	assert.Empty(t, res.Confirmed)
	assert.Len(t, res.Rejected, 2)
	assert.Equal(t, 0, e.confirmed(t, ev.ID))
}

func TestRequestService_UpdateStatuses_SkipsNonPendingAndDuplicates(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	ev := e.event(t, owner.ID, 5, true, domain.EventStatePublished)
	ids := pendingRequests(t, e, ev.ID, "A", "B")

	_, err := e.requests.UpdateStatuses(ctx, owner.ID, ev.ID, domain.StatusUpdate{
		RequestIDs: ids[:1],
		Status:     domain.RequestStatusConfirmed,
	})
	require.NoError(t, err)

	res, err := e.requests.UpdateStatuses(ctx, owner.ID, ev.ID, domain.StatusUpdate{
		RequestIDs: []string{ids[0], ids[1], ids[1], "unknown"},
		Status:     domain.RequestStatusConfirmed,
	})

	require.NoError(t, err)
	require.Len(t, res.Confirmed, 1)
	assert.Equal(t, ids[1], res.Confirmed[0].ID)
	assert.Empty(t, res.Rejected)
	assert.Equal(t, 2, e.confirmed(t, ev.ID))
}

func TestRequestService_UpdateStatuses_Validation(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	stranger := e.user(t, "Stranger")
	ev := e.event(t, owner.ID, 5, true, domain.EventStatePublished)

	tests := []struct {
		name    string
		userID  string
		status  domain.RequestStatus
		wantErr error
	}{
		{"invalid status", owner.ID, domain.RequestStatusCanceled, domain.ErrInvalidStatus},
		{"not initiator", stranger.ID, domain.RequestStatusConfirmed, domain.ErrNotInitiator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.requests.UpdateStatuses(context.Background(), tt.userID, ev.ID, domain.StatusUpdate{
				Status: tt.status,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestService_UpdateStatuses_PersistFailureReleasesSlots(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	ev := e.event(t, owner.ID, 5, true, domain.EventStatePublished)
	ids := pendingRequests(t, e, ev.ID, "A", "B")

	dbErr := errors.New("tx aborted")
	svc := NewRequestService(failingRequestRepo{RequestRepo: e.store.Requests(), err: dbErr},
		e.store.Events(), e.store.Users(), e.ledger, e.locks, nopNotifier{}, newTestLogger(t))

	_, err := svc.UpdateStatuses(ctx, owner.ID, ev.ID, domain.StatusUpdate{
		RequestIDs: ids,
		Status:     domain.RequestStatusConfirmed,
	})
	require.ErrorIs(t, err, dbErr)

	tracked, err := e.ledger.Count(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, tracked)
}

func TestRequestService_ConcurrentBatchesNeverOverfill(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	ev := e.event(t, owner.ID, 3, true, domain.EventStatePublished)

	names := make([]string, 10)
	for i := range names {
		names[i] = fmt.Sprintf("guest%d", i)
	}
	ids := pendingRequests(t, e, ev.ID, names...)

	var wg sync.WaitGroup
	for _, batch := range [][]string{ids[:5], ids[5:]} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.requests.UpdateStatuses(context.Background(), owner.ID, ev.ID, domain.StatusUpdate{
				RequestIDs: batch,
				Status:     domain.RequestStatusConfirmed,
			})
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrLimitAlreadyReached)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, e.confirmed(t, ev.ID))
}

func TestRequestService_ListByEvent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	stranger := e.user(t, "Stranger")
	ev := e.event(t, owner.ID, 5, true, domain.EventStatePublished)
	pendingRequests(t, e, ev.ID, "A", "B")

	list, err := e.requests.ListByEvent(ctx, owner.ID, ev.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = e.requests.ListByEvent(ctx, stranger.ID, ev.ID)
	assert.ErrorIs(t, err, domain.ErrNotInitiator)
}

func TestRequestService_ListByRequester(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")
	first := e.event(t, owner.ID, 0, true, domain.EventStatePublished)
	second := e.event(t, owner.ID, 0, true, domain.EventStatePublished)

	for _, ev := range []*domain.Event{first, second} {
		_, err := e.requests.Create(ctx, alice.ID, ev.ID)
		require.NoError(t, err)
	}

	list, err := e.requests.ListByRequester(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = e.requests.ListByRequester(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRequestService_Reconcile(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")
	healthy := e.event(t, owner.ID, 5, false, domain.EventStatePublished)
	drifted := e.event(t, owner.ID, 5, false, domain.EventStatePublished)

	_, err := e.requests.Create(ctx, alice.ID, healthy.ID)
	require.NoError(t, err)
	e.ledger.Reset(drifted.ID, 3)

	drifts, err := e.requests.Reconcile(ctx)

	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, domain.LedgerDrift{EventID: drifted.ID, Tracked: 3, Persisted: 0, Limit: 5}, drifts[0])

	tracked, err := e.ledger.Count(ctx, drifted.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, tracked)
}

func TestRequestService_Reconcile_ForgetsClosedEvents(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")
	open := e.event(t, owner.ID, 5, false, domain.EventStatePublished)
	closed := e.event(t, owner.ID, 5, false, domain.EventStatePublished)

	_, err := e.requests.Create(ctx, alice.ID, open.ID)
	require.NoError(t, err)
	_, err = e.requests.Create(ctx, alice.ID, closed.ID)
	require.NoError(t, err)
	e.edit(t, closed, func(ev *domain.Event) { ev.State = domain.EventStateCanceled })

	drifts, err := e.requests.Reconcile(ctx)

	require.NoError(t, err)
	assert.Empty(t, drifts)
	assert.Equal(t, []string{open.ID}, e.ledger.Tracked())
}
