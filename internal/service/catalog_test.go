package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func viewIDs(views []*domain.EventView) []string {
	res := make([]string, len(views))
	for i, v := range views {
		res[i] = v.ID
	}
	return res
}

func (e *env) edit(t *testing.T, ev *domain.Event, change func(*domain.Event)) {
	t.Helper()
	change(ev)
	require.NoError(t, e.store.Events().Update(context.Background(), ev))
}

func (e *env) view(t *testing.T, eventID string, ips ...string) {
	t.Helper()
	for _, ip := range ips {
		require.NoError(t, e.store.Stats().Record(context.Background(), domain.Hit{
			App: "event-hub", URI: eventURI(eventID), IP: ip, Timestamp: time.Now().UTC(),
		}))
	}
}

func TestCatalogService_SearchPublic_Filters(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")

	jazz := e.event(t, owner.ID, 0, false, domain.EventStatePublished)
	rock := e.event(t, owner.ID, 0, false, domain.EventStatePublished)
	e.edit(t, rock, func(ev *domain.Event) {
		ev.Annotation = "Rock festival"
		ev.Description = "Loud"
		ev.Paid = true
	})
	full := e.event(t, owner.ID, 1, false, domain.EventStatePublished)
	_, err := e.requests.Create(ctx, alice.ID, full.ID)
	require.NoError(t, err)
	past := e.event(t, owner.ID, 0, false, domain.EventStatePublished)
	e.edit(t, past, func(ev *domain.Event) { ev.EventDate = time.Now().UTC().Add(-time.Hour) })
	e.event(t, owner.ID, 0, false, domain.EventStatePending)

	paid := true
	tests := []struct {
		name   string
		search domain.PublicSearch
		want   []string
	}{
		{"published and upcoming only", domain.PublicSearch{Sort: domain.SortEventDate},
			[]string{jazz.ID, rock.ID, full.ID}},
		{"text is case insensitive", domain.PublicSearch{Text: "ROCK"}, []string{rock.ID}},
		{"paid", domain.PublicSearch{Paid: &paid}, []string{rock.ID}},
		{"only available", domain.PublicSearch{OnlyAvailable: true, Text: "jazz"}, []string{jazz.ID}},
		{"category", domain.PublicSearch{Categories: []string{"other"}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.catalog.SearchPublic(ctx, tt.search, domain.Hit{URI: "/events", IP: "10.0.0.1"})
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, viewIDs(got))
		})
	}
}

func TestCatalogService_SearchPublic_OrderedByDate(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	later := e.event(t, owner.ID, 0, false, domain.EventStatePublished)
	sooner := e.event(t, owner.ID, 0, false, domain.EventStatePublished)
	e.edit(t, sooner, func(ev *domain.Event) { ev.EventDate = later.EventDate.Add(-time.Hour) })

	got, err := e.catalog.SearchPublic(context.Background(),
		domain.PublicSearch{Sort: domain.SortEventDate}, domain.Hit{})

	require.NoError(t, err)
	assert.Equal(t, []string{sooner.ID, later.ID}, viewIDs(got))
}

func TestCatalogService_SearchPublic_SortByViews(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	quiet := e.event(t, owner.ID, 0, false, domain.EventStatePublished)
	popular := e.event(t, owner.ID, 0, false, domain.EventStatePublished)
	middle := e.event(t, owner.ID, 0, false, domain.EventStatePublished)

	e.view(t, popular.ID, "1.1.1.1", "2.2.2.2", "3.3.3.3", "3.3.3.3")
	e.view(t, middle.ID, "1.1.1.1", "1.1.1.1")

	got, err := e.catalog.SearchPublic(context.Background(),
		domain.PublicSearch{Sort: domain.SortViews}, domain.Hit{})

	require.NoError(t, err)
	assert.Equal(t, []string{popular.ID, middle.ID, quiet.ID}, viewIDs(got))
	assert.Equal(t, int64(3), got[0].Views)
	assert.Equal(t, int64(1), got[1].Views)
	assert.Equal(t, int64(0), got[2].Views)

	page, err := e.catalog.SearchPublic(context.Background(),
		domain.PublicSearch{Sort: domain.SortViews, Page: domain.Page{From: 1, Size: 1}}, domain.Hit{})
	require.NoError(t, err)
	assert.Equal(t, []string{middle.ID}, viewIDs(page))
}

func TestCatalogService_Validation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	start := time.Now().UTC().Add(48 * time.Hour)
	end := start.Add(-time.Hour)

	_, err := e.catalog.SearchPublic(ctx, domain.PublicSearch{RangeStart: &start, RangeEnd: &end}, domain.Hit{})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = e.catalog.SearchAdmin(ctx, domain.AdminSearch{RangeStart: &start, RangeEnd: &end})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = e.catalog.SearchPublic(ctx, domain.PublicSearch{Sort: "RANDOM"}, domain.Hit{})
	assert.ErrorIs(t, err, domain.ErrUnknownSort)

	_, err = e.catalog.SearchAdmin(ctx, domain.AdminSearch{States: []string{"ARCHIVED"}})
	assert.ErrorIs(t, err, domain.ErrUnknownState)

	_, err = e.catalog.SearchAdmin(ctx, domain.AdminSearch{Page: domain.Page{From: -1}})
	assert.ErrorIs(t, err, domain.ErrInvalidPage)
}

func TestCatalogService_SearchAdmin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	alice := e.user(t, "Alice")
	bob := e.user(t, "Bob")
	pending := e.event(t, alice.ID, 0, true, domain.EventStatePending)
	published := e.event(t, alice.ID, 0, true, domain.EventStatePublished)
	canceled := e.event(t, bob.ID, 0, true, domain.EventStateCanceled)

	tests := []struct {
		name   string
		search domain.AdminSearch
		want   []string
	}{
		{"no filters", domain.AdminSearch{}, []string{pending.ID, published.ID, canceled.ID}},
		{"by user", domain.AdminSearch{Users: []string{bob.ID}}, []string{canceled.ID}},
		{"by states", domain.AdminSearch{States: []string{"PENDING", "PUBLISHED"}}, []string{pending.ID, published.ID}},
		{"by user and state", domain.AdminSearch{Users: []string{alice.ID}, States: []string{"CANCELED"}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.catalog.SearchAdmin(ctx, tt.search)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, viewIDs(got))
		})
	}
}

func TestCatalogService_Owner(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	alice := e.user(t, "Alice")
	bob := e.user(t, "Bob")
	mine := e.event(t, alice.ID, 0, true, domain.EventStatePending)
	theirs := e.event(t, bob.ID, 0, true, domain.EventStatePending)

	list, err := e.catalog.ListByOwner(ctx, alice.ID, domain.Page{})
	require.NoError(t, err)
	assert.Equal(t, []string{mine.ID}, viewIDs(list))

	got, err := e.catalog.GetByOwner(ctx, alice.ID, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, mine.ID, got.ID)

	_, err = e.catalog.GetByOwner(ctx, alice.ID, theirs.ID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	_, err = e.catalog.ListByOwner(ctx, "missing", domain.Page{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCatalogService_GetPublished_RecordsHit(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	published := e.event(t, owner.ID, 0, true, domain.EventStatePublished)
	pending := e.event(t, owner.ID, 0, true, domain.EventStatePending)

	stats := mocks.NewMockStatsCollector(t)
	recorded := make(chan domain.Hit, 1)
	stats.EXPECT().Record(mock.Anything, mock.Anything).
		Run(func(_ context.Context, hit domain.Hit) { recorded <- hit }).
		Return(nil).Once()
	stats.EXPECT().Query(mock.Anything, mock.Anything).
		Return([]domain.ViewStats{{App: "event-hub", URI: eventURI(published.ID), Hits: 7}}, nil)

	svc := NewCatalogService(e.store.Events(), e.store.Users(), e.ledger, stats, newTestLogger(t), "event-hub")

	_, err := svc.GetPublished(context.Background(), pending.ID, domain.Hit{URI: eventURI(pending.ID)})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	got, err := svc.GetPublished(context.Background(), published.ID,
		domain.Hit{URI: eventURI(published.ID), IP: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Views)

	select {
	case hit := <-recorded:
		assert.Equal(t, "event-hub", hit.App)
		assert.Equal(t, eventURI(published.ID), hit.URI)
		assert.Equal(t, "10.0.0.1", hit.IP)
		assert.False(t, hit.Timestamp.IsZero())
	case <-time.After(time.Second):
		t.Fatal("hit was not recorded")
	}
}

func TestCatalogService_Enrich_BatchesLookups(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	alice := e.user(t, "Alice")

	events := make([]*domain.Event, 3)
	for i := range events {
		events[i] = e.event(t, owner.ID, 0, false, domain.EventStatePublished)
	}
	_, err := e.requests.Create(ctx, alice.ID, events[1].ID)
	require.NoError(t, err)

	stats := mocks.NewMockStatsCollector(t)
	stats.EXPECT().Query(mock.Anything, mock.MatchedBy(func(q domain.StatsQuery) bool {
		return q.Unique && len(q.URIs) == 3 && !q.Start.After(events[0].CreatedOn)
	})).Return([]domain.ViewStats{{URI: eventURI(events[2].ID), Hits: 4}}, nil).Once()

	svc := NewCatalogService(e.store.Events(), e.store.Users(), e.ledger, stats, newTestLogger(t), "event-hub")

	views, err := svc.Enrich(ctx, events)

	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, 0, views[0].ConfirmedRequests)
	assert.Equal(t, 1, views[1].ConfirmedRequests)
	assert.Equal(t, int64(0), views[1].Views)
	assert.Equal(t, int64(4), views[2].Views)
}

func TestCatalogService_Enrich_LeavesLedgerUntracked(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "Owner")
	for i := 0; i < 3; i++ {
		e.event(t, owner.ID, 0, false, domain.EventStatePublished)
	}

	views, err := e.catalog.SearchPublic(ctx, domain.PublicSearch{}, domain.Hit{URI: "/events", IP: "10.0.0.1"})

	require.NoError(t, err)
	assert.Len(t, views, 3)
	assert.Empty(t, e.ledger.Tracked())
}

func TestCatalogService_Enrich_StatsFailureMeansZeroViews(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	ev := e.event(t, owner.ID, 0, false, domain.EventStatePublished)

	stats := mocks.NewMockStatsCollector(t)
	stats.EXPECT().Query(mock.Anything, mock.Anything).Return(nil, errors.New("stats unavailable"))

	svc := NewCatalogService(e.store.Events(), e.store.Users(), e.ledger, stats, newTestLogger(t), "event-hub")

	views, err := svc.Enrich(context.Background(), []*domain.Event{ev})

	require.NoError(t, err)
	assert.Equal(t, int64(0), views[0].Views)
}

func TestCatalogService_Pagination(t *testing.T) {
	e := newEnv(t)
	owner := e.user(t, "Owner")
	for i := 0; i < 12; i++ {
		e.event(t, owner.ID, 0, false, domain.EventStatePublished)
	}

	tests := []struct {
		page domain.Page
		want int
	}{
		{domain.Page{}, domain.DefaultPageSize},
		{domain.Page{From: 10, Size: 5}, 2},
		{domain.Page{From: 20, Size: 5}, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("from=%d size=%d", tt.page.From, tt.page.Size), func(t *testing.T) {
			got, err := e.catalog.ListByOwner(context.Background(), owner.ID, tt.page)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}
