package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/query"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const eventURIPrefix = "/events/"

// CatalogService answers read-side event queries for owners, administrators
// and the public, and joins confirmed counts and view counts onto the result.
// It never takes the per-event lock.
type CatalogService struct {
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	ledger    ports.Ledger
	stats     ports.StatsCollector
	logger    logger.Logger
	app       string
	now       func() time.Time
}

func NewCatalogService(
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	ledger ports.Ledger,
	stats ports.StatsCollector,
	logger logger.Logger,
	app string,
) *CatalogService {
	return &CatalogService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		ledger:    ledger,
		stats:     stats,
		logger:    logger,
		app:       app,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *CatalogService) ListByOwner(ctx context.Context, userID string, page domain.Page) ([]*domain.EventView, error) {
	page, err := normalizePage(page)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, canonicalID(userID))
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	q := query.New().
		InitiatorIn([]string{user.ID}).
		OrderBy(query.OrderByID).
		Page(page).
		Build()

	return s.find(ctx, q)
}

func (s *CatalogService) GetByOwner(ctx context.Context, userID, eventID string) (*domain.EventView, error) {
	user, err := s.userRepo.GetByID(ctx, canonicalID(userID))
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, canonicalID(eventID))
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.InitiatorID != user.ID {
		return nil, domain.ErrEventNotFound
	}

	return s.one(ctx, event)
}

func (s *CatalogService) SearchAdmin(ctx context.Context, f domain.AdminSearch) ([]*domain.EventView, error) {
	page, err := normalizePage(f.Page)
	if err != nil {
		return nil, err
	}
	if err = validateRange(f.RangeStart, f.RangeEnd); err != nil {
		return nil, err
	}

	states := make([]domain.EventState, 0, len(f.States))
	for _, raw := range f.States {
		st, err := domain.ParseEventState(raw)
		if err != nil {
			return nil, err
		}
		states = append(states, st)
	}

	q := query.New().
		InitiatorIn(canonicalIDs(f.Users)).
		StateIn(states...).
		CategoryIn(canonicalIDs(f.Categories)).
		DateFrom(f.RangeStart).
		DateUntil(f.RangeEnd).
		OrderBy(query.OrderByID).
		Page(page).
		Build()

	return s.find(ctx, q)
}

// SearchPublic lists published events that have not started yet (or start
// after RangeStart when given). Hit is recorded once the search succeeds.
func (s *CatalogService) SearchPublic(ctx context.Context, f domain.PublicSearch, hit domain.Hit) ([]*domain.EventView, error) {
	page, err := normalizePage(f.Page)
	if err != nil {
		return nil, err
	}
	if err = validateRange(f.RangeStart, f.RangeEnd); err != nil {
		return nil, err
	}

	order := query.OrderByID
	switch f.Sort {
	case "":
	case domain.SortEventDate, domain.SortViews:
		order = query.OrderByEventDate
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSort, f.Sort)
	}

	start := f.RangeStart
	if start == nil {
		now := s.now()
		start = &now
	}

	b := query.New().
		StateIn(domain.EventStatePublished).
		TextContains(f.Text).
		CategoryIn(canonicalIDs(f.Categories)).
		PaidEq(f.Paid).
		DateAfter(start).
		DateBefore(f.RangeEnd).
		HasCapacity(f.OnlyAvailable).
		OrderBy(order)

	// popularity lives outside the store, so the page is cut after enrichment
	if f.Sort != domain.SortViews {
		b.Page(page)
	}

	views, err := s.find(ctx, b.Build())
	if err != nil {
		return nil, err
	}

	if f.Sort == domain.SortViews {
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Views > views[j].Views
		})
		views = cut(views, page)
	}

	s.record(ctx, hit)

	return views, nil
}

func (s *CatalogService) GetPublished(ctx context.Context, eventID string, hit domain.Hit) (*domain.EventView, error) {
	event, err := s.eventRepo.GetByID(ctx, canonicalID(eventID))
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.State != domain.EventStatePublished {
		return nil, domain.ErrEventNotFound
	}

	s.record(ctx, hit)

	return s.one(ctx, event)
}

// Enrich attaches confirmed counts and unique view counts. A failing stats
// lookup degrades to zero views.
func (s *CatalogService) Enrich(ctx context.Context, events []*domain.Event) ([]*domain.EventView, error) {
	res := make([]*domain.EventView, len(events))
	if len(events) == 0 {
		return res, nil
	}

	ids := make([]string, len(events))
	uris := make([]string, len(events))
	earliest := events[0].CreatedOn
	for i, e := range events {
		ids[i] = e.ID
		uris[i] = eventURI(e.ID)
		if e.CreatedOn.Before(earliest) {
			earliest = e.CreatedOn
		}
	}

	confirmed, err := s.ledger.Counts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count confirmed: %w", err)
	}

	hits := make(map[string]int64, len(uris))
	stats, err := s.stats.Query(ctx, domain.StatsQuery{
		Start:  earliest,
		End:    s.now(),
		URIs:   uris,
		Unique: true,
	})
	if err != nil {
		s.logger.Warn("failed to query view stats",
			logger.Int("events", len(events)),
			logger.String("error", err.Error()),
		)
	}
	for _, v := range stats {
		hits[v.URI] += v.Hits
	}

	for i, e := range events {
		res[i] = &domain.EventView{
			Event:             *e,
			ConfirmedRequests: confirmed[e.ID],
			Views:             hits[eventURI(e.ID)],
		}
	}

	return res, nil
}

func (s *CatalogService) find(ctx context.Context, q query.EventQuery) ([]*domain.EventView, error) {
	events, err := s.eventRepo.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	return s.Enrich(ctx, events)
}

func (s *CatalogService) one(ctx context.Context, e *domain.Event) (*domain.EventView, error) {
	views, err := s.Enrich(ctx, []*domain.Event{e})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (s *CatalogService) record(ctx context.Context, hit domain.Hit) {
	hit.App = s.app
	if hit.Timestamp.IsZero() {
		hit.Timestamp = s.now()
	}

	go func(ctx context.Context) {
		if err := s.stats.Record(ctx, hit); err != nil {
			s.logger.Warn("failed to record hit",
				logger.String("uri", hit.URI),
				logger.String("error", err.Error()),
			)
		}
	}(context.WithoutCancel(ctx))
}

func eventURI(id string) string {
	return eventURIPrefix + id
}

func normalizePage(p domain.Page) (domain.Page, error) {
	if p.Size == 0 {
		p.Size = domain.DefaultPageSize
	}
	if p.From < 0 || p.Size < 0 {
		return p, fmt.Errorf("%w: from=%d size=%d", domain.ErrInvalidPage, p.From, p.Size)
	}
	return p, nil
}

func validateRange(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return fmt.Errorf("%w: %s is after %s",
			domain.ErrInvalidDateRange, start.Format(time.DateTime), end.Format(time.DateTime))
	}
	return nil
}

func cut[T any](items []T, p domain.Page) []T {
	if p.From >= len(items) {
		return []T{}
	}
	end := p.From + p.Size
	if end > len(items) {
		end = len(items)
	}
	return items[p.From:end]
}
