package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/query"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CompilationService struct {
	repo      ports.CompilationRepo
	eventRepo ports.EventRepo
	enricher  eventEnricher
	logger    logger.Logger
}

func NewCompilationService(
	repo ports.CompilationRepo,
	eventRepo ports.EventRepo,
	enricher eventEnricher,
	logger logger.Logger,
) *CompilationService {
	return &CompilationService{
		repo:      repo,
		eventRepo: eventRepo,
		enricher:  enricher,
		logger:    logger,
	}
}

func (s *CompilationService) Create(ctx context.Context, input domain.CreateCompilationInput) (*domain.CompilationView, error) {
	title, err := compilationTitle(input.Title)
	if err != nil {
		return nil, err
	}
	eventIDs, err := s.checkEvents(ctx, input.Events)
	if err != nil {
		return nil, err
	}

	c := &domain.Compilation{
		ID:       uuid.New().String(),
		Title:    title,
		Pinned:   input.Pinned != nil && *input.Pinned,
		EventIDs: eventIDs,
	}
	if err = s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create compilation: %w", err)
	}

	s.logger.Info("compilation created",
		logger.String("compilation_id", c.ID),
		logger.Int("events", len(c.EventIDs)),
	)

	return s.one(ctx, c)
}

// Update applies the set fields of the patch. A blank title is ignored.
func (s *CompilationService) Update(ctx context.Context, id string, patch domain.CompilationPatch) (*domain.CompilationView, error) {
	c, err := s.repo.GetByID(ctx, canonicalID(id))
	if err != nil {
		return nil, fmt.Errorf("get compilation: %w", err)
	}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) != "" {
		if c.Title, err = compilationTitle(*patch.Title); err != nil {
			return nil, err
		}
	}
	if patch.Pinned != nil {
		c.Pinned = *patch.Pinned
	}
	if patch.Events != nil {
		if c.EventIDs, err = s.checkEvents(ctx, patch.Events); err != nil {
			return nil, err
		}
	}

	if err = s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update compilation: %w", err)
	}

	return s.one(ctx, c)
}

func (s *CompilationService) Delete(ctx context.Context, id string) error {
	id = canonicalID(id)
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete compilation: %w", err)
	}

	s.logger.Info("compilation deleted", logger.String("compilation_id", id))
	return nil
}

func (s *CompilationService) GetByID(ctx context.Context, id string) (*domain.CompilationView, error) {
	c, err := s.repo.GetByID(ctx, canonicalID(id))
	if err != nil {
		return nil, fmt.Errorf("get compilation: %w", err)
	}
	return s.one(ctx, c)
}

// List pages through compilations, optionally only pinned or unpinned ones.
func (s *CompilationService) List(ctx context.Context, pinned *bool, page domain.Page) ([]*domain.CompilationView, error) {
	page, err := normalizePage(page)
	if err != nil {
		return nil, err
	}

	list, err := s.repo.List(ctx, pinned, page)
	if err != nil {
		return nil, fmt.Errorf("list compilations: %w", err)
	}
	return s.views(ctx, list)
}

// checkEvents canonicalizes and dedupes ids, failing on the first one that
// does not name a stored event.
func (s *CompilationService) checkEvents(ctx context.Context, raw []string) ([]string, error) {
	ids := dedupe(canonicalIDs(raw))
	if len(ids) == 0 {
		return ids, nil
	}

	events, err := s.eventRepo.Find(ctx, query.New().IDIn(ids).Build())
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	if len(events) == len(ids) {
		return ids, nil
	}

	found := make(map[string]bool, len(events))
	for _, e := range events {
		found[e.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, fmt.Errorf("%w: %s", domain.ErrEventNotFound, id)
		}
	}
	return ids, nil
}

func (s *CompilationService) one(ctx context.Context, c *domain.Compilation) (*domain.CompilationView, error) {
	views, err := s.views(ctx, []*domain.Compilation{c})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// views loads and enriches the events of all compilations in one pass.
func (s *CompilationService) views(ctx context.Context, list []*domain.Compilation) ([]*domain.CompilationView, error) {
	var ids []string
	for _, c := range list {
		ids = append(ids, c.EventIDs...)
	}
	ids = dedupe(ids)

	byID := make(map[string]*domain.EventView, len(ids))
	if len(ids) > 0 {
		events, err := s.eventRepo.Find(ctx, query.New().IDIn(ids).Build())
		if err != nil {
			return nil, fmt.Errorf("find events: %w", err)
		}
		enriched, err := s.enricher.Enrich(ctx, events)
		if err != nil {
			return nil, fmt.Errorf("enrich events: %w", err)
		}
		for _, v := range enriched {
			byID[v.ID] = v
		}
	}

	res := make([]*domain.CompilationView, len(list))
	for i, c := range list {
		v := &domain.CompilationView{Compilation: *c, Events: make([]*domain.EventView, 0, len(c.EventIDs))}
		for _, id := range c.EventIDs {
			if ev, ok := byID[id]; ok {
				v.Events = append(v.Events, ev)
			}
		}
		res[i] = v
	}
	return res, nil
}

func compilationTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" || utf8.RuneCountInString(title) > domain.MaxCompilationTitle {
		return "", fmt.Errorf("%w: got %q", domain.ErrCompilationTitle, raw)
	}
	return title, nil
}
