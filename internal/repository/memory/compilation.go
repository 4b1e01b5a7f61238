package memory

import (
	"context"
	"slices"

	"github.com/stpnv0/EventHub/internal/domain"
)

type CompilationRepository struct {
	s *Store
}

func (r *CompilationRepository) Create(_ context.Context, c *domain.Compilation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.comps[c.ID] = cloneCompilation(c)
	return nil
}

func (r *CompilationRepository) GetByID(_ context.Context, id string) (*domain.Compilation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comps[id]
	if !ok {
		return nil, domain.ErrCompilationNotFound
	}
	res := cloneCompilation(&c)
	return &res, nil
}

func (r *CompilationRepository) Update(_ context.Context, c *domain.Compilation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comps[c.ID]; !ok {
		return domain.ErrCompilationNotFound
	}
	r.s.comps[c.ID] = cloneCompilation(c)
	return nil
}

func (r *CompilationRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comps[id]; !ok {
		return domain.ErrCompilationNotFound
	}
	delete(r.s.comps, id)
	return nil
}

func (r *CompilationRepository) List(_ context.Context, pinned *bool, page domain.Page) ([]*domain.Compilation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Compilation, 0, len(r.s.comps))
	for _, c := range r.s.comps {
		if pinned != nil && c.Pinned != *pinned {
			continue
		}
		cp := cloneCompilation(&c)
		res = append(res, &cp)
	}
	sortByID(res, func(c *domain.Compilation) string { return c.ID })

	return paginate(res, page), nil
}

func cloneCompilation(c *domain.Compilation) domain.Compilation {
	cp := *c
	cp.EventIDs = slices.Clone(c.EventIDs)
	return cp
}
