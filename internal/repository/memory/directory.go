package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) List(_ context.Context, ids []string, page domain.Page) ([]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var wanted map[string]bool
	if len(ids) > 0 {
		wanted = make(map[string]bool, len(ids))
		for _, id := range ids {
			wanted[id] = true
		}
	}

	res := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if wanted != nil && !wanted[u.ID] {
			continue
		}
		res = append(res, &u)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.Before(res[j].CreatedAt)
		}
		return res[i].ID < res[j].ID
	})

	return paginate(res, page), nil
}

type CategoryRepository struct {
	s *Store
}

func (r *CategoryRepository) Create(_ context.Context, c *domain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.categories {
		if existing.Name == c.Name {
			return domain.ErrCategoryNameTaken
		}
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id string) (*domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *CategoryRepository) List(_ context.Context, page domain.Page) ([]*domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		res = append(res, &c)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })

	return paginate(res, page), nil
}

type LocationRepository struct {
	s *Store
}

func (r *LocationRepository) GetOrCreate(_ context.Context, lat, lon float64) (*domain.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := [2]float64{lat, lon}
	if l, ok := r.s.locations[key]; ok {
		return &l, nil
	}
	l := domain.Location{ID: uuid.New().String(), Lat: lat, Lon: lon}
	r.s.locations[key] = l
	return &l, nil
}
