package memory

import (
	"context"
	"sort"

	"github.com/stpnv0/EventHub/internal/domain"
)

type StatsRepository struct {
	s *Store
}

func (r *StatsRepository) Record(_ context.Context, hit domain.Hit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.hits = append(r.s.hits, hit)
	return nil
}

func (r *StatsRepository) Query(_ context.Context, q domain.StatsQuery) ([]domain.ViewStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var uris map[string]bool
	if len(q.URIs) > 0 {
		uris = make(map[string]bool, len(q.URIs))
		for _, u := range q.URIs {
			uris[u] = true
		}
	}

	type key struct{ app, uri string }
	counts := make(map[key]int64)
	ips := make(map[key]map[string]bool)

	for _, h := range r.s.hits {
		if h.Timestamp.Before(q.Start) || h.Timestamp.After(q.End) {
			continue
		}
		if uris != nil && !uris[h.URI] {
			continue
		}
		k := key{h.App, h.URI}
		if q.Unique {
			if ips[k] == nil {
				ips[k] = make(map[string]bool)
			}
			if ips[k][h.IP] {
				continue
			}
			ips[k][h.IP] = true
		}
		counts[k]++
	}

	res := make([]domain.ViewStats, 0, len(counts))
	for k, n := range counts {
		res = append(res, domain.ViewStats{App: k.app, URI: k.uri, Hits: n})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Hits != res[j].Hits {
			return res[i].Hits > res[j].Hits
		}
		return res[i].URI < res[j].URI
	})
	return res, nil
}
