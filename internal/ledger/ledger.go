// Package ledger keeps the authoritative per-event count of confirmed
// participants and gates every new confirmation through TryReserve.
//
// A count is hydrated lazily from persisted requests the first time an
// event is reserved against or counted alone; afterwards the in-process
// value is the source of truth and callers persist request status changes
// after mutating it. Batch reads never start tracking an event.
package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/stpnv0/EventHub/internal/domain"
)

type CountLoader interface {
	CountConfirmed(ctx context.Context, eventIDs []string) (map[string]int, error)
}

type entry struct {
	mu     sync.Mutex
	loaded bool
	count  int
}

type Ledger struct {
	loader CountLoader

	mu      sync.RWMutex
	entries map[string]*entry
}

func New(loader CountLoader) *Ledger {
	return &Ledger{
		loader:  loader,
		entries: make(map[string]*entry),
	}
}

func (l *Ledger) entry(eventID string) *entry {
	l.mu.RLock()
	e, ok := l.entries[eventID]
	l.mu.RUnlock()
	if ok {
		return e
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if e, ok = l.entries[eventID]; !ok {
		e = &entry{}
		l.entries[eventID] = e
	}
	return e
}

// load must be called with e.mu held.
func (l *Ledger) load(ctx context.Context, eventID string, e *entry) error {
	if e.loaded {
		return nil
	}
	counts, err := l.loader.CountConfirmed(ctx, []string{eventID})
	if err != nil {
		return fmt.Errorf("load confirmed count: %w", err)
	}
	e.count = counts[eventID]
	e.loaded = true
	return nil
}

func (l *Ledger) Count(ctx context.Context, eventID string) (int, error) {
	e := l.entry(eventID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := l.load(ctx, eventID, e); err != nil {
		return 0, err
	}
	return e.count, nil
}

// Counts returns confirmed counts for all ids. Tracked events answer from
// memory, the rest come from a single loader call and stay untracked.
func (l *Ledger) Counts(ctx context.Context, eventIDs []string) (map[string]int, error) {
	res := make(map[string]int, len(eventIDs))
	var missing []string

	for _, id := range eventIDs {
		if c, ok := l.peek(id); ok {
			res[id] = c
		} else {
			missing = append(missing, id)
		}
	}

	if len(missing) == 0 {
		return res, nil
	}

	loaded, err := l.loader.CountConfirmed(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("load confirmed counts: %w", err)
	}
	for _, id := range missing {
		res[id] = loaded[id]
	}

	return res, nil
}

func (l *Ledger) peek(eventID string) (int, bool) {
	l.mu.RLock()
	e, ok := l.entries[eventID]
	l.mu.RUnlock()
	if !ok {
		return 0, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.count, e.loaded
}

// TryReserve atomically admits one confirmation when limit is 0 (unlimited)
// or the count is below limit. It reports whether a slot was taken.
func (l *Ledger) TryReserve(ctx context.Context, eventID string, limit int) (bool, error) {
	e := l.entry(eventID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := l.load(ctx, eventID, e); err != nil {
		return false, err
	}
	if limit != 0 && e.count >= limit {
		return false, nil
	}
	e.count++
	return true, nil
}

func (l *Ledger) Release(ctx context.Context, eventID string) error {
	e := l.entry(eventID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := l.load(ctx, eventID, e); err != nil {
		return err
	}
	if e.count == 0 {
		return fmt.Errorf("%w: event %s", domain.ErrLedgerUnderflow, eventID)
	}
	e.count--
	return nil
}

// Tracked lists the events whose count is held in memory.
func (l *Ledger) Tracked() []string {
	l.mu.RLock()
	ids := make([]string, 0, len(l.entries))
	entries := make([]*entry, 0, len(l.entries))
	for id, e := range l.entries {
		ids = append(ids, id)
		entries = append(entries, e)
	}
	l.mu.RUnlock()

	res := make([]string, 0, len(ids))
	for i, e := range entries {
		e.mu.Lock()
		if e.loaded {
			res = append(res, ids[i])
		}
		e.mu.Unlock()
	}
	return res
}

// Reset overwrites the count of an event, used after reconciliation.
func (l *Ledger) Reset(eventID string, count int) {
	e := l.entry(eventID)
	e.mu.Lock()
	e.count = count
	e.loaded = true
	e.mu.Unlock()
}

// Forget drops the in-memory count of an event. The caller must hold the
// event's lock; the next reservation hydrates the count again.
func (l *Ledger) Forget(eventID string) {
	l.mu.Lock()
	delete(l.entries, eventID)
	l.mu.Unlock()
}
