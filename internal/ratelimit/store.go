package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Window is the fixed-window counter state for one key.
type Window struct {
	Start time.Time
	Count int64
}

// WindowStore holds per-key fixed-window counters. IncrOrReset is the
// single compound operation: it must atomically either start a fresh
// window at now with count 1, or increment the live one, and return the
// post-update state. Two concurrent calls for the same key must never
// both observe the same pre-increment count.
type WindowStore interface {
	IncrOrReset(ctx context.Context, key string, period time.Duration, now time.Time) (Window, error)
}

// MemoryStore is a mutex-guarded in-process WindowStore. Entries are
// never deleted on the hot path; when the map reaches maxEntries a sweep
// drops windows whose period has fully elapsed, bounding growth to the
// number of distinct recent clients.
type MemoryStore struct {
	mu         sync.Mutex
	windows    map[string]*memoryWindow
	maxEntries int
}

type memoryWindow struct {
	start  time.Time
	count  int64
	period time.Duration
}

// NewMemoryStore creates a store capped at maxEntries keys.
func NewMemoryStore(maxEntries int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = 10000
	}
	return &MemoryStore{
		windows:    make(map[string]*memoryWindow),
		maxEntries: maxEntries,
	}
}

// IncrOrReset implements WindowStore.
func (s *MemoryStore) IncrOrReset(_ context.Context, key string, period time.Duration, now time.Time) (Window, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok {
		if len(s.windows) >= s.maxEntries {
			s.evictStaleLocked(now)
		}
		w = &memoryWindow{start: now, count: 1, period: period}
		s.windows[key] = w
		return Window{Start: w.start, Count: w.count}, nil
	}

	if !now.Before(w.start.Add(period)) {
		w.start = now
		w.count = 1
		w.period = period
		return Window{Start: w.start, Count: w.count}, nil
	}

	w.count++
	return Window{Start: w.start, Count: w.count}, nil
}

// evictStaleLocked drops expired windows. Caller holds the lock.
func (s *MemoryStore) evictStaleLocked(now time.Time) {
	for key, w := range s.windows {
		if !now.Before(w.start.Add(w.period)) {
			delete(s.windows, key)
		}
	}
}

// Len reports the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}
