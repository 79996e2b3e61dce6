package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultLimit  = 5
	DefaultWindow = 60 * time.Second
)

// SlidingWindow admits at most limit requests per key within any trailing
// window. Rejected requests are not recorded.
type SlidingWindow struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string][]time.Time

	now       func() time.Time
	lastSweep time.Time
}

type Option func(*SlidingWindow)

func WithClock(now func() time.Time) Option {
	return func(l *SlidingWindow) {
		l.now = now
	}
}

func New(limit int, window time.Duration, opts ...Option) *SlidingWindow {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}

	l := &SlidingWindow{
		limit:  limit,
		window: window,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep = l.now()
	return l
}

// Allow records a request for key if it fits in the window. When it does not,
// retryAfter is the time until the oldest recorded request leaves the window.
func (l *SlidingWindow) Allow(_ context.Context, key string) (allowed bool, retryAfter time.Duration, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	hits := expire(l.hits[key], cutoff)
	if len(hits) >= l.limit {
		l.hits[key] = hits
		return false, hits[0].Sub(cutoff), nil
	}
	l.hits[key] = append(hits, now)

	// Other keys are only trimmed when they are checked; drop idle ones once
	// per window so the map does not grow with every address ever seen.
	if now.Sub(l.lastSweep) >= l.window {
		for k, v := range l.hits {
			if v = expire(v, cutoff); len(v) == 0 {
				delete(l.hits, k)
			} else {
				l.hits[k] = v
			}
		}
		l.lastSweep = now
	}

	return true, 0, nil
}

// Tracked reports how many keys currently hold timestamps.
func (l *SlidingWindow) Tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hits)
}

// expire drops timestamps at or before cutoff. hits is sorted ascending.
func expire(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return hits
	}
	return append(hits[:0:0], hits[i:]...)
}
