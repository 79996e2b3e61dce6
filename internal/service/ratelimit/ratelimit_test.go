package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 10, 31, 20, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestAllowUpToLimit(t *testing.T) {
	clock := newFakeClock()
	l := New(5, time.Minute, WithClock(clock.Now))
	ctx := context.Background()

	for i := range 5 {
		ok, _, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
		clock.Advance(time.Second)
	}

	ok, retryAfter, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 55*time.Second, retryAfter)
}

func TestWindowSlides(t *testing.T) {
	clock := newFakeClock()
	l := New(2, 10*time.Second, WithClock(clock.Now))
	ctx := context.Background()

	ok, _, _ := l.Allow(ctx, "a")
	assert.True(t, ok)
	clock.Advance(4 * time.Second)
	ok, _, _ = l.Allow(ctx, "a")
	assert.True(t, ok)

	clock.Advance(5 * time.Second)
	ok, retryAfter, _ := l.Allow(ctx, "a")
	assert.False(t, ok)
	assert.Equal(t, time.Second, retryAfter)

	// first hit is now exactly W old and no longer counts
	clock.Advance(time.Second)
	ok, _, _ = l.Allow(ctx, "a")
	assert.True(t, ok)

	ok, _, _ = l.Allow(ctx, "a")
	assert.False(t, ok)
}

func TestRejectedRequestsAreNotRecorded(t *testing.T) {
	clock := newFakeClock()
	l := New(1, time.Minute, WithClock(clock.Now))
	ctx := context.Background()

	ok, _, _ := l.Allow(ctx, "a")
	require.True(t, ok)

	for range 10 {
		clock.Advance(time.Second)
		ok, _, _ = l.Allow(ctx, "a")
		assert.False(t, ok)
	}

	clock.Advance(50 * time.Second)
	ok, _, _ = l.Allow(ctx, "a")
	assert.True(t, ok)
}

func TestKeysAreIndependent(t *testing.T) {
	l := New(1, time.Minute, WithClock(newFakeClock().Now))
	ctx := context.Background()

	ok, _, _ := l.Allow(ctx, "a")
	assert.True(t, ok)
	ok, _, _ = l.Allow(ctx, "b")
	assert.True(t, ok)
	ok, _, _ = l.Allow(ctx, "a")
	assert.False(t, ok)
}

func TestIdleKeysAreSwept(t *testing.T) {
	clock := newFakeClock()
	l := New(5, time.Minute, WithClock(clock.Now))
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		_, _, _ = l.Allow(ctx, key)
	}
	assert.Equal(t, 3, l.Tracked())

	clock.Advance(2 * time.Minute)
	_, _, _ = l.Allow(ctx, "d")
	assert.Equal(t, 1, l.Tracked())
}

func TestConcurrentAllowNeverExceedsLimit(t *testing.T) {
	const limit = 5
	l := New(limit, time.Minute)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _, _ := l.Allow(ctx, "shared"); ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, limit, allowed.Load())
}

func TestDefaults(t *testing.T) {
	l := New(0, 0)
	assert.Equal(t, DefaultLimit, l.limit)
	assert.Equal(t, DefaultWindow, l.window)
}
