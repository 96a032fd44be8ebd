package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(start time.Time) (*MemoryLimiter, *time.Time) {
	l := NewMemoryLimiter()
	now := start
	l.now = func() time.Time { return now }
	return l, &now
}

func TestMemoryLimiterAllowsUnderLimit(t *testing.T) {
	cfg := Config{Limit: 3, Window: time.Minute}
	l, _ := newTestLimiter(time.Now())

	for i, wantRemaining := range []int{2, 1, 0} {
		res, err := l.Check(context.Background(), "user-1", cfg)
		require.NoError(t, err)
		assert.True(t, res.Success, "call %d", i+1)
		assert.Equal(t, 3, res.Limit)
		assert.Equal(t, wantRemaining, res.Remaining, "call %d", i+1)
	}
}

func TestMemoryLimiterBlocksOverLimit(t *testing.T) {
	cfg := Config{Limit: 3, Window: time.Minute}
	l, _ := newTestLimiter(time.Now())

	var last Result
	for i := 0; i < 3; i++ {
		res, err := l.Check(context.Background(), "user-2", cfg)
		require.NoError(t, err)
		last = res
	}

	res, err := l.Check(context.Background(), "user-2", cfg)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 0, res.Remaining)
	// Denial keeps the window's reset time so callers can compute retry-after
	assert.Equal(t, last.ResetTime, res.ResetTime)
}

func TestMemoryLimiterResetsAfterWindow(t *testing.T) {
	cfg := Config{Limit: 3, Window: time.Minute}
	l, now := newTestLimiter(time.Now())

	for i := 0; i < 4; i++ {
		l.Check(context.Background(), "user-3", cfg)
	}

	*now = now.Add(cfg.Window + time.Millisecond)

	res, err := l.Check(context.Background(), "user-3", cfg)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Remaining)
	assert.Equal(t, now.Add(cfg.Window), res.ResetTime)
}

func TestMemoryLimiterTracksIdentifiersIndependently(t *testing.T) {
	cfg := Config{Limit: 3, Window: time.Minute}
	l, _ := newTestLimiter(time.Now())

	for i := 0; i < 3; i++ {
		l.Check(context.Background(), "user-a", cfg)
	}

	blocked, err := l.Check(context.Background(), "user-a", cfg)
	require.NoError(t, err)
	assert.False(t, blocked.Success)

	allowed, err := l.Check(context.Background(), "user-b", cfg)
	require.NoError(t, err)
	assert.True(t, allowed.Success)
	assert.Equal(t, 2, allowed.Remaining)
}

func TestMemoryLimiterSweepDropsExpiredEntries(t *testing.T) {
	cfg := Config{Limit: 3, Window: time.Second}
	l, now := newTestLimiter(time.Now())

	l.Check(context.Background(), "stale-1", cfg)
	l.Check(context.Background(), "stale-2", cfg)
	require.Len(t, l.entries, 2)

	// Advance past both the entries' windows and the sweep interval
	*now = now.Add(cleanupInterval + time.Second)
	l.Check(context.Background(), "fresh", cfg)

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Len(t, l.entries, 1)
	assert.Contains(t, l.entries, "fresh")
}
