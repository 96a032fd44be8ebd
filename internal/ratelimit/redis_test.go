package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisTestLimiter(t *testing.T) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisLimiter(client), mr
}

func TestRedisLimiterCountsWindow(t *testing.T) {
	cfg := Config{Limit: 3, Window: time.Minute}
	l, _ := newRedisTestLimiter(t)

	for i, wantRemaining := range []int{2, 1, 0} {
		res, err := l.Check(context.Background(), "user-1", cfg)
		require.NoError(t, err)
		assert.True(t, res.Success, "call %d", i+1)
		assert.Equal(t, wantRemaining, res.Remaining, "call %d", i+1)
	}

	res, err := l.Check(context.Background(), "user-1", cfg)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 0, res.Remaining)
}

func TestRedisLimiterResetsAfterWindow(t *testing.T) {
	cfg := Config{Limit: 2, Window: time.Minute}
	l, mr := newRedisTestLimiter(t)

	for i := 0; i < 3; i++ {
		_, err := l.Check(context.Background(), "user-2", cfg)
		require.NoError(t, err)
	}

	mr.FastForward(cfg.Window + time.Second)

	res, err := l.Check(context.Background(), "user-2", cfg)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Remaining)
}

func TestRedisLimiterTracksIdentifiersIndependently(t *testing.T) {
	cfg := Config{Limit: 1, Window: time.Minute}
	l, _ := newRedisTestLimiter(t)

	res, err := l.Check(context.Background(), "user-a", cfg)
	require.NoError(t, err)
	assert.True(t, res.Success)

	res, err = l.Check(context.Background(), "user-a", cfg)
	require.NoError(t, err)
	assert.False(t, res.Success)

	res, err = l.Check(context.Background(), "user-b", cfg)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestRedisLimiterErrorsWhenStoreDown(t *testing.T) {
	cfg := Config{Limit: 1, Window: time.Minute}
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	l := NewRedisLimiter(client)

	mr.Close()

	_, err := l.Check(context.Background(), "user-c", cfg)
	assert.Error(t, err)
}
