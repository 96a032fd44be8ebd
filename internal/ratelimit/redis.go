package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

// RedisLimiter keeps fixed-window counters in Redis so multiple instances
// share one budget per identifier. Window expiry rides on key TTL: the first
// INCR of a window sets the TTL, later increments inherit it.
type RedisLimiter struct {
	client *redis.Client
}

// NewRedisLimiter creates a limiter backed by the given Redis client.
func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

// Check counts a request against the identifier's window in Redis.
func (l *RedisLimiter) Check(ctx context.Context, identifier string, cfg Config) (Result, error) {
	key := redisKeyPrefix + identifier

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		if err := l.client.PExpire(ctx, key, cfg.Window).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	ttl, err := l.client.PTTL(ctx, key).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read rate limit window: %w", err)
	}
	if ttl < 0 {
		// Key lost its TTL (e.g. expiry call raced a flush). Re-arm the window
		// rather than leaving an immortal counter behind.
		ttl = cfg.Window
		if err := l.client.PExpire(ctx, key, cfg.Window).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to reset rate limit window: %w", err)
		}
	}

	resetTime := time.Now().Add(ttl)

	if int(count) > cfg.Limit {
		return Result{
			Success:   false,
			Limit:     cfg.Limit,
			Remaining: 0,
			ResetTime: resetTime,
		}, nil
	}

	return Result{
		Success:   true,
		Limit:     cfg.Limit,
		Remaining: cfg.Limit - int(count),
		ResetTime: resetTime,
	}, nil
}
