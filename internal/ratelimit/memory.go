package ratelimit

import (
	"context"
	"sync"
	"time"
)

// cleanupInterval bounds how often expired entries are swept from the map.
const cleanupInterval = time.Minute

type entry struct {
	count     int
	resetTime time.Time
}

// MemoryLimiter is a process-local fixed-window counter. It is adequate for
// single-instance deployments; horizontally scaled deployments should use
// RedisLimiter behind the same interface.
type MemoryLimiter struct {
	mu        sync.Mutex
	entries   map[string]*entry
	lastSweep time.Time

	// now is replaceable in tests
	now func() time.Time
}

// NewMemoryLimiter creates an in-memory fixed-window limiter.
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Check counts a request against the identifier's current window. The first
// request of a window (or the first after the previous window expired)
// creates a fresh entry; requests past the limit are denied but keep the
// window's reset time so callers can compute retry-after.
func (l *MemoryLimiter) Check(_ context.Context, identifier string, cfg Config) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	e, ok := l.entries[identifier]
	if !ok || e.resetTime.Before(now) {
		e = &entry{count: 1, resetTime: now.Add(cfg.Window)}
		l.entries[identifier] = e
		return Result{
			Success:   true,
			Limit:     cfg.Limit,
			Remaining: cfg.Limit - 1,
			ResetTime: e.resetTime,
		}, nil
	}

	e.count++

	if e.count > cfg.Limit {
		return Result{
			Success:   false,
			Limit:     cfg.Limit,
			Remaining: 0,
			ResetTime: e.resetTime,
		}, nil
	}

	return Result{
		Success:   true,
		Limit:     cfg.Limit,
		Remaining: cfg.Limit - e.count,
		ResetTime: e.resetTime,
	}, nil
}

// sweep opportunistically drops expired entries, at most once per
// cleanupInterval. Best-effort memory bound, not correctness-critical:
// Check handles stale entries on lookup regardless.
func (l *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < cleanupInterval {
		return
	}
	l.lastSweep = now

	for key, e := range l.entries {
		if e.resetTime.Before(now) {
			delete(l.entries, key)
		}
	}
}
