// Package ratelimit implements fixed-window request counting keyed by an
// identifier string. Counters live behind the Limiter interface so the
// backing store (process memory, Redis) is swappable without touching
// callers.
package ratelimit

import (
	"context"
	"time"
)

// Config defines one rate-limit window.
type Config struct {
	// Limit is the maximum number of requests allowed in the window.
	Limit int
	// Window is the length of the fixed window.
	Window time.Duration
}

// Result reports the outcome of a rate-limit check.
type Result struct {
	// Success is false when the request exceeds the window's budget.
	Success bool
	// Limit echoes the configured window budget.
	Limit int
	// Remaining is the number of requests left in the current window.
	Remaining int
	// ResetTime is when the current window expires and the count resets.
	ResetTime time.Time
}

// Limiter checks whether a request identified by a key is within its window
// budget. Each distinct identifier is tracked independently.
type Limiter interface {
	Check(ctx context.Context, identifier string, cfg Config) (Result, error)
}
