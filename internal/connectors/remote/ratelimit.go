package remote

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter throttles requests proactively with a token bucket.
// Sources are fetched one after another, often from the same statistics
// office, so requests are spaced out rather than fired back to back.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perSecond requests per second
// with a burst of one. A non-positive rate disables throttling.
func NewRateLimiter(perSecond float64) *RateLimiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	return &RateLimiter{bucket: rate.NewLimiter(limit, 1)}
}

// Wait blocks until a request may be sent or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}

// Limit returns the configured requests per second.
func (r *RateLimiter) Limit() float64 {
	return float64(r.bucket.Limit())
}
