package api

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"ventas-admin/internal/observability/metrics"
)

// RateLimiter is the token bucket shared by every request of a Client.
// Paging quickly through a table queues requests here instead of flooding
// the backend.
type RateLimiter struct {
	bucket *rate.Limiter
	now    func() time.Time
}

// NewRateLimiter refills rps tokens per second into a bucket of size burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{bucket: rate.NewLimiter(rate.Limit(rps), burst), now: time.Now}
}

// Wait takes a token, blocking until one is free. It fails without waiting
// when ctx would expire first.
func (r *RateLimiter) Wait(ctx context.Context) error {
	start := r.now()
	if err := r.bucket.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	metrics.RecordRateLimitWait(r.now().Sub(start))
	return nil
}
