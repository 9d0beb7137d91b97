package metrics

import (
	"strconv"
	"time"
)

// Page fetch outcomes.
const (
	PageOutcomeSuccess    = "success"
	PageOutcomeError      = "error"
	PageOutcomeSuperseded = "superseded"
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// RecordAPIRequest records one backend request. A status of 0 means the
// request failed before a response arrived.
func RecordAPIRequest(method, resource string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	APIRequestsTotal.WithLabelValues(method, resource, label).Inc()
	APIRequestDuration.WithLabelValues(method, resource).Observe(duration.Seconds())
}

// RecordPageFetch records a completed page fetch. Superseded fetches are
// counted but their duration is not observed, since no view waited on them.
func RecordPageFetch(resource, outcome string, duration time.Duration) {
	PageFetchesTotal.WithLabelValues(resource, outcome).Inc()
	if outcome != PageOutcomeSuperseded {
		PageFetchDuration.WithLabelValues(resource).Observe(duration.Seconds())
	}
}

// RecordExportPages adds n pages to the export counter.
func RecordExportPages(resource string, n int) {
	ExportPagesTotal.WithLabelValues(resource).Add(float64(n))
}

// RecordCacheLookup records a page cache lookup result.
func RecordCacheLookup(result string) {
	CacheLookupsTotal.WithLabelValues(result).Inc()
}

// RecordBreakerState sets the state gauge of a circuit breaker.
func RecordBreakerState(circuit string, state int) {
	CircuitBreakerState.WithLabelValues(circuit).Set(float64(state))
}

// RecordRateLimitWait observes a wait for the client-side rate limiter.
func RecordRateLimitWait(d time.Duration) {
	RateLimitWait.Observe(d.Seconds())
}
