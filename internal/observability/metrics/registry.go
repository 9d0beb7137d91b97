package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Backend request metrics
var (
	// APIRequestsTotal counts backend requests by method, resource and status.
	// status is the HTTP status code, or "error" when no response arrived.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ventas_api_requests_total",
			Help: "Total number of requests sent to the sales backend",
		},
		[]string{"method", "resource", "status"},
	)

	// APIRequestDuration measures backend request duration in seconds.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ventas_api_request_duration_seconds",
			Help:    "Sales backend request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "resource"},
	)
)

// View metrics
var (
	// PageFetchesTotal counts page fetches issued by paginated views.
	// outcome: success, error, superseded
	PageFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ventas_page_fetches_total",
			Help: "Page fetches completed by paginated views",
		},
		[]string{"resource", "outcome"},
	)

	// PageFetchDuration measures how long a view waited for a page.
	PageFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ventas_page_fetch_duration_seconds",
			Help:    "Time from page request to page result",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
		},
		[]string{"resource"},
	)

	// ExportPagesTotal counts pages pulled by bulk exports.
	ExportPagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ventas_export_pages_total",
			Help: "Pages fetched by bulk exports",
		},
		[]string{"resource"},
	)
)

// Page cache metrics
var (
	// CacheLookupsTotal counts page cache lookups.
	// result: hit, miss, error
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ventas_page_cache_lookups_total",
			Help: "Page cache lookups by result",
		},
		[]string{"result"},
	)
)

// Resilience metrics
var (
	// CircuitBreakerState is the state of each breaker:
	// 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ventas_circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"circuit"},
	)
)

// Client throttling metrics
var (
	// RateLimitWait observes how long requests queued for a token.
	RateLimitWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ventas_api_rate_limit_wait_seconds",
			Help:    "Time requests waited for the client-side rate limiter",
			Buckets: []float64{.001, .01, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)
)
