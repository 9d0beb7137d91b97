package http

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ventas-admin/internal/handler/http/pathutil"
	"ventas-admin/internal/handler/http/responsewriter"
)

// Server-side metrics of the local servers. Routes are labeled with their
// normalized path and statuses by class, which keeps cardinality bounded
// however many records the mock backend holds.
var (
	serverRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ventas",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Requests served by the local HTTP servers",
		},
		[]string{"method", "route", "code"},
	)

	serverLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ventas",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Time to serve a request, including injected latency",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	serverInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "ventas",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Requests being served",
	})

	serverResponseBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ventas",
			Subsystem: "http",
			Name:      "response_size_bytes",
			Help:      "Response body size",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 7),
		},
		[]string{"route"},
	)
)

// statusClass turns 404 into "4xx".
func statusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}

// MetricsMiddleware records count, latency and size of every response.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverInFlight.Inc()
		defer serverInFlight.Dec()

		rec := responsewriter.Record(w)
		next.ServeHTTP(rec, r)

		route := pathutil.NormalizePath(r.URL.Path)
		serverRequests.WithLabelValues(r.Method, route, statusClass(rec.Status())).Inc()
		serverLatency.WithLabelValues(r.Method, route).Observe(rec.Elapsed().Seconds())
		serverResponseBytes.WithLabelValues(route).Observe(float64(rec.Size()))
	})
}

// MetricsHandler serves the default Prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
