package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	shapeCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ventas",
			Subsystem: "pagination",
			Name:      "shape_total",
			Help:      "Resolved responses by the field the page count came from",
		},
		[]string{"resource", "shape"},
	)

	// Deep pages are where backends get slow and where a wrong page count
	// shows up first.
	requestedPage = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ventas",
			Subsystem: "pagination",
			Name:      "requested_page",
			Help:      "Page numbers requested by views",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 500},
		},
		[]string{"resource"},
	)
)

// RecordShape counts a response resolved from shape.
func RecordShape(resource string, shape Shape) {
	shapeCounter.WithLabelValues(resource, string(shape)).Inc()
}

// RecordPageRequest observes the page number of a request.
func RecordPageRequest(resource string, page int) {
	requestedPage.WithLabelValues(resource).Observe(float64(page))
}
