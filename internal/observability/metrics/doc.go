// Package metrics holds the Prometheus metrics of the client side: backend
// requests, page fetches made by views, and page cache lookups.
//
// Metrics register with the default registry through promauto and are served
// by `ventas browse --metrics-addr`.
//
//	start := time.Now()
//	// ... call the backend ...
//	metrics.RecordAPIRequest("GET", "vendedores", 200, time.Since(start))
package metrics
