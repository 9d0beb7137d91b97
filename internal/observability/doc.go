// Package observability groups the logging, metrics and tracing used by the
// ventas-admin client.
//
// Subpackages:
//   - logging: slog loggers with request ID propagation
//   - metrics: Prometheus metrics for backend calls, page fetches and the page cache
//   - tracing: OpenTelemetry tracer for outbound requests
package observability
