// Package tracing exposes the OpenTelemetry tracer used around backend
// requests. Without a configured TracerProvider the spans are no-ops.
package tracing
