package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// instrumentation is the scope name spans are recorded under.
const instrumentation = "ventas-admin/internal/infra/api"

// StartClientSpan opens a client span for one backend call. The tracer is
// resolved from the global provider each time, so InstallLogProvider and test
// providers apply to calls made after they are installed.
//
//	ctx, span := tracing.StartClientSpan(ctx, "GET vendedores", attribute.Int("page", 2))
//	defer span.End()
func StartClientSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(instrumentation).Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...))
}
