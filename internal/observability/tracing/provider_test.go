package tracing

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestInstallLogProvider(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	shutdown := InstallLogProvider(logger)
	_, span := StartClientSpan(context.Background(), "GET productos", attribute.String("url.path", "/productos"))
	span.End()
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"span finished", "span=\"GET productos\"", "url.path=/productos", "trace_id="} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	// Spans after shutdown go to the previous provider.
	buf.Reset()
	_, span = StartClientSpan(context.Background(), "GET vendedores")
	span.End()
	if buf.Len() != 0 {
		t.Errorf("expected no output after shutdown, got %q", buf.String())
	}
}
