package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ventas-admin/internal/common/pagination"
	httpx "ventas-admin/internal/handler/http"
	"ventas-admin/internal/infra/api/mockapi"
	"ventas-admin/internal/observability/logging"
)

type mockServerOptions struct {
	addr    string
	latency time.Duration
	secret  string
	noSeed  bool
}

func newMockServerCmd(opts *options) *cobra.Command {
	var mopts mockServerOptions

	cmd := &cobra.Command{
		Use:   "mock-server",
		Short: "Run an in-memory backend with sample data",
		Long: `Run an in-memory backend under /api. Every collection paginates with a
different envelope, which makes it a fixture for the list, export and browse
commands. /metrics and /health are served next to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runMockServer(ctx, mopts, opts.version)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&mopts.addr, "addr", ":8080", "listen address")
	flags.DurationVar(&mopts.latency, "latency", 0, "delay every response, e.g. 300ms")
	flags.StringVar(&mopts.secret, "secret", "", "require HS256 bearer tokens signed with this secret")
	flags.BoolVar(&mopts.noSeed, "no-seed", false, "start with empty collections")
	return cmd
}

func runMockServer(ctx context.Context, mopts mockServerOptions, version string) error {
	logger := logging.FromContext(ctx)

	ln, err := net.Listen("tcp", mopts.addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	server := &http.Server{
		Handler:           newMockHandler(mopts, version, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("mock backend listening",
			slog.String("addr", ln.Addr().String()),
			slog.Bool("seed", !mopts.noSeed),
			slog.Bool("auth", mopts.secret != ""))
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("mock backend: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("mock backend shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("mock backend shutdown: %w", err)
	}
	logger.Info("mock backend stopped")
	return nil
}

// newMockHandler mounts the mock backend under /api next to the metrics and
// health endpoints.
func newMockHandler(mopts mockServerOptions, version string, logger *slog.Logger) http.Handler {
	backend := mockapi.New(mockapi.Options{
		Latency:    mopts.latency,
		Secret:     []byte(mopts.secret),
		Seed:       !mopts.noSeed,
		Pagination: pagination.LoadFromEnv(),
		Logger:     logger,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", backend))
	mux.Handle("/metrics", httpx.MetricsHandler())
	mux.Handle("/health", &httpx.HealthHandler{Version: version, Logger: logger})

	return httpx.Chain(mux, httpx.Recover(logger), httpx.MetricsMiddleware)
}
