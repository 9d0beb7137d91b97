package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	httpx "ventas-admin/internal/handler/http"
	"ventas-admin/internal/observability/logging"
	"ventas-admin/internal/tui/browse"
	"ventas-admin/internal/usecase/paging"
	"ventas-admin/internal/usecase/resource"
)

func newBrowseCmd(opts *options) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "browse <resource>",
		Short: "Page through a collection interactively",
		Long: `Page through a collection in a full-screen table.

Keys: →/n next page, ←/p previous page, r reload, q quit. Set
refresh_schedule (or VENTAS_REFRESH_SCHEDULE) to reload on a cron schedule.
Logs are discarded unless --log-file is given.`,
		Example: "  ventas browse productos --metrics-addr :9090",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if opts.logFile == "" {
				ctx = logging.WithLogger(ctx, slog.New(slog.DiscardHandler))
			}

			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			if metricsAddr != "" {
				if err := startMetricsServer(ctx, a, metricsAddr, opts.version); err != nil {
					return err
				}
			}

			var refresh <-chan struct{}
			if a.cfg.RefreshSchedule != "" {
				scheduler, err := browse.NewScheduler(a.cfg.RefreshSchedule)
				if err != nil {
					return err
				}
				scheduler.Start()
				defer scheduler.Stop()
				refresh = scheduler.C()
			}

			in, out := cmd.InOrStdin(), cmd.OutOrStdout()
			c := a.catalog
			switch args[0] {
			case c.Sellers.Name():
				return runBrowse(ctx, a, c.Sellers, refresh, in, out)
			case c.Products.Name():
				return runBrowse(ctx, a, c.Products, refresh, in, out)
			case c.Suppliers.Name():
				return runBrowse(ctx, a, c.Suppliers, refresh, in, out)
			case c.Plans.Name():
				return runBrowse(ctx, a, c.Plans, refresh, in, out)
			case c.Shipments.Name():
				return runBrowse(ctx, a, c.Shipments, refresh, in, out)
			}
			_, err = c.Lookup(args[0])
			return err
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve /metrics and /health on this address while browsing")
	return cmd
}

func runBrowse[T resource.Item](ctx context.Context, a *app, r *resource.Resource[T], refresh <-chan struct{}, in io.Reader, out io.Writer) error {
	fetcher := paging.New(ctx, r.Fetch, a.cfg.ItemsPerPage, paging.Options{
		Name:   r.Name(),
		Logger: a.logger,
	})
	defer fetcher.Close()

	model := browse.New[T](fetcher, r.Columns(), browse.Options{
		Title:   r.Name(),
		Refresh: refresh,
	})

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("browse %s: %w", r.Name(), err)
	}
	return nil
}

// startMetricsServer serves Prometheus metrics and a health report of the
// backend connection until ctx is canceled.
func startMetricsServer(ctx context.Context, a *app, addr, version string) error {
	checks := map[string]httpx.Check{
		"backend": httpx.BreakerCheck(a.client.Breaker()),
	}
	if a.cache != nil {
		checks["cache"] = httpx.PingCheck(a.cache.Ping)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", httpx.MetricsHandler())
	mux.Handle("/health", &httpx.HealthHandler{Version: version, Checks: checks, Logger: a.logger})

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics server: %w", err)
	}

	server := &http.Server{
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		a.logger.Info("metrics server starting", slog.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server error", slog.Any("error", err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("metrics server shutdown error", slog.Any("error", err))
		} else {
			a.logger.Info("metrics server stopped")
		}
	}()
	return nil
}
