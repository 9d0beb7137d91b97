package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"ventas-admin/internal/config"
	"ventas-admin/internal/domain/entity"
	"ventas-admin/internal/infra/api"
	"ventas-admin/internal/infra/cache"
	"ventas-admin/internal/observability/logging"
	"ventas-admin/internal/usecase/resource"
)

// app is what a command needs to talk to the backend.
type app struct {
	cfg     *config.APIConfig
	logger  *slog.Logger
	client  *api.Client
	catalog *resource.Catalog
	cache   *cache.RedisPageCache
}

// newApp loads the configuration and builds the client. An unreachable
// Redis disables the page cache instead of failing the command.
func newApp(ctx context.Context, opts *options) (*app, error) {
	cfg, err := config.LoadAPIConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.apiURL != "" {
		cfg.BaseURL = opts.apiURL
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --api-url: %w", err)
		}
	}

	logger := logging.FromContext(ctx)
	a := &app{cfg: cfg, logger: logger}

	clientOpts := []api.Option{api.WithLogger(logger)}
	if cfg.Cache.Enabled() {
		pageCache, err := cache.Connect(ctx, cfg.Cache, logger)
		if err != nil {
			logger.Warn("page cache disabled", slog.Any("error", err))
		} else {
			a.cache = pageCache
			clientOpts = append(clientOpts, api.WithCache(pageCache, cfg.Cache.TTL))
		}
	}

	client, err := api.New(*cfg, clientOpts...)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.client = client
	a.catalog = resource.NewCatalog(client)

	logger.Debug("client ready",
		slog.String("base_url", cfg.BaseURL),
		slog.Int("items_per_page", cfg.ItemsPerPage),
		slog.Bool("cache", a.cache != nil))
	return a, nil
}

// Close releases the cache connection.
func (a *app) Close() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("closing page cache failed", slog.Any("error", err))
		}
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer, got %q: %w", s, entity.ErrInvalidInput)
	}
	return id, nil
}
