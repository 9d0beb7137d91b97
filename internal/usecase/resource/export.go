package resource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"ventas-admin/internal/common/pagination"
	"ventas-admin/internal/infra/api"
	"ventas-admin/internal/observability/logging"
	"ventas-admin/internal/observability/metrics"
	"ventas-admin/internal/resilience/retry"
)

// maxExportPages bounds an export either way: a walk over a backend that
// never returns a short page (one that ignores the page parameter), or a
// page count reported by the backend.
const maxExportPages = 10000

// ErrTooManyPages is returned when an export would need more than
// maxExportPages requests.
var ErrTooManyPages = errors.New("too many pages to export")

// ExportAll returns every item of the collection in page order.
//
// Page 1 decides the strategy. When it reports the page count (directly or
// through total and limit), the remaining pages are fetched concurrently,
// at most parallelism at a time. When the count is unknown, pages are
// walked one by one until a short or empty page comes back.
//
// Requests use the export retry policy. The first failure cancels the
// remaining fetches and is returned.
func (r *Resource[T]) ExportAll(ctx context.Context, limit, parallelism int) ([]T, error) {
	cfg := pagination.DefaultConfig()
	if limit < 1 || limit > cfg.MaxLimit {
		return nil, fmt.Errorf("export %s: limit must be between 1 and %d, got %d", r.name, cfg.MaxLimit, limit)
	}
	if parallelism < 1 {
		parallelism = 1
	}

	logger := logging.WithRequestID(ctx, logging.FromContext(ctx)).With(slog.String("resource", r.name))
	ctx = api.ContextWithRetry(ctx, retry.ExportConfig())
	start := time.Now()

	first, err := r.Fetch(ctx, pagination.Params{Page: 1, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("export %s page 1: %w", r.name, err)
	}
	meta := pagination.BuildMetadata(first.Source, limit)

	var (
		items []T
		pages int
	)
	if meta.Known && meta.TotalPages > maxExportPages {
		return nil, fmt.Errorf("export %s: backend reports %d pages, more than the %d an export fetches: %w",
			r.name, meta.TotalPages, maxExportPages, ErrTooManyPages)
	}

	if meta.Known {
		items, pages, err = r.exportParallel(ctx, first.Data, meta.TotalPages, limit, parallelism)
	} else {
		items, pages, err = r.exportSequential(ctx, first.Data, limit)
	}
	if err != nil {
		return nil, err
	}

	metrics.RecordExportPages(r.name, pages)
	logger.Info("export completed",
		slog.Int("pages", pages),
		slog.Int("items", len(items)),
		slog.Bool("page_count_known", meta.Known),
		slog.Duration("duration", time.Since(start)))
	return items, nil
}

func (r *Resource[T]) exportParallel(ctx context.Context, first []T, totalPages, limit, parallelism int) ([]T, int, error) {
	if totalPages <= 1 {
		return first, 1, nil
	}

	results := make([][]T, totalPages)
	results[0] = first

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism)
	for page := 2; page <= totalPages; page++ {
		eg.Go(func() error {
			p, err := r.Fetch(egCtx, pagination.Params{Page: page, Limit: limit})
			if err != nil {
				return fmt.Errorf("export %s page %d: %w", r.name, page, err)
			}
			results[page-1] = p.Data
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	n := 0
	for _, rows := range results {
		n += len(rows)
	}
	items := make([]T, 0, n)
	for _, rows := range results {
		items = append(items, rows...)
	}
	return items, totalPages, nil
}

func (r *Resource[T]) exportSequential(ctx context.Context, first []T, limit int) ([]T, int, error) {
	items := append([]T(nil), first...)
	last := len(first)
	page := 1
	for last == limit {
		if page == maxExportPages {
			return nil, 0, fmt.Errorf("export %s: no short page after %d pages: %w", r.name, page, ErrTooManyPages)
		}
		page++
		p, err := r.Fetch(ctx, pagination.Params{Page: page, Limit: limit})
		if err != nil {
			return nil, 0, fmt.Errorf("export %s page %d: %w", r.name, page, err)
		}
		items = append(items, p.Data...)
		last = len(p.Data)
	}
	return items, page, nil
}
