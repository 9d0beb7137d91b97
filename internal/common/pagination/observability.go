package pagination

import (
	"log/slog"
	"time"
)

// LogPage logs a resolved page with its normalized metadata.
func LogPage(logger *slog.Logger, resource string, params Params, meta Metadata, returned int, duration time.Duration) {
	logger.Debug("page resolved",
		slog.String("resource", resource),
		slog.Int("page", params.Page),
		slog.Int("limit", params.Limit),
		slog.Int64("total", meta.Total),
		slog.Int("total_pages", meta.TotalPages),
		slog.Bool("total_known", meta.Known),
		slog.Int("returned_count", returned),
		slog.Int64("duration_ms", duration.Milliseconds()))
}

// LogPageError logs a failed page fetch.
func LogPageError(logger *slog.Logger, resource string, params Params, err error) {
	logger.Warn("page fetch failed",
		slog.String("resource", resource),
		slog.Int("page", params.Page),
		slog.Int("limit", params.Limit),
		slog.Any("error", err))
}
