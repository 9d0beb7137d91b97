package api

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"ventas-admin/internal/common/pagination"
	"ventas-admin/internal/observability/metrics"
)

// PageCache stores raw list responses. Implementations must be safe for
// concurrent use. A cache error never fails a request.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}

// PageKeyPrefix starts every page cache key.
const PageKeyPrefix = "ventas:page:"

// CollectionPrefix is the key prefix of every cached page of a collection.
func CollectionPrefix(path string) string {
	return PageKeyPrefix + strings.Trim(path, "/") + ":"
}

// PageKey is the cache key of one page: ventas:page:<path>:<page>:<limit>.
func PageKey(path string, params pagination.Params) string {
	return CollectionPrefix(path) + strconv.Itoa(params.Page) + ":" + strconv.Itoa(params.Limit)
}

func (c *Client) cachedPage(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	body, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.RecordCacheLookup(metrics.CacheError)
		c.logger.Warn("page cache read failed",
			slog.String("key", key),
			slog.Any("error", err))
		return nil, false
	case !ok:
		metrics.RecordCacheLookup(metrics.CacheMiss)
		return nil, false
	}
	metrics.RecordCacheLookup(metrics.CacheHit)
	return body, true
}

func (c *Client) storePage(ctx context.Context, key string, body []byte) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, body, c.cacheTTL); err != nil {
		c.logger.Warn("page cache write failed",
			slog.String("key", key),
			slog.Any("error", err))
	}
}

func (c *Client) invalidate(ctx context.Context, path string) {
	if c.cache == nil {
		return
	}
	prefix := CollectionPrefix(path)
	if err := c.cache.InvalidatePrefix(ctx, prefix); err != nil {
		c.logger.Warn("page cache invalidation failed",
			slog.String("prefix", prefix),
			slog.Any("error", err))
	}
}
