// Package cache implements the client's page cache on Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"ventas-admin/internal/config"
)

// scanBatch is the COUNT hint of each SCAN call during invalidation.
const scanBatch = 100

// RedisPageCache stores raw page responses in Redis. It satisfies
// api.PageCache.
type RedisPageCache struct {
	client redis.UniversalClient
	logger *slog.Logger
}

// New wraps an existing client.
func New(client redis.UniversalClient, logger *slog.Logger) *RedisPageCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisPageCache{
		client: client,
		logger: logger.With(slog.String("component", "page_cache")),
	}
}

// Connect dials Redis with cfg and pings it once.
func Connect(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (*RedisPageCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	c := New(client, logger)
	c.logger.Info("connected to Redis", slog.String("addr", cfg.RedisAddr))
	return c, nil
}

// Get returns the cached value; ok is false on a miss.
func (c *RedisPageCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}
	return val, true, nil
}

// Set stores value for ttl.
func (c *RedisPageCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// InvalidatePrefix deletes every key starting with prefix. It walks the
// keyspace with SCAN so Redis is never blocked by KEYS.
func (c *RedisPageCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	deleted := 0
	for {
		keys, next, err := c.client.Scan(ctx, cursor, prefix+"*", scanBatch).Result()
		if err != nil {
			return fmt.Errorf("redis scan failed: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis delete failed: %w", err)
			}
			deleted += len(keys)
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	c.logger.Debug("invalidated cached pages",
		slog.String("prefix", prefix),
		slog.Int("keys", deleted))
	return nil
}

// Ping checks the connection.
func (c *RedisPageCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (c *RedisPageCache) Close() error {
	return c.client.Close()
}
