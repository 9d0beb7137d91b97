// Package pagination normalizes the paging information returned by the sales
// backend. Endpoints disagree on field names (totalPages, total_pages, or only
// total + limit); everything above this package sees one Metadata shape.
package pagination

import (
	"os"
	"strconv"
)

// Config bounds page requests.
type Config struct {
	DefaultPage  int // used when a query omits page
	DefaultLimit int // used when a query omits limit
	MaxLimit     int
}

// DefaultConfig matches the admin tables: ten rows, at most a hundred.
func DefaultConfig() Config {
	return Config{DefaultPage: 1, DefaultLimit: 10, MaxLimit: 100}
}

// LoadFromEnv overrides DefaultConfig with PAGINATION_DEFAULT_PAGE,
// PAGINATION_DEFAULT_LIMIT and PAGINATION_MAX_LIMIT. Values that are not
// positive integers are ignored, and a default limit above the maximum is
// lowered to it.
func LoadFromEnv() Config {
	c := DefaultConfig()
	c.DefaultPage = positiveEnv("PAGINATION_DEFAULT_PAGE", c.DefaultPage)
	c.DefaultLimit = positiveEnv("PAGINATION_DEFAULT_LIMIT", c.DefaultLimit)
	c.MaxLimit = positiveEnv("PAGINATION_MAX_LIMIT", c.MaxLimit)
	c.DefaultLimit = min(c.DefaultLimit, c.MaxLimit)
	return c
}

func positiveEnv(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
