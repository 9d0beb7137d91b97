// Package config loads the client configuration: built-in defaults, then an
// optional YAML file, then VENTAS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// APIConfig configures access to the sales administration backend.
type APIConfig struct {
	// BaseURL is the backend root, e.g. "https://ventas.example.com/api".
	// Env: VENTAS_API_URL. Default: "http://localhost:8080/api"
	BaseURL string `yaml:"base_url"`

	// Token is sent as a bearer token when set. Env: VENTAS_API_TOKEN
	Token string `yaml:"token"`

	// Timeout bounds a single HTTP request. Env: VENTAS_API_TIMEOUT. Default: 10s
	Timeout time.Duration `yaml:"timeout"`

	// ItemsPerPage is the page size views request. Env: VENTAS_ITEMS_PER_PAGE. Default: 10
	ItemsPerPage int `yaml:"items_per_page"`

	// RefreshSchedule makes the browse view reload its page on a cron
	// schedule, e.g. "@every 30s" or "*/5 * * * *". Empty disables it.
	// Env: VENTAS_REFRESH_SCHEDULE
	RefreshSchedule string `yaml:"refresh_schedule"`

	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Retry     RetryConfig     `yaml:"retry"`
	Cache     CacheConfig     `yaml:"cache"`
}

// RateLimitConfig throttles outgoing requests.
type RateLimitConfig struct {
	// RPS is the sustained request rate. Env: VENTAS_RATE_LIMIT_RPS. Default: 10
	RPS float64 `yaml:"rps"`
	// Burst is the bucket size. Env: VENTAS_RATE_LIMIT_BURST. Default: 20
	Burst int `yaml:"burst"`
}

// RetryConfig controls retries of idempotent requests.
type RetryConfig struct {
	// MaxAttempts counts the first call. Env: VENTAS_RETRY_MAX_ATTEMPTS. Default: 3
	MaxAttempts int `yaml:"max_attempts"`
}

// CacheConfig enables the Redis page cache.
type CacheConfig struct {
	// RedisAddr enables caching when set. Env: VENTAS_REDIS_ADDR
	RedisAddr string `yaml:"redis_addr"`
	// RedisPassword. Env: VENTAS_REDIS_PASSWORD
	RedisPassword string `yaml:"redis_password"`
	// RedisDB. Env: VENTAS_REDIS_DB. Default: 0
	RedisDB int `yaml:"redis_db"`
	// TTL of a cached page. Env: VENTAS_CACHE_TTL. Default: 30s
	TTL time.Duration `yaml:"ttl"`
}

// Enabled reports whether a Redis address was configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisAddr != ""
}

// DefaultAPIConfig returns the built-in defaults.
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		BaseURL:      "http://localhost:8080/api",
		Timeout:      10 * time.Second,
		ItemsPerPage: 10,
		RateLimit: RateLimitConfig{
			RPS:   10,
			Burst: 20,
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
		},
		Cache: CacheConfig{
			TTL: 30 * time.Second,
		},
	}
}

// LoadAPIConfig builds the configuration. path may be empty; a named file
// that does not exist is an error. Environment variables win over the file.
func LoadAPIConfig(path string) (*APIConfig, error) {
	config := DefaultAPIConfig()

	if path != "" {
		if err := loadFile(path, &config); err != nil {
			return nil, err
		}
	}

	applyEnv(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid API configuration: %w", err)
	}

	return &config, nil
}

func loadFile(path string, config *APIConfig) error {
	// #nosec G304 -- the path is chosen by the operator via --config.
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(c *APIConfig) {
	c.BaseURL = envString("VENTAS_API_URL", c.BaseURL)
	c.Token = envString("VENTAS_API_TOKEN", c.Token)
	c.Timeout = envDuration("VENTAS_API_TIMEOUT", c.Timeout)
	c.ItemsPerPage = envInt("VENTAS_ITEMS_PER_PAGE", c.ItemsPerPage)
	c.RefreshSchedule = envString("VENTAS_REFRESH_SCHEDULE", c.RefreshSchedule)
	c.RateLimit.RPS = envFloat("VENTAS_RATE_LIMIT_RPS", c.RateLimit.RPS)
	c.RateLimit.Burst = envInt("VENTAS_RATE_LIMIT_BURST", c.RateLimit.Burst)
	c.Retry.MaxAttempts = envInt("VENTAS_RETRY_MAX_ATTEMPTS", c.Retry.MaxAttempts)
	c.Cache.RedisAddr = envString("VENTAS_REDIS_ADDR", c.Cache.RedisAddr)
	c.Cache.RedisPassword = envString("VENTAS_REDIS_PASSWORD", c.Cache.RedisPassword)
	c.Cache.RedisDB = envInt("VENTAS_REDIS_DB", c.Cache.RedisDB)
	c.Cache.TTL = envDuration("VENTAS_CACHE_TTL", c.Cache.TTL)
}

// maxItemsPerPage matches the backend's page size cap.
const maxItemsPerPage = 100

// Validate checks configuration correctness.
func (c *APIConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("VENTAS_API_URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("VENTAS_API_URL must use http or https")
	}
	if u.Host == "" {
		return errors.New("VENTAS_API_URL must have a host")
	}

	if c.Timeout <= 0 {
		return errors.New("VENTAS_API_TIMEOUT must be positive")
	}

	if c.ItemsPerPage < 1 || c.ItemsPerPage > maxItemsPerPage {
		return fmt.Errorf("VENTAS_ITEMS_PER_PAGE must be between 1 and %d", maxItemsPerPage)
	}

	if c.RefreshSchedule != "" {
		if err := ValidateCronSchedule(c.RefreshSchedule); err != nil {
			return fmt.Errorf("VENTAS_REFRESH_SCHEDULE: %w", err)
		}
	}

	if c.RateLimit.RPS <= 0 {
		return errors.New("VENTAS_RATE_LIMIT_RPS must be positive")
	}

	if c.RateLimit.Burst < 1 {
		return errors.New("VENTAS_RATE_LIMIT_BURST must be at least 1")
	}

	if c.Retry.MaxAttempts < 1 {
		return errors.New("VENTAS_RETRY_MAX_ATTEMPTS must be at least 1")
	}

	if c.Cache.Enabled() && c.Cache.TTL <= 0 {
		return errors.New("VENTAS_CACHE_TTL must be positive when caching is enabled")
	}

	return nil
}

// ValidateCronSchedule accepts standard five-field cron expressions and the
// "@every <duration>" and "@hourly" style descriptors.
func ValidateCronSchedule(schedule string) error {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}
	return nil
}
