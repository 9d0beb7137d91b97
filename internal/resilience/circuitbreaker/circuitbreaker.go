// Package circuitbreaker guards calls to the sales backend with
// github.com/sony/gobreaker so a failing API is not hammered by every table
// refresh.
package circuitbreaker

import (
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"ventas-admin/internal/observability/metrics"
	"ventas-admin/internal/resilience/retry"
)

// Config describes when a breaker trips and how it recovers.
type Config struct {
	Name string

	// HalfOpenProbes is how many calls may pass while half-open.
	HalfOpenProbes uint32

	// Window clears the closed-state counters every Window. Zero never clears.
	Window time.Duration

	// Cooldown is the time spent open before probing again.
	Cooldown time.Duration

	// TripRatio and MinCalls: the breaker opens once at least MinCalls calls
	// were seen in the window and the failure ratio reached TripRatio.
	TripRatio float64
	MinCalls  uint32

	// Ignore reports errors that must not count as failures. Nil counts
	// every error.
	Ignore func(err error) bool

	Logger *slog.Logger
}

// DefaultConfig trips at 60% failures over at least five calls.
func DefaultConfig(name string) Config {
	return Config{
		Name:           name,
		HalfOpenProbes: 3,
		Window:         30 * time.Second,
		Cooldown:       60 * time.Second,
		TripRatio:      0.6,
		MinCalls:       5,
	}
}

// BackendAPIConfig is the profile of the admin API client: it recovers
// faster than the default, and 4xx responses do not count.
func BackendAPIConfig() Config {
	cfg := DefaultConfig("ventas-api")
	cfg.Cooldown = 15 * time.Second
	cfg.Ignore = IsClientError
	return cfg
}

// IsClientError reports whether err is a 4xx response.
func IsClientError(err error) bool {
	var httpErr *retry.HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode >= 400 && httpErr.StatusCode < 500
}

// CircuitBreaker is safe for concurrent use.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
	name    string
}

// New creates a closed breaker.
func New(cfg Config) *CircuitBreaker {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ignore := cfg.Ignore

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.HalfOpenProbes,
		Interval:    cfg.Window,
		Timeout:     cfg.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinCalls {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.TripRatio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || (ignore != nil && ignore(err))
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			metrics.RecordBreakerState(name, int(to))
		},
	}
	metrics.RecordBreakerState(cfg.Name, int(gobreaker.StateClosed))

	return &CircuitBreaker{
		breaker: gobreaker.NewCircuitBreaker(settings),
		name:    cfg.Name,
	}
}

// Run calls fn unless the breaker is open, in which case it fails with
// gobreaker.ErrOpenState. While half-open, calls beyond the probe budget
// fail with gobreaker.ErrTooManyRequests.
func (cb *CircuitBreaker) Run(fn func() error) error {
	_, err := cb.breaker.Execute(func() (any, error) {
		return nil, fn()
	})
	return err
}

// State is the current breaker state.
func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.breaker.State()
}

func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// IsUnavailable reports whether err came from the breaker itself rather
// than from the guarded call.
func IsUnavailable(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
