// Package retry retries idempotent backend calls with exponential backoff and
// jitter. Only transient failures (timeouts, refused connections, 5xx, 408,
// 429) are retried, and a Retry-After sent by the backend is honored up to
// the configured maximum delay.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"net"
	"net/http"
	"syscall"
	"time"

	"ventas-admin/internal/observability/logging"
)

// Config controls the retry loop.
type Config struct {
	// MaxAttempts counts the first call; 1 disables retrying.
	MaxAttempts int

	// InitialDelay is the wait before the second attempt. Each later wait
	// grows by Multiplier, up to MaxDelay.
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64

	// JitterFraction adds up to this fraction of the delay at random (0.0 to 1.0).
	JitterFraction float64
}

// BackendAPIConfig is tuned for interactive table views: a user is waiting,
// so delays stay short.
func BackendAPIConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   200 * time.Millisecond,
		MaxDelay:       2 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

// ExportConfig is used by bulk exports, which can afford to wait longer.
func ExportConfig() Config {
	return Config{
		MaxAttempts:    5,
		InitialDelay:   500 * time.Millisecond,
		MaxDelay:       10 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

// Delay is the wait after the given failed attempt (1-based), before jitter.
func (c Config) Delay(attempt int) time.Duration {
	d := float64(c.InitialDelay) * math.Pow(c.Multiplier, float64(attempt-1))
	if c.MaxDelay > 0 && d > float64(c.MaxDelay) {
		return c.MaxDelay
	}
	return time.Duration(d)
}

// wait picks the pause after attempt failed with err.
func (c Config) wait(attempt int, err error) time.Duration {
	d := jitter(c.Delay(attempt), c.JitterFraction)
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.RetryAfter > d {
		d = httpErr.RetryAfter
	}
	if c.MaxDelay > 0 && d > c.MaxDelay {
		d = c.MaxDelay
	}
	return d
}

// WithBackoff calls fn until it succeeds, returns a non-retryable error, the
// attempts run out or ctx is done. Retries are logged with the logger in ctx.
func WithBackoff(ctx context.Context, cfg Config, fn func() error) error {
	logger := logging.WithRequestID(ctx, logging.FromContext(ctx))

	var err error
	attempt := 1
	for ; ; attempt++ {
		if err = fn(); err == nil {
			if attempt > 1 {
				logger.Info("backend call succeeded after retry", slog.Int("attempt", attempt))
			}
			return nil
		}
		if !IsRetryable(err) || attempt >= cfg.MaxAttempts {
			break
		}

		d := cfg.wait(attempt, err)
		logger.Warn("backend call failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", cfg.MaxAttempts),
			slog.Duration("delay", d),
			slog.Any("error", err))

		timer := time.NewTimer(d)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry canceled after %d attempts: %w", attempt, ctx.Err())
		}
	}

	if attempt > 1 {
		return fmt.Errorf("giving up after %d attempts: %w", attempt, err)
	}
	return err
}

// IsRetryable reports whether err is a transient failure.
func IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, syscall.ECONNREFUSED), errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ETIMEDOUT), errors.Is(err, syscall.ENETUNREACH):
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return transientStatus(httpErr.StatusCode)
	}
	return false
}

func transientStatus(code int) bool {
	return code >= 500 || code == http.StatusTooManyRequests || code == http.StatusRequestTimeout
}

// HTTPError is a non-2xx backend response. Err, when set, is a sentinel
// describing the status class (for example entity.ErrNotFound).
type HTTPError struct {
	StatusCode int
	Message    string
	Err        error

	// RetryAfter is the backend's Retry-After hint, zero when absent.
	RetryAfter time.Duration
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func jitter(d time.Duration, fraction float64) time.Duration {
	if fraction <= 0 || d <= 0 {
		return d
	}
	fraction = math.Min(fraction, 1)
	// #nosec G404 -- backoff jitter does not need cryptographic randomness.
	return d + time.Duration(rand.Float64()*float64(d)*fraction)
}
