package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/sony/gobreaker"

	"ventas-admin/internal/resilience/circuitbreaker"
)

// Health states.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`    // Worst status among the checks
	Timestamp string                 `json:"timestamp"` // RFC 3339, UTC
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the outcome of one check.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check inspects one dependency.
type Check func(ctx context.Context) CheckStatus

// HealthHandler runs its checks on every request. It answers 200 unless a
// check is unhealthy, in which case it answers 503. Degraded checks are
// reported but keep the 200.
type HealthHandler struct {
	Version string
	Checks  map[string]Check
	Logger  *slog.Logger
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.Checks))
	for name := range h.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := StatusHealthy
	checks := make(map[string]CheckStatus, len(names))
	for _, name := range names {
		c := h.Checks[name](ctx)
		checks[name] = c
		switch {
		case c.Status == StatusUnhealthy:
			status = StatusUnhealthy
		case c.Status == StatusDegraded && status == StatusHealthy:
			status = StatusDegraded
		}
	}

	code := http.StatusOK
	if status == StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
	if err != nil && h.Logger != nil {
		h.Logger.Warn("health: failed to encode response", slog.Any("error", err))
	}
}

// BreakerCheck reports an open breaker as unhealthy and a half-open one as
// degraded.
func BreakerCheck(cb *circuitbreaker.CircuitBreaker) Check {
	return func(context.Context) CheckStatus {
		switch state := cb.State(); state {
		case gobreaker.StateOpen:
			return CheckStatus{Status: StatusUnhealthy, Message: "circuit " + state.String()}
		case gobreaker.StateHalfOpen:
			return CheckStatus{Status: StatusDegraded, Message: "circuit " + state.String()}
		default:
			return CheckStatus{Status: StatusHealthy}
		}
	}
}

// PingCheck is unhealthy while ping fails.
func PingCheck(ping func(ctx context.Context) error) Check {
	return func(ctx context.Context) CheckStatus {
		if err := ping(ctx); err != nil {
			return CheckStatus{Status: StatusUnhealthy, Message: err.Error()}
		}
		return CheckStatus{Status: StatusHealthy}
	}
}
