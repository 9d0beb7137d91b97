// Package api is the HTTP client of the sales administration backend.
//
// Every call carries an X-Request-ID and, when configured, a bearer token.
// Requests pass a client-side rate limiter and a circuit breaker; GET, PUT
// and DELETE are retried with exponential backoff, POST is not. Non-2xx
// responses come back as *retry.HTTPError wrapping entity.ErrNotFound,
// ErrUnauthorized or entity.ErrInvalidInput where applicable.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ventas-admin/internal/config"
	"ventas-admin/internal/handler/http/requestid"
	"ventas-admin/internal/observability/logging"
	"ventas-admin/internal/observability/metrics"
	"ventas-admin/internal/observability/tracing"
	"ventas-admin/internal/resilience/circuitbreaker"
	"ventas-admin/internal/resilience/retry"
)

// maxResponseBytes bounds a response body.
const maxResponseBytes = 10 << 20

// Client talks to one backend. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	token      string
	limiter    *RateLimiter
	breaker    *circuitbreaker.CircuitBreaker
	retry      retry.Config
	cache      PageCache
	cacheTTL   time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client. Its timeout is kept.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger for retries and cache failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithCache enables read-through caching of list pages.
func WithCache(cache PageCache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithRetry replaces the retry policy derived from the configuration.
func WithRetry(cfg retry.Config) Option {
	return func(c *Client) { c.retry = cfg }
}

// WithCircuitBreaker replaces the default breaker.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *Client) { c.breaker = cb }
}

// WithClock sets the time source used for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a Client from cfg.
func New(cfg config.APIConfig, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", cfg.BaseURL)
	}

	retryCfg := retry.BackendAPIConfig()
	if cfg.Retry.MaxAttempts > 0 {
		retryCfg.MaxAttempts = cfg.Retry.MaxAttempts
	}

	c := &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		token:      cfg.Token,
		limiter:    NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		retry:      retryCfg,
		cacheTTL:   cfg.Cache.TTL,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.breaker == nil {
		cbCfg := circuitbreaker.BackendAPIConfig()
		cbCfg.Logger = c.logger
		c.breaker = circuitbreaker.New(cbCfg)
	}
	return c, nil
}

// Breaker returns the circuit breaker guarding the backend, for health checks.
func (c *Client) Breaker() *circuitbreaker.CircuitBreaker {
	return c.breaker
}

type retryKey struct{}

// ContextWithRetry overrides the retry policy for calls made with the
// returned context. Bulk jobs use it to wait longer than interactive views.
func ContextWithRetry(ctx context.Context, cfg retry.Config) context.Context {
	return context.WithValue(ctx, retryKey{}, cfg)
}

func (c *Client) retryPolicy(ctx context.Context) retry.Config {
	if cfg, ok := ctx.Value(retryKey{}).(retry.Config); ok {
		return cfg
	}
	return c.retry
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
}

// resource is the metrics label of a path: its first segment.
func (r request) resource() string {
	name, _, _ := strings.Cut(strings.Trim(r.path, "/"), "/")
	return name
}

func (r request) idempotent() bool {
	return r.method != http.MethodPost
}

// do sends req and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	ctx, reqID := requestid.Ensure(ctx)

	if err := checkToken(c.token, c.now()); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartClientSpan(ctx, req.method+" "+req.resource(),
		attribute.String("http.request.method", req.method),
		attribute.String("url.path", req.path),
		attribute.String("request_id", reqID))
	defer span.End()

	var payload []byte
	if req.body != nil {
		var err error
		payload, err = json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
	}

	var body []byte
	attempt := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		return c.breaker.Run(func() error {
			b, err := c.send(ctx, req, payload, reqID)
			if err != nil {
				return err
			}
			body = b
			return nil
		})
	}

	var err error
	if req.idempotent() {
		err = retry.WithBackoff(logging.WithLogger(ctx, c.logger), c.retryPolicy(ctx), attempt)
	} else {
		err = attempt()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return body, nil
}

func (c *Client) send(ctx context.Context, req request, payload []byte, reqID string) ([]byte, error) {
	u := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestid.Header, reqID)
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.RecordAPIRequest(req.method, req.resource(), 0, time.Since(start))
		return nil, fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	metrics.RecordAPIRequest(req.method, req.resource(), resp.StatusCode, time.Since(start))
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newHTTPError(resp.StatusCode, resp.Header, body)
	}
	return body, nil
}

// decodeItem accepts a bare object or one wrapped as {"data": {...}}.
func decodeItem[T any](body []byte) (T, error) {
	var item T

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if data := bytes.TrimSpace(envelope.Data); len(data) > 0 && data[0] == '{' {
			body = data
		}
	}

	if err := json.Unmarshal(body, &item); err != nil {
		return item, fmt.Errorf("decode response: %w", err)
	}
	return item, nil
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var httpErr *retry.HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}
