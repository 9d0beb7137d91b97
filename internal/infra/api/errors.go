package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ventas-admin/internal/domain/entity"
	"ventas-admin/internal/resilience/retry"
)

var (
	// ErrUnauthorized is wrapped by 401 and 403 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTokenExpired is returned before sending when the configured bearer
	// token is a JWT whose exp claim has passed.
	ErrTokenExpired = errors.New("api token expired")
)

// maxErrorMessage bounds how much of an error body ends up in an error string.
const maxErrorMessage = 200

// newHTTPError turns a non-2xx response into a *retry.HTTPError. Status
// classes the caller can act on wrap a sentinel.
func newHTTPError(status int, header http.Header, body []byte) *retry.HTTPError {
	httpErr := &retry.HTTPError{
		StatusCode: status,
		Message:    errorMessage(status, body),
		RetryAfter: retryAfter(header.Get("Retry-After"), time.Now()),
	}
	switch status {
	case http.StatusNotFound:
		httpErr.Err = entity.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		httpErr.Err = ErrUnauthorized
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		httpErr.Err = entity.ErrInvalidInput
	}
	return httpErr
}

// errorMessage prefers the backend's {"message": ...} or {"error": ...}
// body, then the raw body, then the status text.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return http.StatusText(status)
	}
	if len(msg) > maxErrorMessage {
		msg = msg[:maxErrorMessage] + "..."
	}
	return msg
}

// retryAfter reads a Retry-After value in seconds or as an HTTP date.
func retryAfter(value string, now time.Time) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}
