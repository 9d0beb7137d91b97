package mockapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ventas-admin/internal/handler/http/pathutil"
	"ventas-admin/internal/handler/http/respond"
	"ventas-admin/internal/handler/http/responsewriter"
	"ventas-admin/internal/observability/logging"
)

// accessLog logs one line per request.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := responsewriter.Record(w)
		next.ServeHTTP(rec, r)

		logging.WithRequestID(r.Context(), s.logger).Info("request",
			slog.String("method", r.Method),
			slog.String("path", pathutil.NormalizePath(r.URL.Path)),
			slog.String("collection", collectionOf(r.URL.Path)),
			slog.String("query", r.URL.RawQuery),
			slog.Int("status", rec.Status()),
			slog.Int("bytes", rec.Size()),
			slog.Duration("duration", rec.Elapsed()))
	})
}

// inject counts requests, applies the configured latency and serves
// failures queued with FailNext.
func (s *Server) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests++
		fail := s.failures > 0
		status := s.failStatus
		if fail {
			s.failures--
		}
		s.mu.Unlock()

		if s.opts.Latency > 0 {
			timer := time.NewTimer(s.opts.Latency)
			select {
			case <-timer.C:
			case <-r.Context().Done():
				timer.Stop()
				return
			}
		}

		if fail {
			respond.Error(w, status, "injected failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireToken rejects requests without a valid HS256 bearer token.
func requireToken(secret []byte, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := validateJWT(r.Header.Get("Authorization"), secret); err != nil {
			logging.WithRequestID(r.Context(), slog.Default()).Debug("rejected token",
				slog.String("reason", err.Error()))
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func validateJWT(authz string, secret []byte) error {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authz, prefix)
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return errors.New("invalid token")
	}
	return nil
}
