// Package http holds the HTTP plumbing shared by the local servers: the mock
// backend and the metrics endpoint of the browse view.
package http

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"ventas-admin/internal/handler/http/requestid"
	"ventas-admin/internal/handler/http/respond"
)

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// Recover answers 500 when a handler panics and logs the stack. The
// http.ErrAbortHandler sentinel is re-raised so net/http can drop the
// connection as it intends.
func Recover(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logger.LogAttrs(r.Context(), slog.LevelError, "handler panic",
					slog.String("request_id", requestid.FromContext(r.Context())),
					slog.String("route", r.Method+" "+r.URL.Path),
					slog.Any("value", v),
					slog.String("stack", string(debug.Stack())))
				respond.Error(w, http.StatusInternalServerError, "internal error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Chain wraps h so that middlewares run in the order given.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := range middlewares {
		h = middlewares[len(middlewares)-1-i](h)
	}
	return h
}
