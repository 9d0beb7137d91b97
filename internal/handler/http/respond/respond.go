// Package respond writes JSON responses for the mock backend.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

// JSON writes v with status code. v is encoded before anything is written,
// so a value that cannot be encoded turns into a 500 instead of a truncated
// body. A nil v writes the status alone.
func JSON(w http.ResponseWriter, code int, v any) {
	if v == nil {
		w.WriteHeader(code)
		return
	}

	body, err := json.Marshal(v)
	if err != nil {
		slog.Default().Error("respond: encode failed",
			slog.Int("status_code", code),
			slog.Any("error", err))
		code = http.StatusInternalServerError
		body = []byte(`{"error":"internal error"}`)
	}
	body = append(body, '\n')

	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

// Error writes {"error": msg}.
func Error(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]string{"error": msg})
}

// Message writes {"message": msg}, the shape some backend endpoints use for
// errors.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]string{"message": msg})
}
