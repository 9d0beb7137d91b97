// Package responsewriter records what a handler wrote, for access logs and
// request metrics.
package responsewriter

import (
	"net/http"
	"time"
)

// Recorder is an http.ResponseWriter that remembers the status, the body
// size and when the request started.
type Recorder struct {
	http.ResponseWriter
	status      int
	size        int
	wroteHeader bool
	start       time.Time
}

// Record starts recording writes to w. The status defaults to 200.
func Record(w http.ResponseWriter) *Recorder {
	return &Recorder{
		ResponseWriter: w,
		status:         http.StatusOK,
		start:          time.Now(),
	}
}

// WriteHeader keeps the first status only, as net/http does.
func (r *Recorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *Recorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// Status is the response status code.
func (r *Recorder) Status() int { return r.status }

// Size is the number of body bytes written.
func (r *Recorder) Size() int { return r.size }

// Elapsed is the time since Record was called.
func (r *Recorder) Elapsed() time.Duration { return time.Since(r.start) }

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *Recorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }
