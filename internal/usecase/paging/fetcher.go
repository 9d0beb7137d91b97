// Package paging binds a page-aware fetch function to a view. A Fetcher owns
// the current page of one table, keeps the last page on screen while the next
// one loads, and applies only the response for the most recent request.
package paging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"ventas-admin/internal/common/pagination"
	"ventas-admin/internal/observability/metrics"
)

// FetchFunc loads one page. Its error is reported to the view unchanged.
type FetchFunc[T any] func(ctx context.Context, params pagination.Params) (pagination.Page[T], error)

// State is what a view renders.
type State[T any] struct {
	Data        []T                 // Rows of the last successful page
	Meta        pagination.Metadata // Metadata of the last successful page
	IsLoading   bool                // A request is in flight
	IsError     bool                // The most recent request failed
	Err         error               // Failure of the most recent request
	CurrentPage int                 // Page the view asked for
	TotalPages  int                 // 0 until a response arrives
}

// Options configures a Fetcher.
type Options struct {
	// Name labels logs and metrics, usually the backend collection.
	Name string

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Fetcher is the paginated resource fetcher for one view. It is safe for
// concurrent use; every state transition happens under its mutex.
type Fetcher[T any] struct {
	fetch        FetchFunc[T]
	itemsPerPage int
	name         string
	logger       *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	seq         uint64
	currentPage int
	data        []T
	meta        pagination.Metadata
	loading     bool
	err         error
	closed      bool
	subscribers map[chan State[T]]struct{}
}

// New creates a Fetcher on page 1 and immediately requests that page.
// Fetches run under ctx until Close is called.
func New[T any](ctx context.Context, fetch FetchFunc[T], itemsPerPage int, opts Options) *Fetcher[T] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	name := opts.Name
	if name == "" {
		name = "resource"
	}

	fctx, cancel := context.WithCancel(ctx)
	f := &Fetcher[T]{
		fetch:        fetch,
		itemsPerPage: itemsPerPage,
		name:         name,
		logger:       logger.With(slog.String("resource", name)),
		ctx:          fctx,
		cancel:       cancel,
		currentPage:  1,
		subscribers:  make(map[chan State[T]]struct{}),
	}

	f.mu.Lock()
	f.startLocked()
	f.mu.Unlock()
	return f
}

// SetCurrentPage switches the view to page n. A change starts exactly one
// fetch; setting the page already shown does nothing. n is not validated.
func (f *Fetcher[T]) SetCurrentPage(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || n == f.currentPage {
		return
	}
	f.currentPage = n
	f.startLocked()
}

// Refetch requests the current page again.
func (f *Fetcher[T]) Refetch() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.startLocked()
}

// Snapshot returns the current state. Data is shared with the Fetcher and
// must not be modified.
func (f *Fetcher[T]) Snapshot() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stateLocked()
}

// Subscribe returns a channel that always holds the latest state. A state the
// subscriber has not read yet is replaced by a newer one. Call cancel to stop
// receiving; the channel is then closed.
func (f *Fetcher[T]) Subscribe() (<-chan State[T], func()) {
	ch := make(chan State[T], 1)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	f.subscribers[ch] = struct{}{}
	ch <- f.stateLocked()
	f.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			if _, ok := f.subscribers[ch]; ok {
				delete(f.subscribers, ch)
				close(ch)
			}
		})
	}
}

// Close stops the Fetcher. In-flight results are dropped, later page changes
// are ignored and every subscription channel is closed.
func (f *Fetcher[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	f.cancel()
	for ch := range f.subscribers {
		delete(f.subscribers, ch)
		close(ch)
	}
}

// startLocked begins a loading phase for the current page. The previous
// page's data stays in place until a newer result replaces it.
func (f *Fetcher[T]) startLocked() {
	f.seq++
	seq := f.seq
	params := pagination.Params{Page: f.currentPage, Limit: f.itemsPerPage}

	f.loading = true
	f.publishLocked()

	pagination.RecordPageRequest(f.name, params.Page)
	go f.run(seq, params)
}

// ErrFetchPanicked wraps the value of a fetch function that panicked.
var ErrFetchPanicked = errors.New("fetch panicked")

// callFetch runs the fetch function, turning a panic into an error so the
// page shows as failed instead of taking the process down.
func (f *Fetcher[T]) callFetch(params pagination.Params) (page pagination.Page[T], err error) {
	defer func() {
		if v := recover(); v != nil {
			f.logger.Error("fetch function panicked",
				slog.Int("page", params.Page),
				slog.Any("panic", v),
				slog.String("stack", string(debug.Stack())))
			err = fmt.Errorf("%w: %v", ErrFetchPanicked, v)
		}
	}()
	return f.fetch(f.ctx, params)
}

func (f *Fetcher[T]) run(seq uint64, params pagination.Params) {
	start := time.Now()
	page, err := f.callFetch(params)
	duration := time.Since(start)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	if seq != f.seq {
		metrics.RecordPageFetch(f.name, metrics.PageOutcomeSuperseded, duration)
		f.logger.Debug("discarding superseded page",
			slog.Int("page", params.Page),
			slog.Uint64("seq", seq),
			slog.Uint64("latest_seq", f.seq))
		return
	}

	f.loading = false
	if err != nil {
		f.err = err
		metrics.RecordPageFetch(f.name, metrics.PageOutcomeError, duration)
		pagination.LogPageError(f.logger, f.name, params, err)
		f.publishLocked()
		return
	}

	meta := pagination.BuildMetadata(page.Source, params.Limit)
	f.data = page.Data
	f.meta = meta
	f.err = nil

	metrics.RecordPageFetch(f.name, metrics.PageOutcomeSuccess, duration)
	pagination.RecordShape(f.name, page.Source.Shape(params.Limit))
	pagination.LogPage(f.logger, f.name, params, meta, len(page.Data), duration)
	f.publishLocked()
}

func (f *Fetcher[T]) stateLocked() State[T] {
	return State[T]{
		Data:        f.data,
		Meta:        f.meta,
		IsLoading:   f.loading,
		IsError:     f.err != nil,
		Err:         f.err,
		CurrentPage: f.currentPage,
		TotalPages:  f.meta.TotalPages,
	}
}

// publishLocked hands the current state to every subscriber, replacing any
// state still sitting unread in its channel.
func (f *Fetcher[T]) publishLocked() {
	if len(f.subscribers) == 0 {
		return
	}
	s := f.stateLocked()
	for ch := range f.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}
