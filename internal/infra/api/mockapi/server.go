// Package mockapi is an in-memory sales administration backend. Each
// collection paginates with a different envelope, the way the real services
// do, which makes it the fixture for client tests and for local development
// through `ventas mock-server`.
package mockapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"ventas-admin/internal/common/pagination"
	"ventas-admin/internal/handler/http/pathutil"
	"ventas-admin/internal/handler/http/requestid"
	"ventas-admin/internal/handler/http/respond"
)

// Options configures a Server.
type Options struct {
	// Latency delays every response.
	Latency time.Duration

	// Secret, when set, requires an HS256 bearer token signed with it.
	Secret []byte

	// Seed fills the collections with sample data.
	Seed bool

	// Pagination bounds page and limit query parameters.
	Pagination pagination.Config

	Logger *slog.Logger
}

// Server serves every collection. It is safe for concurrent use.
type Server struct {
	opts    Options
	logger  *slog.Logger
	handler http.Handler

	mu          sync.Mutex
	collections map[string]*collection
	failures    int
	failStatus  int
	requests    int
}

// Collections lists the served collections and their envelopes.
var Collections = map[string]Envelope{
	"vendedores":   EnvelopeTotalPages,
	"productos":    EnvelopeTotalPagesSnake,
	"proveedores":  EnvelopeTotal,
	"planes-venta": EnvelopeNested,
	"logistica":    EnvelopeBare,
}

// New creates a Server.
func New(opts Options) *Server {
	if opts.Pagination == (pagination.Config{}) {
		opts.Pagination = pagination.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		opts:        opts,
		logger:      logger,
		collections: make(map[string]*collection, len(Collections)),
	}
	for name, env := range Collections {
		s.collections[name] = newCollection(env)
	}
	if opts.Seed {
		seed(s.collections)
	}

	mux := http.NewServeMux()
	for name := range Collections {
		s.register(mux, name)
	}

	var h http.Handler = mux
	if len(opts.Secret) > 0 {
		h = requireToken(opts.Secret, h)
	}
	h = s.inject(h)
	h = s.accessLog(h)
	s.handler = requestid.Middleware(h)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// FailNext makes the next n requests fail with status.
func (s *Server) FailNext(n, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = n
	s.failStatus = status
}

// Requests returns how many requests reached the server.
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// Len returns the number of items in a collection.
func (s *Server) Len(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.collections[name]; ok {
		return len(c.items)
	}
	return 0
}

// Insert stores v in a collection and returns its new ID.
func (s *Server) Insert(name string, v any) (int64, error) {
	r, err := toRecord(v)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[name]
	if !ok {
		return 0, fmt.Errorf("unknown collection %q", name)
	}
	return c.insert(r).id(), nil
}

// SetEnvelope changes how a collection paginates.
func (s *Server) SetEnvelope(name string, env Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.collections[name]; ok {
		c.envelope = env
	}
}

func (s *Server) register(mux *http.ServeMux, name string) {
	base := "/" + name
	mux.HandleFunc("GET "+base, func(w http.ResponseWriter, r *http.Request) { s.list(w, r, name) })
	mux.HandleFunc("POST "+base, func(w http.ResponseWriter, r *http.Request) { s.create(w, r, name) })
	mux.HandleFunc("GET "+base+"/", func(w http.ResponseWriter, r *http.Request) { s.get(w, r, name) })
	mux.HandleFunc("PUT "+base+"/", func(w http.ResponseWriter, r *http.Request) { s.update(w, r, name) })
	mux.HandleFunc("DELETE "+base+"/", func(w http.ResponseWriter, r *http.Request) { s.remove(w, r, name) })
}

func (s *Server) list(w http.ResponseWriter, r *http.Request, name string) {
	params, err := pagination.ParseQuery(r.URL.Query(), s.opts.Pagination)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	body := s.collections[name].render(params)
	s.mu.Unlock()

	respond.JSON(w, http.StatusOK, body)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request, name string) {
	id, err := pathutil.RecordID(r.URL.Path, name)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	c := s.collections[name]
	i, ok := c.find(id)
	var item record
	if ok {
		item = c.items[i]
	}
	s.mu.Unlock()

	if !ok {
		respond.Error(w, http.StatusNotFound, fmt.Sprintf("%s %d not found", name, id))
		return
	}
	respond.JSON(w, http.StatusOK, item)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request, name string) {
	item, err := decodeRecord(r.Body)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	item = s.collections[name].insert(item)
	s.mu.Unlock()

	respond.JSON(w, http.StatusCreated, map[string]any{"data": item})
}

func (s *Server) update(w http.ResponseWriter, r *http.Request, name string) {
	id, err := pathutil.RecordID(r.URL.Path, name)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := decodeRecord(r.Body)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	ok := s.collections[name].replace(id, item)
	s.mu.Unlock()

	if !ok {
		respond.Error(w, http.StatusNotFound, fmt.Sprintf("%s %d not found", name, id))
		return
	}
	respond.JSON(w, http.StatusOK, item)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request, name string) {
	id, err := pathutil.RecordID(r.URL.Path, name)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	ok := s.collections[name].remove(id)
	s.mu.Unlock()

	if !ok {
		respond.Error(w, http.StatusNotFound, fmt.Sprintf("%s %d not found", name, id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// maxBodyBytes bounds a request body.
const maxBodyBytes = 1 << 20

var errNotObject = errors.New("request body must be a JSON object")

func decodeRecord(body io.Reader) (record, error) {
	var r record
	if err := json.NewDecoder(io.LimitReader(body, maxBodyBytes)).Decode(&r); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	if r == nil {
		return nil, errNotObject
	}
	return r, nil
}

// toRecord converts a Go value into its stored JSON object form.
func toRecord(v any) (record, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, errNotObject
	}
	if r == nil {
		return nil, errNotObject
	}
	return r, nil
}

// collectionOf returns the collection name of a request path, or "".
func collectionOf(path string) string {
	name, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if _, ok := Collections[name]; ok {
		return name
	}
	return ""
}
