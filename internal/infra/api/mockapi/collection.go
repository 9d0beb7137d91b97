package mockapi

import (
	"encoding/json"
	"sort"

	"ventas-admin/internal/common/pagination"
)

// Envelope is the pagination shape a collection answers list requests with.
type Envelope int

// Each backend service paginates differently.
const (
	// {"data": [...], "totalPages": 3, "page": 1}
	EnvelopeTotalPages Envelope = iota
	// {"data": [...], "total_pages": 3, "page": 1, "limit": 10}
	EnvelopeTotalPagesSnake
	// {"data": [...], "total": 25, "page": 1, "limit": 10}
	EnvelopeTotal
	// {"data": [...], "pagination": {"total": 25, "page": 1, "limit": 10, "totalPages": 3}}
	EnvelopeNested
	// [...] with no paging information at all
	EnvelopeBare
)

// record is one stored item as the backend sees it: a JSON object with an
// integer "id".
type record map[string]any

func (r record) id() int64 {
	switch v := r["id"].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	}
	return 0
}

type collection struct {
	envelope Envelope
	nextID   int64
	items    []record
}

func newCollection(envelope Envelope) *collection {
	return &collection{envelope: envelope, nextID: 1}
}

func (c *collection) insert(r record) record {
	r["id"] = c.nextID
	c.nextID++
	c.items = append(c.items, r)
	return r
}

func (c *collection) find(id int64) (int, bool) {
	i := sort.Search(len(c.items), func(i int) bool { return c.items[i].id() >= id })
	if i < len(c.items) && c.items[i].id() == id {
		return i, true
	}
	return 0, false
}

func (c *collection) replace(id int64, r record) bool {
	i, ok := c.find(id)
	if !ok {
		return false
	}
	r["id"] = id
	c.items[i] = r
	return true
}

func (c *collection) remove(id int64) bool {
	i, ok := c.find(id)
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// page returns a copy of the rows of one page.
func (c *collection) page(params pagination.Params) []record {
	offset := params.Offset()
	if offset >= len(c.items) {
		return []record{}
	}
	end := min(offset+params.Limit, len(c.items))
	out := make([]record, end-offset)
	copy(out, c.items[offset:end])
	return out
}

// render builds the list response body in the collection's envelope.
func (c *collection) render(params pagination.Params) any {
	data := c.page(params)
	total := len(c.items)
	totalPages := (total + params.Limit - 1) / params.Limit

	switch c.envelope {
	case EnvelopeTotalPages:
		return map[string]any{"data": data, "totalPages": totalPages, "page": params.Page}
	case EnvelopeTotalPagesSnake:
		return map[string]any{"data": data, "total_pages": totalPages, "page": params.Page, "limit": params.Limit}
	case EnvelopeTotal:
		return map[string]any{"data": data, "total": total, "page": params.Page, "limit": params.Limit}
	case EnvelopeNested:
		return map[string]any{
			"data": data,
			"pagination": map[string]any{
				"total":      total,
				"page":       params.Page,
				"limit":      params.Limit,
				"totalPages": totalPages,
			},
		}
	default:
		return data
	}
}
