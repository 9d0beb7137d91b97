package pagination

import (
	"bytes"
	"encoding/json"
	"math"
)

// Source is the paging fragment of a backend response. Every field is
// optional because each endpoint reports a different subset.
type Source struct {
	TotalPages      *int   // "totalPages"
	TotalPagesSnake *int   // "total_pages"
	Total           *int64 // "total"
	Page            *int   // "page"
	Limit           *int   // "limit"
}

// Shape names the field a total page count is taken from.
type Shape string

const (
	ShapeCamel   Shape = "totalPages"
	ShapeSnake   Shape = "total_pages"
	ShapeDerived Shape = "total"
	ShapeUnknown Shape = "unknown"
)

// nestedSourceKeys are the envelopes searched, in order, when a response
// carries no paging fields at its top level.
var nestedSourceKeys = []string{"pagination", "meta"}

// Shape reports which field ResolveTotalPages will use, in priority order:
// camelCase count, snake_case count, total divided by requestedLimit.
func (s Source) Shape(requestedLimit int) Shape {
	switch {
	case s.TotalPages != nil:
		return ShapeCamel
	case s.TotalPagesSnake != nil:
		return ShapeSnake
	case s.Total != nil && requestedLimit > 0:
		return ShapeDerived
	default:
		return ShapeUnknown
	}
}

// IsEmpty reports whether no paging field was present.
func (s Source) IsEmpty() bool {
	return s.TotalPages == nil && s.TotalPagesSnake == nil && s.Total == nil &&
		s.Page == nil && s.Limit == nil
}

// UnmarshalJSON decodes paging fields leniently. A field holding anything
// other than a JSON number counts as absent, and a body that is not an object
// yields an empty Source. It never returns an error.
func (s *Source) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		*s = Source{}
		return nil
	}

	*s = sourceFromFields(fields)
	if !s.IsEmpty() {
		return nil
	}

	for _, key := range nestedSourceKeys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(raw, &nested); err != nil {
			continue
		}
		if n := sourceFromFields(nested); !n.IsEmpty() {
			*s = n
			return nil
		}
	}
	return nil
}

// MarshalJSON writes back only the fields that were present.
func (s Source) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 5)
	if s.TotalPages != nil {
		out["totalPages"] = *s.TotalPages
	}
	if s.TotalPagesSnake != nil {
		out["total_pages"] = *s.TotalPagesSnake
	}
	if s.Total != nil {
		out["total"] = *s.Total
	}
	if s.Page != nil {
		out["page"] = *s.Page
	}
	if s.Limit != nil {
		out["limit"] = *s.Limit
	}
	return json.Marshal(out)
}

func sourceFromFields(fields map[string]json.RawMessage) Source {
	var s Source
	if v, ok := number(fields["totalPages"]); ok {
		n := int(v)
		s.TotalPages = &n
	}
	if v, ok := number(fields["total_pages"]); ok {
		n := int(v)
		s.TotalPagesSnake = &n
	}
	if v, ok := number(fields["total"]); ok {
		s.Total = &v
	}
	if v, ok := number(fields["page"]); ok {
		n := int(v)
		s.Page = &n
	}
	if v, ok := number(fields["limit"]); ok {
		n := int(v)
		s.Limit = &n
	}
	return s
}

// number accepts JSON numbers only; strings, booleans and null are rejected.
// Fractional values are truncated toward zero.
func number(raw json.RawMessage) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false
	}
	if c := raw[0]; c != '-' && (c < '0' || c > '9') {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}
