package pagination

import (
	"bytes"
	"encoding/json"
)

// Page is what a fetch function returns: one page of rows plus whatever
// paging fields the backend attached to it.
//
// Accepted bodies:
//
//	{"data": [...], "totalPages": 3, "page": 1}
//	{"data": [...], "pagination": {"total": 95, "limit": 10}}
//	[...]
type Page[T any] struct {
	Data   []T
	Source Source
}

// UnmarshalJSON decodes a page body. Malformed paging fields never fail the
// decode; malformed rows do.
func (p *Page[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var data []T
		if err := json.Unmarshal(b, &data); err != nil {
			return err
		}
		*p = Page[T]{Data: data}
		return nil
	}

	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		return err
	}
	var src Source
	_ = src.UnmarshalJSON(b)

	*p = Page[T]{Data: envelope.Data, Source: src}
	return nil
}

// Result is a page of rows with normalized metadata. It serializes flat:
// {"data": [...], "total": 95, "page": 2, "limit": 10, "totalPages": 10}.
type Result[T any] struct {
	Data     []T `json:"data" yaml:"data"`
	Metadata `yaml:",inline"`
}

// NewResult normalizes a fetched page against the limit that was requested.
func NewResult[T any](page Page[T], requestedLimit int) Result[T] {
	data := page.Data
	if data == nil {
		data = []T{}
	}
	return Result[T]{
		Data:     data,
		Metadata: BuildMetadata(page.Source, requestedLimit),
	}
}
