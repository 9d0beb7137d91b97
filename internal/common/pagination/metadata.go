package pagination

// Metadata is the canonical paging description every view consumes.
type Metadata struct {
	Total      int64 `json:"total" yaml:"total"`           // Rows across all pages
	Page       int   `json:"page" yaml:"page"`             // Current page (1-based)
	Limit      int   `json:"limit" yaml:"limit"`           // Rows per page
	TotalPages int   `json:"totalPages" yaml:"totalPages"` // Page count, 0 when empty or unknown

	// Known reports whether TotalPages could be resolved: the backend sent a
	// page count, or a total with a positive requested limit to divide it by.
	// It separates "no information" from a confirmed empty collection. A total
	// without a usable limit still fills Total but leaves Known false.
	Known bool `json:"-" yaml:"-"`
}

// HasNext reports whether a page after the current one exists.
func (m Metadata) HasNext() bool {
	return m.Page < m.TotalPages
}

// HasPrevious reports whether a page before the current one exists.
func (m Metadata) HasPrevious() bool {
	return m.Page > 1
}
