package pagination

// ResolveTotalPages derives a page count from whichever fields the backend
// sent. An explicit count wins (camelCase before snake_case) and is returned
// unchanged; otherwise the count is ceil(total / requestedLimit). With no usable
// field, or requestedLimit <= 0, the result is 0.
func ResolveTotalPages(source Source, requestedLimit int) int {
	switch source.Shape(requestedLimit) {
	case ShapeCamel:
		return *source.TotalPages
	case ShapeSnake:
		return *source.TotalPagesSnake
	case ShapeDerived:
		return ceilDiv(*source.Total, requestedLimit)
	default:
		return 0
	}
}

// BuildMetadata assembles the canonical Metadata for a response. Missing
// fields default to total 0, page 1 and the requested limit.
func BuildMetadata(source Source, requestedLimit int) Metadata {
	meta := Metadata{
		Page:       1,
		Limit:      requestedLimit,
		TotalPages: ResolveTotalPages(source, requestedLimit),
		Known:      source.Shape(requestedLimit) != ShapeUnknown,
	}
	if source.Total != nil {
		meta.Total = *source.Total
	}
	if source.Page != nil {
		meta.Page = *source.Page
	}
	if source.Limit != nil {
		meta.Limit = *source.Limit
	}
	return meta
}

// ceilDiv rounds total/limit up for positive totals; limit must be positive.
func ceilDiv(total int64, limit int) int {
	l := int64(limit)
	if total <= 0 {
		return int(total / l)
	}
	return int((total + l - 1) / l)
}
