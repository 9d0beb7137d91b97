package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ErrInvalidParams marks a page or limit outside the accepted bounds.
var ErrInvalidParams = errors.New("invalid pagination parameters")

// Params is the page request sent to a fetch function. It is a value type and
// is never modified once a request has been issued.
type Params struct {
	Page  int // 1-based
	Limit int
}

// Offset is the index of the first row of the page: page 3 of 10 starts at 20.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Query encodes the params as the page/limit query string the backend expects.
func (p Params) Query() url.Values {
	return url.Values{
		"page":  {strconv.Itoa(p.Page)},
		"limit": {strconv.Itoa(p.Limit)},
	}
}

// Validate checks the params against config. Errors wrap ErrInvalidParams.
func (p Params) Validate(config Config) error {
	if p.Page < 1 {
		return fmt.Errorf("%w: page %d must be at least 1", ErrInvalidParams, p.Page)
	}
	if p.Limit < 1 || p.Limit > config.MaxLimit {
		return fmt.Errorf("%w: limit %d must be between 1 and %d", ErrInvalidParams, p.Limit, config.MaxLimit)
	}
	return nil
}

// ParseQuery reads page and limit from a query string. Absent keys take the
// config defaults; present ones must be integers within bounds.
func ParseQuery(q url.Values, config Config) (Params, error) {
	p := Params{Page: config.DefaultPage, Limit: config.DefaultLimit}
	for key, dst := range map[string]*int{"page": &p.Page, "limit": &p.Limit} {
		raw := q.Get(key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidParams, key, raw)
		}
		*dst = n
	}
	if err := p.Validate(config); err != nil {
		return p, err
	}
	return p, nil
}
