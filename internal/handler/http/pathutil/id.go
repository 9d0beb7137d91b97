package pathutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidID matches every error returned by RecordID.
var ErrInvalidID = errors.New("invalid id")

// RecordID reads the record ID of a "/<collection>/<id>" path. The ID must
// be a positive integer and the last segment; "/vendedores/7/planes" is
// rejected.
func RecordID(path, collection string) (int64, error) {
	rest, ok := strings.CutPrefix(path, "/"+collection+"/")
	if !ok {
		return 0, fmt.Errorf("%w: path %q is outside /%s", ErrInvalidID, path, collection)
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, rest)
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a positive integer", ErrInvalidID, rest)
	}
	return id, nil
}
