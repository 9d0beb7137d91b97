package pathutil

import "strings"

// NormalizePath replaces numeric path segments with ":id" so that logs and
// metric labels group item routes together.
//
//	NormalizePath("/vendedores/42") // "/vendedores/:id"
func NormalizePath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if seg != "" && isDigits(seg) {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
