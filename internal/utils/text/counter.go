// Package text measures and shortens strings by characters, not bytes.
// Spanish names and addresses carry accents, so byte lengths overstate
// their width in a table.
package text

// CountRunes counts the Unicode characters (runes) in text.
//
//	CountRunes("Lucía")  // 5
//	CountRunes("")       // 0
func CountRunes(text string) int {
	return len([]rune(text))
}

// ellipsis marks a shortened string.
const ellipsis = "…"

// Truncate shortens text to at most maxRunes characters, replacing the tail
// with an ellipsis. A maxRunes below 1 returns text unchanged.
func Truncate(text string, maxRunes int) string {
	if maxRunes < 1 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	if maxRunes == 1 {
		return ellipsis
	}
	return string(runes[:maxRunes-1]) + ellipsis
}
