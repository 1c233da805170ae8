package session

import (
	"regexp"

	"github.com/rivo/uniseg"
)

// Content length bounds, counted in grapheme clusters so emoji and composed
// characters count as one.
const (
	MinContentLength = 8
	MaxContentLength = 1000
)

// consecutiveSpaces matches runs of blank characters the form rejects:
// two or more spaces, repeated newlines, or any space/newline adjacency.
var consecutiveSpaces = regexp.MustCompile(`  +|\n\n+|\s\n|\n\s`)

// GraphemeLength returns the number of grapheme clusters in s.
func GraphemeLength(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// TruncateGraphemes returns the first n grapheme clusters of s.
func TruncateGraphemes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	g := uniseg.NewGraphemes(s)
	count := 0
	end := 0
	for g.Next() {
		count++
		_, end = g.Positions()
		if count == n {
			break
		}
	}
	if count < n {
		return s
	}
	return s[:end]
}

// HasConsecutiveSpaces reports whether s contains a rejected whitespace run.
func HasConsecutiveSpaces(s string) bool {
	return consecutiveSpaces.MatchString(s)
}
