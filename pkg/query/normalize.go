// Package query holds the pure search functions the bot runs over catalog snapshots.
// Nothing here performs I/O or mutates its input.
package query

import (
	"strings"
	"unicode"
)

// Normalize removes every whitespace rune and lower-cases the rest, so
// "Makita  Drill" and "makitadrill" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Contains reports whether the normalized field contains the normalized keyword.
func Contains(field, keyword string) bool {
	return strings.Contains(Normalize(field), Normalize(keyword))
}
