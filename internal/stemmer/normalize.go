package stemmer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize composes the word to NFC and lower-cases it, so that
// "CAFÉ", "café" and a decomposed "café" share one cache key and
// one exclusion entry.
func Normalize(word string) string {
	return strings.ToLower(norm.NFC.String(word))
}
