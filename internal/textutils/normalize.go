// Package textutils canonicalizes free-text fields of work-line exports so that
// classification is insensitive to accents, case and surrounding whitespace.
package textutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// newAccentStripper decomposes compatibility characters, drops combining marks
// and recomposes what is left. Transformers carry state, so each call builds one.
func newAccentStripper() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Clean trims leading and trailing whitespace.
func Clean(s string) string {
	return strings.TrimSpace(s)
}

// StripAccents removes diacritical marks, leaving the base letter.
func StripAccents(s string) string {
	out, _, err := transform.String(newAccentStripper(), s)
	if err != nil {
		// Only reachable on malformed UTF-8; fall back to the input rather than fail.
		return s
	}
	return out
}

// Normalize returns the canonical form used for classification:
// trimmed, without diacritics, upper-cased. "  Výroba " becomes "VYROBA".
func Normalize(s string) string {
	return strings.ToUpper(StripAccents(Clean(s)))
}

// NormalizeAll normalizes every value of a column.
func NormalizeAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Normalize(v)
	}
	return out
}
