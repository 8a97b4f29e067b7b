package pipeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// fold reduces s to a search key: fullwidth forms narrowed, accents
// stripped, case folded. "Góticas" and "ＧＯＴＩＣＡＳ" both fold to "goticas".
//
// Transformers carry state, so the chain is built per call.
func fold(s string) string {
	t := transform.Chain(width.Fold, norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}

// matcher reports whether a style name contains the query.
// An empty query matches everything.
func matcher(query string) func(name string) bool {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return func(string) bool { return true }
	}
	return func(name string) bool {
		return strings.Contains(fold(name), q)
	}
}
