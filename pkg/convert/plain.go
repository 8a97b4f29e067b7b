package convert

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ergochat/confusables"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Plain folds styled text back toward readable ASCII. Compatibility
// decomposition handles the mathematical, fullwidth, circled and
// superscript alphabets; confusable skeletons handle lookalike scripts
// (Cyrillic, Greek, Cherokee). Combining marks are stripped last, which
// also removes Zalgo noise and overlays. Tables with no Unicode
// equivalence (runic, upside-down) stay as they are.
func Plain(text string) string {
	s := norm.NFKC.String(text)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		// The skeleton also maps ASCII lookalikes (0 to O, m to rn), so only
		// non-ASCII runes are offered to it, and only ASCII results are kept.
		if sk := confusables.SkeletonTweaked(string(r)); isASCII(sk) && sk != "" {
			b.WriteString(sk)
			continue
		}
		b.WriteRune(r)
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, b.String())
	if err != nil {
		return b.String()
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
