package convert

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matzehuels/fontify/pkg/errors"
)

// Case is an input case transform applied before a style converter.
type Case string

const (
	CaseNormal     Case = "normal"
	CaseUpper      Case = "upper"
	CaseLower      Case = "lower"
	CaseCapitalize Case = "capitalize"
)

// Cases lists every case mode in display order.
func Cases() []Case {
	return []Case{CaseNormal, CaseUpper, CaseLower, CaseCapitalize}
}

// ParseCase resolves a case mode by name. The empty string is normal.
func ParseCase(s string) (Case, error) {
	c := Case(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case "":
		return CaseNormal, nil
	case CaseNormal, CaseUpper, CaseLower, CaseCapitalize:
		return c, nil
	}
	return "", errors.New(errors.ErrCodeInvalidCase,
		"unknown case %q (want normal, upper, lower or capitalize)", s)
}

// Apply transforms text. Casers are built per call since they carry state.
func (c Case) Apply(text string) string {
	switch c {
	case CaseUpper:
		return cases.Upper(language.Spanish).String(text)
	case CaseLower:
		return cases.Lower(language.Spanish).String(text)
	case CaseCapitalize:
		return capitalize(text)
	default:
		return text
	}
}

// capitalize lowercases text, then uppercases the first character of each
// space-separated word. Unlike cases.Title it does not treat punctuation as
// a word boundary.
func capitalize(text string) string {
	words := strings.Split(cases.Lower(language.Spanish).String(text), " ")
	upper := cases.Upper(language.Spanish)
	for i, w := range words {
		if w == "" {
			continue
		}
		first, rest, _, _ := uniseg.FirstGraphemeClusterInString(w, -1)
		words[i] = upper.String(first) + rest
	}
	return strings.Join(words, " ")
}
