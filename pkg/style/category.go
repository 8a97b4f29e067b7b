package style

import (
	"strings"

	"github.com/matzehuels/fontify/pkg/errors"
)

// Category is a style tag used for filtering. Values are the public route
// slugs, so they are stable.
type Category string

const (
	CategoryAll      Category = "bonitas"
	CategoryCursive  Category = "cursivas"
	CategoryGothic   Category = "goticas"
	CategoryTattoo   Category = "tatuajes"
	CategoryGraffiti Category = "graffiti"
	CategoryFacebook Category = "facebook"
	CategoryAmino    Category = "amino"
)

var categoryInfo = []struct {
	cat   Category
	name  string
	label string
}{
	{CategoryAll, "ALL", "Letras Bonitas"},
	{CategoryCursive, "CURSIVE", "Letras Cursivas"},
	{CategoryGothic, "GOTHIC", "Letras Góticas"},
	{CategoryTattoo, "TATTOO", "Letras para Tatuajes"},
	{CategoryGraffiti, "GRAFFITI", "Letras Graffiti"},
	{CategoryFacebook, "FACEBOOK", "Letras para Facebook"},
	{CategoryAmino, "AMINO", "Letras para Amino"},
}

// Categories returns every category, ALL first.
func Categories() []Category {
	out := make([]Category, len(categoryInfo))
	for i, c := range categoryInfo {
		out[i] = c.cat
	}
	return out
}

// ParseCategory accepts a tag value ("goticas") or a constant name
// ("GOTHIC"), case-insensitively. The empty string means ALL.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryAll, nil
	}
	for _, c := range categoryInfo {
		if strings.EqualFold(s, string(c.cat)) || strings.EqualFold(s, c.name) {
			return c.cat, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidCategory, "unknown category %q", s)
}

// Label returns the human-readable page title for c.
func (c Category) Label() string {
	for _, ci := range categoryInfo {
		if ci.cat == c {
			return ci.label
		}
	}
	return string(c)
}
