package style

import "slices"

// Converter turns input text into styled text. Implementations never fail;
// characters they cannot transform pass through.
type Converter interface {
	Apply(text string) string
}

// ConverterFunc adapts a plain function to [Converter].
type ConverterFunc func(string) string

// Apply calls f(text).
func (f ConverterFunc) Apply(text string) string { return f(text) }

// Style is one entry of the catalog.
type Style struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Categories  []Category  `json:"categories" yaml:"categories"`
	Readability Readability `json:"readability" yaml:"readability"`
	Converter   Converter   `json:"-" yaml:"-"`
}

// Apply runs the style's converter. A style without one returns text as is.
func (s Style) Apply(text string) string {
	if s.Converter == nil {
		return text
	}
	return s.Converter.Apply(text)
}

// clone returns s with its own copy of Categories.
func (s Style) clone() Style {
	s.Categories = slices.Clone(s.Categories)
	return s
}

// In reports whether s is tagged with c. Every style is in CategoryAll.
func (s Style) In(c Category) bool {
	return c == CategoryAll || slices.Contains(s.Categories, c)
}
