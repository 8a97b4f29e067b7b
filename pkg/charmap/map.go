package charmap

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Map is an immutable lookup from source runes to replacement strings.
//
// Source and target are index-aligned: the i-th source rune maps to the
// i-th target element. A target element is usually one rune but may be a
// longer string (Morse, Braille digits).
type Map struct {
	name   string
	source []rune
	target []string
	index  map[rune]string
}

// New builds a Map from a source alphabet and an index-aligned target slice.
// Mismatched lengths are not rejected here; see [Map.Validate].
func New(name, source string, target []string) *Map {
	m := &Map{
		name:   name,
		source: []rune(source),
		target: target,
	}
	m.index = make(map[rune]string, len(m.source))
	for i, r := range m.source {
		if i >= len(target) {
			break
		}
		m.index[r] = target[i]
	}
	return m
}

// FromStrings builds a Map where every target element is a single rune.
func FromStrings(name, source, target string) *Map {
	return New(name, source, splitRunes(target))
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Name returns the table's identifier.
func (m *Map) Name() string { return m.name }

// Len returns the number of source runes.
func (m *Map) Len() int { return len(m.source) }

// Lookup returns the replacement for r, if the table has one.
func (m *Map) Lookup(r rune) (string, bool) {
	t, ok := m.index[r]
	return t, ok
}

// Validate reports a table whose source and target disagree in length or
// whose source repeats a rune.
func (m *Map) Validate() error {
	if len(m.source) != len(m.target) {
		return fmt.Errorf("charmap %s: %d source runes but %d targets", m.name, len(m.source), len(m.target))
	}
	seen := make(map[rune]int, len(m.source))
	for i, r := range m.source {
		if j, ok := seen[r]; ok {
			return fmt.Errorf("charmap %s: source rune %q repeated at %d and %d", m.name, r, j, i)
		}
		seen[r] = i
	}
	for i, t := range m.target {
		if t == "" {
			return fmt.Errorf("charmap %s: empty target at %d", m.name, i)
		}
	}
	return nil
}

// Apply replaces every rune of text that the table covers.
//
// A rune missing from the table is decomposed (for example "é" into "e" and
// a combining acute). If its base letter, or the lowercase of that base, is
// in the table, the replacement is emitted followed by the original marks.
// Anything else passes through unchanged.
func (m *Map) Apply(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, r := range text {
		if t, ok := m.index[r]; ok {
			b.WriteString(t)
			continue
		}
		base, marks, ok := decompose(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		t, ok := m.index[base]
		if !ok {
			t, ok = m.index[unicode.ToLower(base)]
		}
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteString(t)
		b.WriteString(marks)
	}
	return b.String()
}

// NewMapper returns m.Apply as a plain function value.
func NewMapper(m *Map) func(string) string {
	return m.Apply
}

// spanish lists the accented letters used in Spanish. They are resolved
// without a normalization pass since they dominate real input.
var spanish = map[rune][2]rune{
	'á': {'a', '\u0301'}, 'é': {'e', '\u0301'}, 'í': {'i', '\u0301'},
	'ó': {'o', '\u0301'}, 'ú': {'u', '\u0301'}, 'ü': {'u', '\u0308'},
	'ñ': {'n', '\u0303'},
	'Á': {'A', '\u0301'}, 'É': {'E', '\u0301'}, 'Í': {'I', '\u0301'},
	'Ó': {'O', '\u0301'}, 'Ú': {'U', '\u0301'}, 'Ü': {'U', '\u0308'},
	'Ñ': {'N', '\u0303'},
}

// decompose splits r into a base rune and its trailing nonspacing marks.
// It reports false when r has no such canonical decomposition.
func decompose(r rune) (base rune, marks string, ok bool) {
	if d, found := spanish[r]; found {
		return d[0], string(d[1]), true
	}
	if r < 0x80 {
		return 0, "", false
	}
	rs := []rune(norm.NFD.String(string(r)))
	if len(rs) < 2 || unicode.Is(unicode.Mn, rs[0]) {
		return 0, "", false
	}
	for _, mk := range rs[1:] {
		if !unicode.Is(unicode.Mn, mk) {
			return 0, "", false
		}
	}
	return rs[0], string(rs[1:]), true
}
