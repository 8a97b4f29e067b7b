package convert

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Graphemes splits text into extended grapheme clusters.
func Graphemes(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Reverse returns text with its characters in reverse order.
func Reverse(text string) string {
	cs := Graphemes(text)
	for i, j := 0, len(cs)-1; i < j; i, j = i+1, j-1 {
		cs[i], cs[j] = cs[j], cs[i]
	}
	return strings.Join(cs, "")
}

// Interleave inserts sep between every pair of characters, never at the ends.
func Interleave(text, sep string) string {
	return strings.Join(Graphemes(text), sep)
}

// Surround concatenates prefix, text and suffix.
func Surround(text, prefix, suffix string) string {
	return prefix + text + suffix
}

// Wrap returns a decorator that frames text between left and right,
// separated by single spaces. The frame is emitted even for empty text.
func Wrap(left, right string) func(string) string {
	return func(text string) string {
		return Surround(text, left+" ", " "+right)
	}
}

// Combining overlay marks.
const (
	underlineMark     = "\u0332"
	strikethroughMark = "\u0336"
	slashMark         = "\u0338"
	dottedMark        = "\u0323"
)

func overlay(text, mark string) string {
	if text == "" {
		return ""
	}
	cs := Graphemes(text)
	var b strings.Builder
	b.Grow(len(text) + len(cs)*len(mark))
	for _, c := range cs {
		b.WriteString(c)
		b.WriteString(mark)
	}
	return b.String()
}

// Underline places a combining low line after every character.
func Underline(text string) string { return overlay(text, underlineMark) }

// Strikethrough places a combining long stroke after every character.
func Strikethrough(text string) string { return overlay(text, strikethroughMark) }

// Slash places a combining long solidus after every character.
func Slash(text string) string { return overlay(text, slashMark) }

// Dotted places a combining dot below after every character.
func Dotted(text string) string { return overlay(text, dottedMark) }

// Lightning interleaves a lightning bolt.
func Lightning(text string) string { return Interleave(text, "⚡") }

// Square boxes every character in brackets: "ab" becomes "[a][b]".
func Square(text string) string {
	var b strings.Builder
	for _, c := range Graphemes(text) {
		b.WriteByte('[')
		b.WriteString(c)
		b.WriteByte(']')
	}
	return b.String()
}

// Spaced follows every character with a space, trailing one included.
func Spaced(text string) string {
	var b strings.Builder
	for _, c := range Graphemes(text) {
		b.WriteString(c)
		b.WriteByte(' ')
	}
	return b.String()
}

// Stacked puts one character per line.
func Stacked(text string) string { return Interleave(text, "\n") }

// hangulFiller renders as blank space on most platforms but is not
// stripped as whitespace.
const hangulFiller = "\u3164"

// Invisible ignores the content of text and returns one Hangul filler per
// character, or a single filler when text is empty.
func Invisible(text string) string {
	n := uniseg.GraphemeClusterCount(text)
	if n == 0 {
		n = 1
	}
	return strings.Repeat(hangulFiller, n)
}
