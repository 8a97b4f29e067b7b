package convert

import (
	"strings"

	"github.com/matzehuels/fontify/pkg/charmap"
)

// Direct table converters.
var (
	Script          = charmap.NewMapper(charmap.Script)
	BoldScript      = charmap.NewMapper(charmap.ScriptBold)
	Fraktur         = charmap.NewMapper(charmap.Fraktur)
	BoldFraktur     = charmap.NewMapper(charmap.FrakturBold)
	DoubleStruck    = charmap.NewMapper(charmap.DoubleStruck)
	SansBold        = charmap.NewMapper(charmap.SansBold)
	SerifBold       = charmap.NewMapper(charmap.SerifBold)
	SansItalic      = charmap.NewMapper(charmap.SansItalic)
	SerifItalic     = charmap.NewMapper(charmap.SerifItalic)
	SerifBoldItalic = charmap.NewMapper(charmap.SerifBoldItalic)
	Monospace       = charmap.NewMapper(charmap.Monospace)
	Wide            = charmap.NewMapper(charmap.Wide)
	Bubbles         = charmap.NewMapper(charmap.Bubbles)
	BlackBubbles    = charmap.NewMapper(charmap.BlackBubbles)
	Superscript     = charmap.NewMapper(charmap.Superscript)
	Subscript       = charmap.NewMapper(charmap.Subscript)
	Regional        = charmap.NewMapper(charmap.Regional)
	PseudoCyrillic  = charmap.NewMapper(charmap.PseudoCyrillic)
)

// Monocase tables need the input folded first.

// SmallCaps lowercases text, then maps it to small capitals.
func SmallCaps(text string) string { return charmap.SmallCaps.Apply(strings.ToLower(text)) }

// BlackSquare uppercases text, then maps it to negative squared letters.
func BlackSquare(text string) string { return charmap.BlackSquares.Apply(strings.ToUpper(text)) }

// Parenthesized lowercases text, then maps it to parenthesized letters.
func Parenthesized(text string) string {
	return charmap.Parenthesized.Apply(strings.ToLower(text))
}

func Greek(text string) string    { return charmap.Greek.Apply(strings.ToUpper(text)) }
func Runic(text string) string    { return charmap.Runic.Apply(strings.ToLower(text)) }
func Cherokee(text string) string { return charmap.Cherokee.Apply(strings.ToUpper(text)) }
func Currency(text string) string { return charmap.Currency.Apply(strings.ToUpper(text)) }

// UpsideDown rotates every character and reverses the order once, so the
// result reads correctly when the screen is turned over.
func UpsideDown(text string) string {
	return Reverse(charmap.UpsideDown.Apply(text))
}
