package style

import (
	"fmt"
	"slices"

	"github.com/matzehuels/fontify/pkg/convert"
)

type symbol struct {
	glyph string
	name  string
}

type bracket struct {
	left, right string
	name        string
}

var cursiveSymbols = []symbol{
	{"✨", "Sparkles"}, {"♥", "Heart"}, {"★", "Star"},
	{"❀", "Flower"}, {"♫", "Music"}, {"🦋", "Butterfly"},
	{"☾", "Moon"}, {"🔥", "Fire"}, {"👑", "Crown"},
	{"🎀", "Bow"}, {"🍒", "Cherry"}, {"🧸", "Bear"},
	{"⚡", "Zap"}, {"💎", "Gem"}, {"☁", "Cloud"},
	{"✈", "Plane"}, {"☠", "Skull"}, {"⚓", "Anchor"},
	{"⚔️", "Sword"}, {"✿", "Sakura"}, {"❄", "Snow"},
	{"✦", "Spark"}, {"❥", "Love"}, {"❦", "Floral"},
	{"❧", "Leaf"}, {"♛", "Queen"}, {"☮", "Peace"},
	{"☯", "YinYang"}, {"☀", "Sun"}, {"☂", "Umbrella"},
}

var tattooSymbols = []symbol{
	{"🌹", "Rose"}, {"⚜️", "Fleur"}, {"✝", "Cross"},
	{"⚓", "Anchor"}, {"⚔️", "Sword"}, {"🏹", "Arrow"},
	{"🕸", "Web"}, {"🕷", "Spider"}, {"🐍", "Snake"},
	{"💀", "Skull"}, {"👁", "Eye"}, {"🌙", "Crescent"},
	{"🐺", "Wolf"}, {"🗡", "Dagger"}, {"🩸", "Blood"},
	{"🕯", "Candle"}, {"🗝", "Key"}, {"🧭", "Compass"},
	{"⚖", "Scale"}, {"♾", "Infinity"},
}

var brackets = []bracket{
	{"【", "】", "Asian"}, {"『", "』", "Corner"},
	{"«", "»", "Guillemet"}, {"「", "」", "Quote"},
	{"₍", "₎", "Tiny"}, {"☾", "☽", "Moon"},
	{"꧁", "꧂", "Wing"}, {"༺", "༻", "Decor"},
}

// generated builds the symbol and bracket permutations. Ids carry the
// seed index, so appending to a seed list never renumbers existing styles.
func generated() []Style {
	return slices.Concat(
		expand(cursiveSymbols, func(i int, sym symbol) []Style {
			dec := def(
				fmt.Sprintf("cur-dec-%d", i),
				fmt.Sprintf("Cursiva %s %s", sym.name, sym.glyph),
				hi, framed(sym.glyph, convert.Script), catCursive, catAmino,
			)
			if i%3 != 0 {
				return []Style{dec}
			}
			return []Style{dec, def(
				fmt.Sprintf("cur-int-%d", i),
				fmt.Sprintf("Cursiva Cadena %s", sym.glyph),
				mid, func(t string) string { return convert.Interleave(convert.BoldScript(t), sym.glyph) }, catCursive,
			)}
		}),
		expand(tattooSymbols, func(i int, sym symbol) []Style {
			return []Style{def(
				fmt.Sprintf("tat-dec-f-%d", i),
				fmt.Sprintf("Gótica %s %s", sym.name, sym.glyph),
				mid, framed(sym.glyph, convert.Fraktur), catTattoo, catGothic,
			)}
		}),
		expand(brackets, func(i int, br bracket) []Style {
			return []Style{
				def(
					fmt.Sprintf("br-script-%d", i),
					fmt.Sprintf("Cursiva %s %s%s", br.name, br.left, br.right),
					hi, wrap(br.left, br.right, convert.Script), catCursive, catAmino,
				),
				def(
					fmt.Sprintf("br-mono-%d", i),
					fmt.Sprintf("Aesthetic %s", br.name),
					hi, wrap(br.left, br.right, convert.Monospace), catFacebook, catAmino,
				),
			}
		}),
	)
}

// expand builds the styles of every seed and joins them in seed order.
func expand[T any](seeds []T, build func(i int, seed T) []Style) []Style {
	parts := make([][]Style, len(seeds))
	for i, seed := range seeds {
		parts[i] = build(i, seed)
	}
	return slices.Concat(parts...)
}
