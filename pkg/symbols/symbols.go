// Package symbols holds the symbol picker collections and the sample
// phrases shown when there is no input yet.
package symbols

import (
	"slices"

	"github.com/matzehuels/fontify/pkg/convert"
	"github.com/matzehuels/fontify/pkg/errors"
)

// Collection is a named group of symbols for the picker.
type Collection struct {
	ID    string   `json:"id" yaml:"id"`
	Label string   `json:"label" yaml:"label"`
	Items []string `json:"items" yaml:"items"`
}

var collections = []Collection{
	{
		ID:    "popular",
		Label: "Populares",
		Items: split("★✨♥⚡♛☠✈♫☁✿☾➤⚓⚔∞\uF8FF✓✘"),
	},
	{
		ID:    "stars",
		Label: "Estrellas",
		Items: split("★☆✦✧✩✪✫✬✭✮✯✰⁂⁎⁑✢✣✤✥✱✲✳✴✵✶✷✸✹✺✻✼✽✾✿❀❁❂❃❄❅❆❇❈❉❊❋"),
	},
	{
		ID:    "hearts",
		Label: "Corazones",
		Items: split("♥♡❤❥❣❦❧დღ۵ওლ💕💗💖💘💝💟💔"),
	},
	{
		ID:    "arrows",
		Label: "Flechas",
		Items: runeRange(0x2190, 0x21FF),
	},
	{
		ID:    "math",
		Label: "Matemáticas",
		Items: runeRange(0x2200, 0x22FF),
	},
	{
		ID:    "brackets",
		Label: "Paréntesis",
		Items: slices.Concat(
			split("〈〉《》「」『』【】〔〕〖〗〘〙〚〛（）｛｝﹙﹚﹛﹜﹝﹞«»‹›〈〉₍₎⁽⁾"),
			runeRange(0x2768, 0x2775),
		),
	},
	{
		ID:    "check",
		Label: "Checks",
		Items: split("✓✔✕✖✗✘☐☑☒❍✇"),
	},
	{
		ID:    "music",
		Label: "Música",
		Items: slices.Concat(split("♩♪♫♬♭♮♯𝄞𝄡𝄢"), runeRange(0x1D12A, 0x1D173)),
	},
}

func split(s string) []string {
	out := make([]string, 0, len(s)/3)
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func runeRange(lo, hi rune) []string {
	out := make([]string, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, string(r))
	}
	return out
}

// Collections returns every collection in picker order. The result is a
// deep copy.
func Collections() []Collection {
	out := make([]Collection, len(collections))
	for i, c := range collections {
		out[i] = clone(c)
	}
	return out
}

// Lookup returns the collection with the given id.
func Lookup(id string) (Collection, error) {
	for _, c := range collections {
		if c.ID == id {
			return clone(c), nil
		}
	}
	return Collection{}, errors.New(errors.ErrCodeCollectionNotFound, "symbol collection %q not found", id)
}

func clone(c Collection) Collection {
	c.Items = append([]string(nil), c.Items...)
	return c
}

// Phrases are sample texts offered by the "random phrase" action.
var Phrases = []string{
	"Good Vibes Only",
	"✨ Dreams Come True ✨",
	"☾ Moon Child ☽",
	"Stay Wild",
	"Be Your Own Muse",
	"Angel Energy 👼",
	"Manifesting...",
	"Self Love Club",
	"Golden Hour",
	"Main Character Energy",
	"To the Moon 🚀",
	"Bad Decisions 😈",
	"No Rain, No Flowers",
	"Trust the Process",
	"Carpe Diem",
	"Memento Mori",
	"Amor Fati",
	"Made in Heaven",
	"Limited Edition",
	"Cyberpunk 2077",
}

// RandomPhrase picks one of Phrases.
func RandomPhrase(src convert.Source) string {
	return Phrases[src.IntN(len(Phrases))]
}

var placeholders = []string{"Hola", "Amor", "Música", "Arte", "2025", "Suerte", "Paz", "Letras"}

// Placeholder returns the i-th preview word, wrapping around. It stands in
// for the input while the user has typed nothing.
func Placeholder(i int) string {
	n := len(placeholders)
	return placeholders[((i%n)+n)%n]
}

// Placeholders returns the number of preview words in the rotation.
func Placeholders() int { return len(placeholders) }
