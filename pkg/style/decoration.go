package style

import (
	"strings"

	"github.com/matzehuels/fontify/pkg/errors"
)

// Decoration is an optional frame applied to styled output.
type Decoration string

const (
	DecorationNone       Decoration = "none"
	DecorationSparkles   Decoration = "sparkles"
	DecorationHearts     Decoration = "hearts"
	DecorationBrackets   Decoration = "brackets"
	DecorationStars      Decoration = "stars"
	DecorationMoon       Decoration = "moon"
	DecorationCloud      Decoration = "cloud"
	DecorationAngel      Decoration = "angel"
	DecorationFlowers    Decoration = "flowers"
	DecorationCherry     Decoration = "cherry"
	DecorationMusical    Decoration = "musical"
	DecorationSwords     Decoration = "swords"
	DecorationBats       Decoration = "bats"
	DecorationChains     Decoration = "chains"
	DecorationBarbedWire Decoration = "barbed_wire"
	DecorationFire       Decoration = "fire"
	DecorationWarning    Decoration = "warning"
	DecorationBricks     Decoration = "bricks"
	DecorationSpray      Decoration = "spray"
	DecorationCrown      Decoration = "crown"
	DecorationAnchor     Decoration = "anchor"
	DecorationNeedle     Decoration = "needle"
)

// frames holds the prefix and suffix of each decoration, spaces included.
var frames = map[Decoration][2]string{
	DecorationSparkles:   {"✨ ", " ✨"},
	DecorationHearts:     {"♥ ", " ♥"},
	DecorationBrackets:   {"【 ", " 】"},
	DecorationStars:      {"★ ", " ★"},
	DecorationMoon:       {"☾ ", " ☽"},
	DecorationCloud:      {"☁ ", " ☁"},
	DecorationAngel:      {"ଘ(੭*ˊᵕˋ)੭* ੈ♡‧₊˚ ", ""},
	DecorationFlowers:    {"❀ ", " ❀"},
	DecorationCherry:     {"🍒 ", " 🍒"},
	DecorationMusical:    {"♫ ", " ♫"},
	DecorationSwords:     {"⚔️ ", " ⚔️"},
	DecorationBats:       {"🦇 ", " 🦇"},
	DecorationChains:     {"⛓ ", " ⛓"},
	DecorationBarbedWire: {"༒ ", " ༒"},
	DecorationFire:       {"🔥 ", " 🔥"},
	DecorationWarning:    {"⚠️ ", " ⚠️"},
	DecorationBricks:     {"🧱 ", " 🧱"},
	DecorationSpray:      {"░▒▓ ", " ▓▒░"},
	DecorationCrown:      {"♛ ", " ♛"},
	DecorationAnchor:     {"⚓ ", " ⚓"},
	DecorationNeedle:     {"✒ ", " ✒"},
}

// Decorations returns every decoration, none first.
func Decorations() []Decoration {
	return []Decoration{
		DecorationNone, DecorationSparkles, DecorationHearts, DecorationBrackets,
		DecorationStars, DecorationMoon, DecorationCloud, DecorationAngel,
		DecorationFlowers, DecorationCherry, DecorationMusical, DecorationSwords,
		DecorationBats, DecorationChains, DecorationBarbedWire, DecorationFire,
		DecorationWarning, DecorationBricks, DecorationSpray, DecorationCrown,
		DecorationAnchor, DecorationNeedle,
	}
}

// DecorationsFor returns the decorations offered for a category, in the
// order a "next decoration" control cycles through them.
func DecorationsFor(c Category) []Decoration {
	switch c {
	case CategoryAmino:
		return []Decoration{DecorationNone, DecorationSparkles, DecorationCloud, DecorationAngel,
			DecorationHearts, DecorationMoon, DecorationFlowers, DecorationCherry, DecorationStars}
	case CategoryGothic:
		return []Decoration{DecorationNone, DecorationSwords, DecorationBats, DecorationChains,
			DecorationBarbedWire, DecorationMoon, DecorationBrackets}
	case CategoryGraffiti:
		return []Decoration{DecorationNone, DecorationBrackets, DecorationFire, DecorationSpray,
			DecorationWarning, DecorationBricks, DecorationCrown}
	case CategoryTattoo:
		return []Decoration{DecorationNone, DecorationAnchor, DecorationNeedle, DecorationMoon,
			DecorationStars, DecorationMusical, DecorationFlowers}
	default:
		return []Decoration{DecorationNone, DecorationSparkles, DecorationHearts,
			DecorationBrackets, DecorationStars, DecorationMoon}
	}
}

// Next returns the decoration after d in the cycle for c. A decoration not
// offered for c restarts the cycle.
func (d Decoration) Next(c Category) Decoration {
	cycle := DecorationsFor(c)
	for i, x := range cycle {
		if x == d {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[1%len(cycle)]
}

// ParseDecoration resolves a decoration by name. The empty string is none.
func ParseDecoration(s string) (Decoration, error) {
	d := Decoration(strings.ToLower(strings.TrimSpace(s)))
	if d == "" || d == DecorationNone {
		return DecorationNone, nil
	}
	if _, ok := frames[d]; ok {
		return d, nil
	}
	return "", errors.New(errors.ErrCodeInvalidDecoration, "unknown decoration %q", s)
}

// Apply frames text. Empty text stays empty.
func (d Decoration) Apply(text string) string {
	f, ok := frames[d]
	if !ok || text == "" {
		return text
	}
	return f[0] + text + f[1]
}
