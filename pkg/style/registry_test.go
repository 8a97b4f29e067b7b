package style

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/rivo/uniseg"

	"github.com/matzehuels/fontify/pkg/errors"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	if r.Len() != 195 {
		t.Errorf("Len() = %d, want 195", r.Len())
	}
	if r != Default() {
		t.Error("Default() should return the same registry")
	}

	styles := r.All()
	if styles[0].ID != "script-normal" {
		t.Errorf("first style = %q, want script-normal", styles[0].ID)
	}
	if last := styles[len(styles)-1].ID; last != "super-text" {
		t.Errorf("last style = %q, want super-text", last)
	}

	seen := make(map[string]bool, len(styles))
	for _, s := range styles {
		if seen[s.ID] {
			t.Errorf("duplicate id %q", s.ID)
		}
		seen[s.ID] = true
		if s.Name == "" || s.Converter == nil || len(s.Categories) == 0 {
			t.Errorf("style %q is incomplete: %+v", s.ID, s)
		}
		switch s.Readability {
		case ReadabilityHigh, ReadabilityMedium, ReadabilityLow:
		default:
			t.Errorf("style %q has readability %q", s.ID, s.Readability)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	r := Default()
	a := r.All()
	a[0] = Style{ID: "mutated"}
	if r.All()[0].ID != "script-normal" {
		t.Error("mutating All() result changed the registry")
	}

	r.All()[1].Categories[0] = CategoryGothic
	s, _ := r.Lookup("script-normal")
	s.Categories[0] = CategoryGothic
	r.ByCategory(CategoryCursive)[0].Categories[0] = CategoryGothic

	tests := []struct {
		id   string
		want []Category
	}{
		{"script-normal", []Category{CategoryAll, CategoryCursive, CategoryFacebook}},
		{"script-bold", []Category{CategoryAll, CategoryCursive, CategoryFacebook, CategoryTattoo}},
	}
	for _, tt := range tests {
		got, _ := r.Lookup(tt.id)
		if !slices.Equal(got.Categories, tt.want) {
			t.Errorf("%s categories = %v, want %v", tt.id, got.Categories, tt.want)
		}
	}
	for _, g := range r.ByCategory(CategoryGothic) {
		if g.ID == "script-normal" || g.ID == "script-bold" {
			t.Errorf("ByCategory(goticas) includes %s after caller mutation", g.ID)
		}
	}
}

func TestNewWithStylesCopiesCategories(t *testing.T) {
	cats := []Category{CategoryCursive}
	r, err := New(WithStyles(def("extra-copy", "Extra", hi, identity, cats...)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	cats[0] = CategoryGothic
	s, _ := r.Lookup("extra-copy")
	if !slices.Equal(s.Categories, []Category{CategoryCursive}) {
		t.Errorf("categories = %v, want [cursivas]", s.Categories)
	}
}

func TestNewRejectsDuplicate(t *testing.T) {
	_, err := New(WithStyles(def("script-normal", "Copia", hi, identity, catCursive)))
	if !errors.Is(err, errors.ErrCodeDuplicateStyle) {
		t.Fatalf("New() error = %v, want DUPLICATE_STYLE", err)
	}
}

func TestNewRejectsBadID(t *testing.T) {
	_, err := New(WithStyles(def("Bad ID", "Mala", hi, identity, catCursive)))
	if !errors.Is(err, errors.ErrCodeInvalidStyleID) {
		t.Fatalf("New() error = %v, want INVALID_STYLE_ID", err)
	}
}

func TestNewWithStyles(t *testing.T) {
	r, err := New(WithStyles(def("custom-echo", "Eco", hi, identity, catGothic)))
	if err != nil {
		t.Fatal(err)
	}
	s, err := r.Lookup("custom-echo")
	if err != nil {
		t.Fatal(err)
	}
	if s.Apply("x") != "x" {
		t.Errorf("custom style output = %q", s.Apply("x"))
	}
	gothic := r.ByCategory(CategoryGothic)
	if gothic[len(gothic)-1].ID != "custom-echo" {
		t.Error("appended style should come last in its category")
	}
}

func TestLookup(t *testing.T) {
	s, err := Default().Lookup("tat-roman-num")
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "Números Romanos (Fechas)" {
		t.Errorf("Name = %q", s.Name)
	}
	_, err = Default().Lookup("nope")
	if !errors.Is(err, errors.ErrCodeStyleNotFound) {
		t.Errorf("Lookup(nope) error = %v, want STYLE_NOT_FOUND", err)
	}
}

func TestByCategory(t *testing.T) {
	r := Default()
	if got := len(r.ByCategory(CategoryAll)); got != r.Len() {
		t.Errorf("ALL returned %d styles, want %d", got, r.Len())
	}
	if got := ByCategory(Category("nada")); len(got) != 0 {
		t.Errorf("unknown category returned %d styles", len(got))
	}

	index := make(map[string]int)
	for i, s := range r.All() {
		index[s.ID] = i
	}
	for _, c := range Categories()[1:] {
		list := r.ByCategory(c)
		if len(list) == 0 {
			t.Errorf("category %s is empty", c)
		}
		prev := -1
		for _, s := range list {
			if !s.In(c) {
				t.Errorf("%s returned %q which is not tagged %s", c, s.ID, c)
			}
			if index[s.ID] <= prev {
				t.Errorf("%s out of registry order at %q", c, s.ID)
			}
			prev = index[s.ID]
		}
	}

	gothic := r.ByCategory(CategoryGothic)
	want := 0
	for _, s := range r.All() {
		for _, c := range s.Categories {
			if c == CategoryGothic {
				want++
			}
		}
	}
	if len(gothic) != want {
		t.Errorf("GOTHIC returned %d styles, want %d", len(gothic), want)
	}
}

func TestEmptyInput(t *testing.T) {
	framedBy := func(l, r string) string { return l + "  " + r }
	want := map[string]string{
		"fb-req-griego":       framedBy("▀▄▀▄", "▄▀▄▀"),
		"got-dec-wings":       framedBy("꧁", "꧂"),
		"got-dec-dark":        framedBy("☠", "☠"),
		"got-dec-warrior":     framedBy("⚔️", "⚔️"),
		"got-dec-demon":       framedBy("ψ", "ψ"),
		"got-dec-magic":       framedBy("✴", "✴"),
		"got-dec-vamp":        framedBy("🦇", "🦇"),
		"got-dec-rock":        framedBy("🤘", "🤘"),
		"got-chains":          framedBy("⛓", "⛓"),
		"tat-chicano":         framedBy("⚜️", "⚜️"),
		"tat-cursive-elegant": framedBy("~", "~"),
		"tat-sailor":          framedBy("⚓", "⚓"),
		"tat-love":            framedBy("♥", "♥"),
		"tat-graf-tag":        framedBy("★", "★"),
		"tat-vik-axe":         framedBy("⚔️", "⚔️"),
		"kaw-wings":           framedBy("꧁༒", "༒꧂"),
		"kaw-coquette":        framedBy("⋆ ˚｡⋆୨୧", "୨୧⋆ ˚｡⋆"),
		"kaw-stars-wrap":      framedBy("★", "★"),
		"fb-cloud":            framedBy("☁", "☁"),
		"fb-stars":            framedBy("★", "★"),
		"game-sword":          framedBy("⚔️", "⚔️"),
		"game-sniper":         "︻デ═一 ",
		"game-invis":          "ㅤ",
		"fb-req-invis":        "ㅤ",
	}
	for i, sym := range cursiveSymbols {
		want[fmt.Sprintf("cur-dec-%d", i)] = framedBy(sym.glyph, sym.glyph)
	}
	for i, sym := range tattooSymbols {
		want[fmt.Sprintf("tat-dec-f-%d", i)] = framedBy(sym.glyph, sym.glyph)
	}
	for i, br := range brackets {
		want[fmt.Sprintf("br-script-%d", i)] = framedBy(br.left, br.right)
		want[fmt.Sprintf("br-mono-%d", i)] = framedBy(br.left, br.right)
	}

	// Every other style has no fixed decoration and renders nothing.
	for _, s := range Default().All() {
		if got := s.Apply(""); got != want[s.ID] {
			t.Errorf("%s on empty input = %q, want %q", s.ID, got, want[s.ID])
		}
	}
	if got := want["cur-dec-1"]; got != "♥  ♥" {
		t.Errorf("cur-dec-1 frame = %q, want %q", got, "♥  ♥")
	}
}

func TestPassthrough(t *testing.T) {
	skip := map[string]bool{"fb-binary": true, "fb-req-invis": true, "game-invis": true}
	for _, s := range Default().All() {
		if skip[s.ID] {
			continue
		}
		if out := s.Apply("hola 🔥"); !strings.Contains(out, "🔥") {
			t.Errorf("%s dropped an unmappable character: %q", s.ID, out)
		}
	}

	// Undecorated table styles leave uncovered input byte for byte.
	const input = "!?.,🔥 2025"
	for _, id := range []string{"fb-script", "fb-gothic", "fb-gothic-bold", "fb-req-ruso", "tat-runic", "script-normal"} {
		s, err := Default().Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", id, err)
		}
		if got := s.Apply(input); got != input {
			t.Errorf("%s(%q) = %q, want input unchanged", id, input, got)
		}
	}
}

func TestScenarios(t *testing.T) {
	r := Default()

	script, _ := r.Lookup("script-normal")
	out := script.Apply("Hola")
	if out != "ℋℴ𝓁𝒶" {
		t.Errorf("script-normal(Hola) = %q", out)
	}
	if strings.Contains(out, "Hola") || uniseg.GraphemeClusterCount(out) != 4 {
		t.Errorf("script-normal(Hola) = %q is not four mapped glyphs", out)
	}

	roman, _ := r.Lookup("tat-roman-num")
	if got := roman.Apply("2025"); got != "MMXXV" {
		t.Errorf("tat-roman-num(2025) = %q, want MMXXV", got)
	}
	if got := roman.Apply("Amor"); got != "𝐀𝐦𝐨𝐫" {
		t.Errorf("tat-roman-num(Amor) = %q, want bold serif fallback", got)
	}
	if got := roman.Apply("5000"); got != "𝟓𝟎𝟎𝟎" {
		t.Errorf("tat-roman-num(5000) = %q, want bold serif fallback", got)
	}

	hearts, _ := r.Lookup("cur-dec-1")
	got := hearts.Apply("Amor")
	if !strings.HasPrefix(got, "♥ ") || !strings.HasSuffix(got, " ♥") {
		t.Errorf("cur-dec-1(Amor) = %q, want heart frame", got)
	}
	if got := DecorationHearts.Apply(script.Apply("Amor")); got != "♥ 𝒜𝓂ℴ𝓇 ♥" {
		t.Errorf("hearts decoration = %q", got)
	}
}

func TestDiacritics(t *testing.T) {
	s, _ := Default().Lookup("fb-bold-sans")
	out := s.Apply("canción")
	if n := uniseg.GraphemeClusterCount(out); n != 7 {
		t.Errorf("fb-bold-sans(canción) has %d characters, want 7", n)
	}
	if !strings.Contains(out, "\u0301") {
		t.Errorf("fb-bold-sans(canción) = %q lost the accent", out)
	}
}

func TestWithSource(t *testing.T) {
	a, err := New(WithSource(rand.New(rand.NewPCG(5, 5))))
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(WithSource(rand.New(rand.NewPCG(5, 5))))
	if err != nil {
		t.Fatal(err)
	}
	za, _ := a.Lookup("glitch-zalgo")
	zb, _ := b.Lookup("glitch-zalgo")
	if za.Apply("Memento Mori") != zb.Apply("Memento Mori") {
		t.Error("same seed should give the same glitch output")
	}
}
