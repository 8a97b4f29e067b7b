package charmap

import "testing"

func TestTablesValid(t *testing.T) {
	for _, m := range All() {
		if err := m.Validate(); err != nil {
			t.Errorf("%v", err)
		}
	}
}

func TestTableNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range All() {
		if seen[m.Name()] {
			t.Errorf("duplicate table name %q", m.Name())
		}
		seen[m.Name()] = true
	}
}

func TestValidateMismatch(t *testing.T) {
	m := FromStrings("short", "abc", "xy")
	if err := m.Validate(); err == nil {
		t.Fatal("expected length mismatch error")
	}
	if got := m.Apply("abc"); got != "xyc" {
		t.Errorf("Apply() = %q, want %q", got, "xyc")
	}

	dup := FromStrings("dup", "aa", "xy")
	if err := dup.Validate(); err == nil {
		t.Error("expected repeated source rune error")
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		m    *Map
		in   string
		want string
	}{
		{"empty", Script, "", ""},
		{"script word", Script, "Hola", "ℋℴ𝓁𝒶"},
		{"bold digits", SerifBold, "2025", "𝟐𝟎𝟐𝟓"},
		{"bubbles", Bubbles, "abc 123", "ⓐⓑⓒ ①②③"},
		{"double struck holes", DoubleStruck, "CHNPQRZ", "ℂℍℕℙℚℝℤ"},
		{"fraktur holes", Fraktur, "CHIRZ", "ℭℌℑℜℨ"},
		{"passthrough punctuation", Monospace, "a-b!", "𝚊-𝚋!"},
		{"passthrough emoji", Wide, "ok 🔥", "ｏｋ 🔥"},
		{"passthrough hangul", Script, "한", "한"},
		{"spanish acute", Script, "é", "ℯ\u0301"},
		{"spanish tilde", SansBold, "Ñ", "𝗡\u0303"},
		{"nfd fallback", Script, "ã", "𝒶\u0303"},
		{"cedilla", Monospace, "ç", "𝚌\u0327"},
		{"lowercase base retry", SmallCaps, "Á", "ᴀ\u0301"},
		{"uncovered base keeps rune", Greek, "á", "á"},
		{"multi rune target", Morse, "sos", "...---..."},
		{"braille digit", Braille, "1", "⠼⠁"},
		{"upside down per char", UpsideDown, "ab", "ɐq"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Apply(tt.in); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewMapper(t *testing.T) {
	f := NewMapper(Bubbles)
	if got, want := f("hi"), Bubbles.Apply("hi"); got != want {
		t.Errorf("mapper = %q, want %q", got, want)
	}
}

func TestLookup(t *testing.T) {
	if got, ok := Runic.Lookup('a'); !ok || got != "ᚨ" {
		t.Errorf("Lookup('a') = %q, %v", got, ok)
	}
	if _, ok := Runic.Lookup('A'); ok {
		t.Error("Runic should not cover uppercase")
	}
	if Morse.Len() != 37 {
		t.Errorf("Morse.Len() = %d, want 37", Morse.Len())
	}
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		in    rune
		base  rune
		marks string
		ok    bool
	}{
		{'a', 0, "", false},
		{'ü', 'u', "\u0308", true},
		{'ǖ', 'u', "\u0308\u0304", true},
		{'ø', 0, "", false},
		{'\u0301', 0, "", false},
	}
	for _, tt := range tests {
		base, marks, ok := decompose(tt.in)
		if base != tt.base || marks != tt.marks || ok != tt.ok {
			t.Errorf("decompose(%q) = %q, %q, %v; want %q, %q, %v",
				tt.in, base, marks, ok, tt.base, tt.marks, tt.ok)
		}
	}
}
