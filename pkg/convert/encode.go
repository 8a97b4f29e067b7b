package convert

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/matzehuels/fontify/pkg/charmap"
)

// Binary writes every UTF-16 code unit of text as an 8-bit-minimum binary
// number, space separated. Characters above U+FFFF come out as two
// surrogate units. The result is not meant to be decoded.
func Binary(text string) string {
	units := utf16.Encode([]rune(text))
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = fmt.Sprintf("%08b", u)
	}
	return strings.Join(parts, " ")
}

// Morse encodes letters and digits in International Morse code with "/"
// for word gaps. Symbols are space separated; anything without a code is
// emitted literally in its slot.
func Morse(text string) string {
	rs := []rune(strings.ToLower(text))
	parts := make([]string, len(rs))
	for i, r := range rs {
		if code, ok := charmap.Morse.Lookup(r); ok {
			parts[i] = code
		} else {
			parts[i] = string(r)
		}
	}
	return strings.Join(parts, " ")
}

// Braille transcribes lowercase letters to Grade 1 cells. Each digit is
// written as the number sign followed by the letter cell a through j.
func Braille(text string) string {
	return charmap.Braille.Apply(strings.ToLower(text))
}
