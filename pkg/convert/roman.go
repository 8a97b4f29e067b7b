package convert

import (
	"strconv"
	"strings"
)

var romanSteps = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// MaxRoman is the largest value written without overline notation.
const MaxRoman = 3999

// Roman writes n in greedy subtractive notation. It reports false outside
// [1, MaxRoman].
func Roman(n int) (string, bool) {
	if n < 1 || n > MaxRoman {
		return "", false
	}
	var b strings.Builder
	for _, s := range romanSteps {
		for n >= s.value {
			b.WriteString(s.symbol)
			n -= s.value
		}
	}
	return b.String(), true
}

// RomanNumerals replaces every maximal run of ASCII digits whose value lies
// in [1, MaxRoman] with its Roman numeral. Other runs and all non-digit text
// are kept. The output has no convertible runs left, so applying it twice
// changes nothing.
func RomanNumerals(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if !isDigit(text[i]) {
			j := i + 1
			for j < len(text) && !isDigit(text[j]) {
				j++
			}
			b.WriteString(text[i:j])
			i = j
			continue
		}
		j := i + 1
		for j < len(text) && isDigit(text[j]) {
			j++
		}
		run := text[i:j]
		n, err := strconv.Atoi(run)
		if r, ok := Roman(n); err == nil && ok {
			b.WriteString(r)
		} else {
			b.WriteString(run)
		}
		i = j
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
