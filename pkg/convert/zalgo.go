package convert

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Source supplies random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Global is the process-wide generator used by the one-argument forms.
var Global Source = globalSource{}

var (
	marksAbove = []rune{
		'\u030d', '\u030e', '\u0304', '\u0305', '\u033f', '\u0311', '\u0306', '\u0310',
		'\u0352', '\u0357', '\u0351', '\u0307', '\u0308', '\u030a', '\u0342', '\u0343',
		'\u0344', '\u034a', '\u034b', '\u034c', '\u0303', '\u0302', '\u030c', '\u0350',
		'\u0300', '\u0301', '\u030b', '\u030f', '\u0312', '\u0313', '\u0314', '\u033d',
		'\u0309', '\u0363', '\u0364', '\u0365', '\u0366', '\u0367', '\u0368', '\u0369',
		'\u036a', '\u036b', '\u036c', '\u036d', '\u036e', '\u036f', '\u033e', '\u035b',
		'\u0346', '\u031a',
	}
	marksBelow = []rune{
		'\u0316', '\u0317', '\u0318', '\u0319', '\u031c', '\u031d', '\u031e', '\u031f',
		'\u0320', '\u0324', '\u0325', '\u0326', '\u0329', '\u032a', '\u032b', '\u032c',
		'\u032d', '\u032e', '\u032f', '\u0330', '\u0331', '\u0332', '\u0333', '\u0339',
		'\u033a', '\u033b', '\u033c', '\u0345', '\u0347', '\u0348', '\u0349', '\u034d',
		'\u034e', '\u0353', '\u0354', '\u0355', '\u0356', '\u0359', '\u035a', '\u0323',
	}
)

// Zalgo adds zero to two combining marks to every non-space character.
// Output differs between calls.
func Zalgo(text string) string { return ZalgoWith(Global, text) }

// ZalgoWith is Zalgo drawing from src. The first mark comes from the set
// drawn above the letter, the second from the set drawn below it.
func ZalgoWith(src Source, text string) string {
	return noise(text, func(b *strings.Builder) {
		n := src.IntN(3)
		if n >= 1 {
			b.WriteRune(marksAbove[src.IntN(len(marksAbove))])
		}
		if n == 2 {
			b.WriteRune(marksBelow[src.IntN(len(marksBelow))])
		}
	})
}

// HorrorZalgo adds exactly three below marks to every non-space character.
func HorrorZalgo(text string) string { return HorrorZalgoWith(Global, text) }

// HorrorZalgoWith is HorrorZalgo drawing from src.
func HorrorZalgoWith(src Source, text string) string {
	return noise(text, func(b *strings.Builder) {
		for range 3 {
			b.WriteRune(marksBelow[src.IntN(len(marksBelow))])
		}
	})
}

func noise(text string, add func(*strings.Builder)) string {
	var b strings.Builder
	b.Grow(len(text) * 3)
	for _, c := range Graphemes(text) {
		b.WriteString(c)
		if r, _ := utf8.DecodeRuneInString(c); !unicode.IsSpace(r) {
			add(&b)
		}
	}
	return b.String()
}
