// Package convert implements the text transforms that are not plain
// one-to-one table lookups: combining-mark noise (Zalgo), upside-down and
// mirror reversal, Roman numerals, Binary/Morse/Braille encodings, invisible
// filler, overlays, and the interleave/surround decorators used to build
// decorated styles. It also wraps every [charmap] table as a ready-to-use
// converter and provides case modes and plain-text folding.
//
// Unless noted otherwise a "character" is an extended grapheme cluster, so
// an accented letter produced by the mapper (base plus combining mark) moves
// as a unit when text is reversed, interleaved or overlaid.
//
// Every function here is pure except the Zalgo family, which draws from a
// [Source]. The one-argument forms use the global math/rand/v2 generator;
// tests pass a seeded *rand.Rand to [ZalgoWith] for reproducible output.
// Converters never fail: characters they cannot transform pass through.
package convert
