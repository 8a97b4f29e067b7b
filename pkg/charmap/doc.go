// Package charmap holds the Unicode substitution tables behind fontify's
// styles and the mapper that applies them.
//
// Each table pairs a source alphabet (ASCII letters, digits, or a subset)
// with index-aligned replacements:
//
//	charmap.Script.Apply("Hola")      // "ℋℴ𝓁𝒶"
//	charmap.Bubbles.Apply("abc 123")  // "ⓐⓑⓒ ①②③"
//
// Characters a table does not cover pass through unchanged, except accented
// letters whose base the table does cover: those keep their accent as a
// combining mark after the replacement, so "canción" stays readable in every
// alphabet.
//
// Tables are built once at package init and never mutated. [All] lists them
// for integrity checks.
package charmap
