// Package pkg provides the libraries behind fontify, a generator of fancy
// Unicode letters.
//
// # Overview
//
// Fontify maps ordinary text onto the many alternative alphabets Unicode
// carries (mathematical script and fraktur, circled and squared letters,
// small capitals, look-alike scripts) and adds overlays, frames and
// decorations. The pkg directory is organized bottom-up:
//
//  1. [charmap] - Substitution tables and the mapper that applies them
//  2. [convert] - Converters built on the tables, plus algorithmic ones
//     (Zalgo, Roman numerals, Morse, binary, mirroring, folding back)
//  3. [style] - The catalog: named, categorized, rated styles and decorations
//  4. [symbols] - Symbol collections and placeholder phrases
//  5. [pipeline] - Filter, order and render a text through many styles
//  6. [state], [config] - Persisted pins and history, user settings
//
// Cross-cutting packages: [errors] (coded errors), [observability] (event
// hooks) and [buildinfo] (version stamping).
//
// # Data flow
//
//	text
//	  ↓
//	[pipeline] Runner.Run (category, readability, search, pins)
//	  ↓
//	case transform → [style] Style.Apply → Decoration.Apply
//	  ↓
//	[]pipeline.Item
//
// # Quick Start
//
//	s, _ := style.Default().Lookup("script-normal")
//	fmt.Println(s.Apply("Hola")) // ℋℴ𝓁𝒶
//
//	res, _ := pipeline.NewRunner(nil, nil).Run(ctx, "Hola", pipeline.Options{
//	    Category:   style.CategoryGothic,
//	    Decoration: style.DecorationBats,
//	})
//
// [charmap]: github.com/matzehuels/fontify/pkg/charmap
// [convert]: github.com/matzehuels/fontify/pkg/convert
// [style]: github.com/matzehuels/fontify/pkg/style
// [symbols]: github.com/matzehuels/fontify/pkg/symbols
// [pipeline]: github.com/matzehuels/fontify/pkg/pipeline
// [state]: github.com/matzehuels/fontify/pkg/state
// [config]: github.com/matzehuels/fontify/pkg/config
// [errors]: github.com/matzehuels/fontify/pkg/errors
// [observability]: github.com/matzehuels/fontify/pkg/observability
// [buildinfo]: github.com/matzehuels/fontify/pkg/buildinfo
package pkg
