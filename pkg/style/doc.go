// Package style defines the catalog of named text styles and the category
// filter that selects among them.
//
// A [Style] pairs a stable id with a display name, category tags, a
// readability rating and a [Converter]. The [Registry] holds every style in
// presentation order: hand-picked lists first, then the generated
// symbol-wrapped and bracket-wrapped variants, then the exotic extras.
//
//	r := style.Default()
//	s, _ := r.Lookup("script-normal")
//	s.Apply("Hola") // "ℋℴ𝓁𝒶"
//
//	for _, s := range style.ByCategory(style.CategoryGothic) {
//	    fmt.Println(s.Name, s.Apply("Memento Mori"))
//	}
//
// Ids are unique and never change between releases, so callers may persist
// them (pins) and resolve them later with [Registry.Lookup].
//
// # Concurrency
//
// [Default] is built once and is read-only afterwards; any number of
// goroutines may use it. A registry built with [WithSource] shares that
// source among its Zalgo styles and is only as safe as the source is
// (*rand.Rand is not safe for concurrent use).
//
// # Decorations
//
// [Decoration] is an optional frame applied after a style, with a
// per-category cycle from [DecorationsFor].
package style
