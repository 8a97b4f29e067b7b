package style

import (
	"slices"

	"github.com/matzehuels/fontify/pkg/convert"
)

const (
	hi  = ReadabilityHigh
	mid = ReadabilityMedium
	lo  = ReadabilityLow
)

const (
	catAll      = CategoryAll
	catCursive  = CategoryCursive
	catGothic   = CategoryGothic
	catTattoo   = CategoryTattoo
	catGraffiti = CategoryGraffiti
	catFacebook = CategoryFacebook
	catAmino    = CategoryAmino
)

func def(id, name string, r Readability, f func(string) string, cats ...Category) Style {
	return Style{ID: id, Name: name, Categories: cats, Readability: r, Converter: ConverterFunc(f)}
}

// wrap frames the output of f between left and right, one space on each side.
func wrap(left, right string, f func(string) string) func(string) string {
	frame := convert.Wrap(left, right)
	return func(t string) string { return frame(f(t)) }
}

func framed(sym string, f func(string) string) func(string) string {
	return wrap(sym, sym, f)
}

func spaced(f func(string) string) func(string) string {
	return func(t string) string { return convert.Interleave(f(t), " ") }
}

func overlaid(overlay, f func(string) string) func(string) string {
	return func(t string) string { return overlay(f(t)) }
}

func identity(t string) string { return t }

// romanOrSerif writes numbers as Roman numerals and falls back to bold
// serif when the text has nothing to convert.
func romanOrSerif(t string) string {
	if r := convert.RomanNumerals(t); r != t {
		return r
	}
	return convert.SerifBold(t)
}

// catalog builds the full style list in presentation order. src feeds the
// Zalgo styles.
func catalog(src convert.Source) []Style {
	zalgo := func(t string) string { return convert.ZalgoWith(src, t) }
	horror := func(t string) string { return convert.HorrorZalgoWith(src, t) }

	// Cursive essentials.
	cursive := []Style{
		def("script-normal", "Cursiva (Normal)", hi, convert.Script, catAll, catCursive, catFacebook),
		def("script-bold", "Cursiva (Negrita)", hi, convert.BoldScript, catAll, catCursive, catFacebook, catTattoo),
		def("cursive-fraktur", "Gótica (Fraktur)", mid, convert.Fraktur, catCursive, catGothic),
		def("cursive-serif-italic", "Itálica (Serif)", hi, convert.SerifItalic, catCursive, catFacebook),
		def("cursive-sans-italic", "Itálica (Sans)", hi, convert.SansItalic, catCursive, catFacebook),
		def("cursive-double", "Doble Línea (Outline)", mid, convert.DoubleStruck, catCursive, catFacebook, catTattoo),
	}

	// Facebook essentials.
	facebook := []Style{
		def("fb-bold-sans", "Negrita (Sans)", hi, convert.SansBold, catFacebook),
		def("fb-bold-serif", "Negrita (Serif)", hi, convert.SerifBold, catFacebook),
		def("fb-italic-sans", "Cursiva (Sans)", hi, convert.SansItalic, catFacebook),
		def("fb-italic-serif", "Cursiva (Serif)", hi, convert.SerifItalic, catFacebook),
		def("fb-bold-italic", "Negrita Cursiva", hi, convert.SerifBoldItalic, catFacebook),
		def("fb-script", "Manuscrita (Script)", hi, convert.Script, catFacebook, catCursive),
		def("fb-script-bold", "Manuscrita Negrita", hi, convert.BoldScript, catFacebook, catCursive),
		def("fb-gothic", "Gótica (Fraktur)", mid, convert.Fraktur, catFacebook, catGothic),
		def("fb-gothic-bold", "Gótica Negrita", mid, convert.BoldFraktur, catFacebook, catGothic),
		def("fb-double", "Doble Trazo (Outline)", mid, convert.DoubleStruck, catFacebook, catCursive),
		def("fb-circle-b", "Círculos Negros", hi, convert.BlackBubbles, catFacebook),
		def("fb-circle-w", "Círculos Blancos", hi, convert.Bubbles, catFacebook),
		def("fb-square-b", "Cuadrados Negros", hi, convert.BlackSquare, catFacebook),
		def("fb-square-w", "Cuadrados Blancos", mid, convert.Square, catFacebook),
		def("fb-parenthesis", "Paréntesis", mid, convert.Parenthesized, catFacebook),
		def("fb-diamonds-int", "Diamantes (Decorado)", hi, func(t string) string {
			return convert.Interleave(t, " ⟡ ")
		}, catFacebook),
		def("fb-smallcaps", "Mayúsculas Pequeñas", hi, convert.SmallCaps, catFacebook, catCursive),
		def("fb-wide", "Espaciado (Vaporwave)", hi, convert.Wide, catFacebook, catAmino),
		def("fb-upside", "Invertido (Al Revés)", lo, convert.UpsideDown, catFacebook),
		def("fb-mono", "Máquina de Escribir", hi, convert.Monospace, catFacebook),
	}

	// Facebook specific requests.
	requests := []Style{
		def("fb-req-strike", "Tachado (Texto)", mid, convert.Strikethrough, catFacebook),
		def("fb-req-maldito", "Texto Maldito (Zalgo)", lo, horror, catFacebook, catGothic),
		def("fb-req-under", "Subrayado", hi, convert.Underline, catFacebook),
		def("fb-req-ruso", "Estilo Ruso / Soviético", mid, convert.PseudoCyrillic, catFacebook),
		def("fb-req-griego", "Estilo Griego", mid, wrap("▀▄▀▄", "▄▀▄▀", convert.Greek), catFacebook),
		def("fb-req-asian", "Estilo Asiático", lo, convert.Spaced, catFacebook),
		def("fb-req-super", "Superíndice", mid, convert.Superscript, catFacebook),
		def("fb-req-sub", "Subíndice", mid, convert.Subscript, catFacebook),
		def("fb-req-money", "Moneda / Dinero", mid, convert.Currency, catFacebook),
		def("fb-req-paren", "Paréntesis", mid, convert.Parenthesized, catFacebook),
		def("fb-req-invis", "Espacio Invisible", lo, convert.Invisible, catFacebook),
	}

	// Gothic collection.
	gothic := []Style{
		def("got-core-bold", "Gótica Negrita (Original)", mid, convert.BoldFraktur, catGothic, catTattoo),
		def("got-core-normal", "Gótica Normal (Fraktur)", mid, convert.Fraktur, catGothic, catTattoo),
		def("got-script", "Cursiva Gótica (Bold)", hi, convert.BoldScript, catGothic),
		def("got-outline", "Gótica Hueca (Doble)", mid, convert.DoubleStruck, catGothic),
		def("got-dec-wings", "Gótica Alada ꧁꧂", mid, wrap("꧁", "꧂", convert.BoldFraktur), catGothic),
		def("got-dec-dark", "Gótica Dark ☠", mid, framed("☠", convert.BoldFraktur), catGothic),
		def("got-dec-warrior", "Gótica Guerrera ⚔️", mid, framed("⚔️", convert.BoldFraktur), catGothic),
		def("got-dec-demon", "Gótica Demoníaca ψ", mid, framed("ψ", convert.Fraktur), catGothic),
		def("got-dec-magic", "Gótica Mágica ✴", mid, framed("✴", convert.BoldFraktur), catGothic),
		def("got-dec-vamp", "Gótica Vampiro 🦇", mid, framed("🦇", convert.BoldFraktur), catGothic),
		def("got-dec-rock", "Gótica Rock 🤘", mid, framed("🤘", convert.BoldFraktur), catGothic),
		def("got-chains", "Gótica Encadenada", mid, framed("⛓", convert.BoldFraktur), catGothic),
		def("got-spaced", "Gótica Espaciada", mid, spaced(convert.BoldFraktur), catGothic),
	}

	// Tattoo essentials.
	tattoo := []Style{
		def("tat-gothic-oe", "Gótica (Old English)", mid, convert.BoldFraktur, catTattoo, catGothic),
		def("tat-chicano", "Chicano (Gangsta)", mid, framed("⚜️", convert.BoldFraktur), catTattoo),
		def("tat-medieval", "Medieval (Clásica)", mid, convert.Fraktur, catTattoo, catGothic),
		def("tat-script-bold", "Caligrafía (Script)", hi, convert.BoldScript, catTattoo, catCursive),
		def("tat-script-fine", "Manuscrita (Fina)", hi, convert.Script, catTattoo, catCursive),
		def("tat-cursive-elegant", "Cursiva Elegante", hi, framed("~", convert.BoldScript), catTattoo),
		def("tat-typewriter", "Máquina de Escribir", hi, convert.Monospace, catTattoo),
		def("tat-minimal", "Minimalista (Espaciada)", hi, spaced(convert.Monospace), catTattoo),
		def("tat-oldschool", "Old School (Outline)", mid, convert.DoubleStruck, catTattoo),
		def("tat-sailor", "Marinero (Anchor)", mid, framed("⚓", convert.DoubleStruck), catTattoo),
		def("tat-love", "Amor (Corazón)", mid, framed("♥", convert.DoubleStruck), catTattoo),
		def("tat-serif-bold", "Romana (Serif)", hi, convert.SerifBold, catTattoo),
		def("tat-inscription", "Inscripción (Piedra)", hi, convert.SmallCaps, catTattoo),
		def("tat-roman-num", "Números Romanos (Fechas)", hi, romanOrSerif, catTattoo),
		def("tat-runic", "Runas Vikingas", lo, convert.Runic, catTattoo),
	}

	// Tattoo: graffiti, sci-fi, viking, hand-poked and faux foreign.
	tattooThemes := []Style{
		def("tat-graf-bubble", "Graffiti Burbuja", hi, convert.BlackBubbles, catTattoo, catGraffiti),
		def("tat-graf-block", "Graffiti Bloques", hi, convert.BlackSquare, catTattoo, catGraffiti),
		def("tat-graf-tag", "Tag Callejero", hi, framed("★", convert.SansBold), catTattoo, catGraffiti),
		def("tat-graf-drip", "Efecto Goteo", lo, horror, catTattoo, catGraffiti),

		def("tat-sci-orbit", "Futurista (Orbitron)", hi, convert.SmallCaps, catTattoo),
		def("tat-sci-mono", "Cyberpunk (Código)", hi, convert.Monospace, catTattoo),
		def("tat-sci-glitch", "Glitch (Falla)", lo, zalgo, catTattoo),
		def("tat-sci-vapor", "Vaporwave (VCR)", hi, convert.Wide, catTattoo),

		def("tat-vik-runes", "Runas Nórdicas", lo, convert.Runic, catTattoo),
		def("tat-vik-axe", "Vikingo (Hacha)", mid, framed("⚔️", convert.Fraktur), catTattoo),
		def("tat-vik-stone", "Tallado en Piedra", hi, convert.SmallCaps, catTattoo),

		def("tat-hp-messy", "Ignorant Style", hi, convert.CaseLower.Apply, catTattoo),
		def("tat-hp-child", "Infantil (Garabato)", hi, convert.Monospace, catTattoo),
		def("tat-hp-scrawl", "Manuscrita Rápida", hi, convert.Script, catTattoo),

		def("tat-faux-jap", "Estilo Japonés", lo, convert.Spaced, catTattoo),
		def("tat-faux-greek", "Estilo Griego", mid, convert.Greek, catTattoo),
		def("tat-faux-rus", "Estilo Ruso", mid, convert.PseudoCyrillic, catTattoo),
	}

	// Core handwriting variants.
	handwriting := []Style{
		def("hand-dotted", "Manuscrita Punteada", mid, overlaid(convert.Dotted, convert.Script), catCursive, catTattoo),
		def("hand-under", "Cursiva Subrayada", hi, overlaid(convert.Underline, convert.Script), catCursive),
		def("hand-strike", "Cursiva Tachada", mid, overlaid(convert.Strikethrough, convert.Script), catCursive),
		def("hand-wide", "Cursiva Espaciada", hi, spaced(convert.Script), catCursive),
	}

	// Aesthetic and kawaii additions.
	aesthetic := []Style{
		def("aes-typewriter", "Máquina de Escribir", hi, convert.Monospace, catCursive),
		def("aes-smallcaps", "Mayúsculas Pequeñas", hi, convert.SmallCaps, catCursive),
		def("aes-vapor", "Vaporwave (Ancho)", hi, convert.Wide, catCursive),
		def("aes-circle-w", "Burbujas (Blancas)", hi, convert.Bubbles, catCursive),
		def("aes-circle-b", "Burbujas (Negras)", hi, convert.BlackBubbles, catCursive),
		def("aes-square-w", "Cuadrados (Blancos)", mid, convert.Square, catCursive),
		def("aes-square-b", "Cuadrados (Negros)", hi, convert.BlackSquare, catCursive),
		def("aes-strike", "Tachado (Texto)", mid, convert.Strikethrough, catCursive),
		def("aes-flip", "Al Revés", lo, convert.UpsideDown, catCursive),
		def("kaw-hearts-i", "Corazones (Intercalado)", mid, func(t string) string {
			return convert.Interleave(t, "♥")
		}, catCursive, catAmino),
		def("kaw-wings", "Alas de Ángel", mid, wrap("꧁༒", "༒꧂", identity), catCursive, catAmino),
		def("kaw-coquette", "Coquette Bow", mid, wrap("⋆ ˚｡⋆୨୧", "୨୧⋆ ˚｡⋆", identity), catCursive, catAmino),
		def("kaw-stars-wrap", "Estrellas (Decorado)", hi, framed("★", identity), catCursive),
	}

	// Facebook creative.
	creative := []Style{
		def("fb-flags", "Letras Azules (Regional)", hi, convert.Regional, catFacebook),
		def("fb-mirror", "Espejo", lo, convert.Reverse, catFacebook),
		def("fb-slash", "Barrado", mid, convert.Slash, catFacebook),
		def("fb-lightning", "Eléctrico", mid, convert.Lightning, catFacebook),
		def("fb-braille", "Braille", lo, convert.Braille, catFacebook),
		def("fb-morse", "Morse", lo, convert.Morse, catFacebook),
		def("fb-binary", "Binario", lo, convert.Binary, catFacebook),
		def("fb-cloud", "Nube Aesthetic", hi, framed("☁", identity), catFacebook),
		def("fb-stars", "Estrellas Aesthetic", hi, framed("★", identity), catFacebook),
	}

	// Exotic and gamer.
	gamer := []Style{
		def("game-sniper", "Sniper Mode ︻デ═一", hi, func(t string) string {
			return convert.Surround(t, "︻デ═一 ", "")
		}, catGraffiti),
		def("game-sword", "Warrior ⚔️", mid, framed("⚔️", convert.BoldFraktur), catGraffiti),
		def("game-invis", "Texto Invisible", lo, convert.Invisible, catFacebook),
		def("exotic-jap", "Estilo Japonés", lo, convert.Spaced, catFacebook, catGraffiti),
		def("exotic-rus", "Estilo Ruso", mid, convert.PseudoCyrillic, catFacebook),
		def("exotic-cher", "Cherokee", mid, convert.Cherokee, catFacebook),
		def("glitch-zalgo", "Glitch Zalgo", lo, zalgo, catGothic, catGraffiti),
		def("glitch-horror", "Horror Melt", lo, horror, catGothic, catTattoo),
		def("stack-text", "Apilado (Stacked)", lo, convert.Stacked, catFacebook),
		def("sub-text", "Subíndice", mid, convert.Subscript, catFacebook),
		def("super-text", "Superíndice", mid, convert.Superscript, catFacebook),
	}

	return slices.Concat(cursive, facebook, requests, gothic, tattoo, tattooThemes,
		handwriting, aesthetic, creative, generated(), gamer)
}
