package errors

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// MaxTextLength is the longest input, in runes, accepted by ValidateText.
// Every style renders the whole input, so the catalog multiplies its size.
const MaxTextLength = 2000

// ValidateText validates user input before it is rendered.
//
// The rules are:
//   - Must be valid UTF-8
//   - Maximum length of MaxTextLength runes
//   - No null bytes or control characters other than tab, newline and carriage return
//
// Empty text is valid: renderers substitute a placeholder.
func ValidateText(text string) error {
	if !utf8.ValidString(text) {
		return New(ErrCodeInvalidInput, "text is not valid UTF-8")
	}

	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return New(ErrCodeInvalidInput, "text too long (%d characters, max %d)", n, MaxTextLength)
	}

	for _, r := range text {
		switch r {
		case '\t', '\n', '\r':
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "text contains invalid control character %U", r)
		}
	}

	return nil
}

// styleIDRegex matches catalog style ids such as "script-normal" or "tat-dec-f-3".
var styleIDRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateStyleID validates a style id, typically one restored from persisted pins.
func ValidateStyleID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidStyleID, "style id cannot be empty")
	}

	const maxIDLength = 64
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidStyleID, "style id too long (max %d characters)", maxIDLength)
	}

	if !styleIDRegex.MatchString(id) {
		return New(ErrCodeInvalidStyleID, "invalid style id: %q", id)
	}

	return nil
}
