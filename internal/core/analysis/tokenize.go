package analysis

import (
	"strings"
	"unicode"
)

// isSpace reports whether r separates whitespace tokens.
// The ASCII information separators U+001C..U+001F count as whitespace
// alongside the Unicode White_Space set.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// splitWhitespace splits text on runs of whitespace, dropping empty tokens.
func splitWhitespace(text string) []string {
	return strings.FieldsFunc(text, isSpace)
}

// isBlank reports whether s is empty after trimming whitespace.
func isBlank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}

// isWordRune reports whether r belongs to a word-boundary token.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// wordTokens lower-cases text and returns its maximal runs of word runes
// in order of appearance.
func wordTokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
}
