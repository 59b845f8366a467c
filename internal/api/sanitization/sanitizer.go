package sanitization

import (
	"strings"
)

var (
	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
)

// SanitizeField normalizes line endings, strips control characters other than
// tab and newline, and trims surrounding whitespace
func SanitizeField(input string) string {
	normalized := lineEndings.Replace(input)

	cleaned := strings.Map(func(r rune) rune {
		if isStrippedControl(r) {
			return -1
		}
		return r
	}, normalized)

	return strings.TrimSpace(cleaned)
}

// isStrippedControl matches U+0000-U+0008, U+000B, U+000C, U+000E-U+001F and U+007F
func isStrippedControl(r rune) bool {
	switch {
	case r == '\t', r == '\n':
		return false
	case r < 0x20:
		return r != '\r'
	case r == 0x7f:
		return true
	}
	return false
}

// EscapeHTML escapes the five HTML-significant characters
func EscapeHTML(input string) string {
	return htmlEscaper.Replace(input)
}
