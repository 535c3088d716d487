package format

import "unicode/utf8"

// Ellipsis is appended by Truncate.
const Ellipsis = "..."

// Truncate returns text unchanged when it fits in maxLength runes,
// otherwise its first maxLength runes followed by Ellipsis.
func Truncate(text string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxLength]) + Ellipsis
}
