package mrz

import (
	"log/slog"
	"strings"
)

// Normalize uppercases text and maps every character outside the MRZ alphabet
// (punctuation, diacritics, spaces) to the filler '<'.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToUpper(text) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '<':
			b.WriteRune(r)
		default:
			b.WriteByte('<')
		}
	}
	return b.String()
}

// Pad right-fills text with '<' to width. Longer input is cut to width: the
// overflow is dropped with a warning, mirroring the fixed field widths of a
// printed zone.
func Pad(text string, width int) string {
	if len(text) > width {
		slog.Warn("mrz field truncated", "width", width, "dropped", text[width:])
		return text[:width]
	}
	return text + strings.Repeat("<", width-len(text))
}

// isMRZChar reports whether c may appear in a stored field value.
func isMRZChar(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '<' || c == ' '
}

func validField(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isMRZChar(s[i]) {
			return false
		}
	}
	return true
}

// trimFiller strips trailing filler characters from a parsed field.
func trimFiller(s string) string {
	return strings.TrimRight(s, "<")
}
