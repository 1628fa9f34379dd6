package formatter

import "strings"

// PadRight pads a string to a minimum width, truncating with an ellipsis
// if it is too long. Widths are in runes, not bytes.
func PadRight(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}

// Truncate shortens a string to at most width runes, appending an ellipsis.
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
