// Package format provides shared string and time formatting utilities.
package format

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// VisibleWidth returns the display width of a string in terminal columns,
// ignoring ANSI escape sequences and accounting for wide runes.
func VisibleWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}

// PadToWidth pads a string with spaces to exactly width visible columns.
// Strings already at or beyond width are returned unchanged.
func PadToWidth(s string, width int) string {
	visible := VisibleWidth(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// TruncateToWidth cuts a string to at most width visible columns, preserving
// ANSI escape sequences.
func TruncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.String(s, uint(width))
}

// PadOrTruncate forces a string to exactly width visible columns.
func PadOrTruncate(s string, width int) string {
	if VisibleWidth(s) > width {
		return TruncateToWidth(s, width)
	}
	return PadToWidth(s, width)
}

// TruncateRunes truncates a string to maxLen runes (Unicode-aware).
// Returns the full string if it's shorter than maxLen runes.
func TruncateRunes(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
