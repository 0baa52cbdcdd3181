package layout

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// DefaultEllipsis marks truncated text.
const DefaultEllipsis = "..."

// Truncation floors and caps. Floors keep fields readable at small widths;
// the wide cap keeps very long lines readable on large displays.
const (
	compactFieldFloor = 15
	wideFieldCap      = 120

	// fieldOverhead is the fixed column cost around a text field in normal
	// and verbose modes (outer margins and separators).
	fieldOverhead = 4
)

// breakpointFieldFloors is the minimum field length by breakpoint in normal
// and verbose modes.
var breakpointFieldFloors = [numBreakpoints]int{
	BreakpointNarrow:  20,
	BreakpointCompact: 30,
	BreakpointNormal:  40,
	BreakpointWide:    40,
}

// MaxFieldLength computes the maximum allowable length for a text field given
// the total line width and the widths already consumed by sibling content.
//
// In compact mode the field gets whatever the siblings leave over, floored at
// a compact minimum. In normal and verbose modes the field gets the line
// minus a fixed overhead, floored per breakpoint and capped for readability
// at the wide breakpoint.
func MaxFieldLength(totalWidth int, bp Breakpoint, mode DisplayMode, reserved ...int) int {
	if mode == ModeCompact {
		used := 0
		for _, r := range reserved {
			used += r
		}
		return maxInt(compactFieldFloor, totalWidth-used)
	}

	floor := breakpointFieldFloors[clampBreakpoint(bp)]
	length := maxInt(floor, totalWidth-fieldOverhead)
	if bp == BreakpointWide && length > wideFieldCap {
		length = wideFieldCap
	}
	return length
}

// Truncate shortens text to at most maxLength display columns, appending
// "..." when content was removed. See TruncateWith.
func Truncate(text string, maxLength int) string {
	return TruncateWith(text, maxLength, DefaultEllipsis)
}

// TruncateWith shortens text to at most maxLength display columns. Text that
// already fits is returned unchanged. Otherwise the text is cut so that the
// ellipsis fits within maxLength, preferring the nearest word boundary when
// one falls within the last 40% of the cut. When maxLength leaves no room for
// the ellipsis the text is hard-cut without one.
//
// The result never exceeds maxLength columns, and re-truncating the result
// with the same maxLength returns it unchanged.
func TruncateWith(text string, maxLength int, ellipsis string) string {
	if maxLength <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= maxLength {
		return text
	}

	cut := maxLength - runewidth.StringWidth(ellipsis)
	if cut <= 0 {
		return cutToWidth(text, maxLength)
	}

	head := cutToWidth(text, cut)

	// Prefer a word boundary when one is close enough to the cut point.
	if idx := lastBoundary(head); idx >= 0 {
		if runewidth.StringWidth(head[:idx])*10 >= cut*6 {
			head = strings.TrimRightFunc(head[:idx], unicode.IsSpace)
		}
	}

	return head + ellipsis
}

// cutToWidth returns the longest prefix of s that fits in width columns.
func cutToWidth(s string, width int) string {
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			return s[:i]
		}
		w += rw
	}
	return s
}

// lastBoundary returns the byte index of the last whitespace run in s, or -1.
func lastBoundary(s string) int {
	return strings.LastIndexFunc(s, unicode.IsSpace)
}

// SubtaskLimit computes how many subtask lines may render for the given
// terminal height. Verbose mode scales with height up to a hard cap; compact
// mode and narrow terminals show none; other modes show a small window.
func SubtaskLimit(height int, mode DisplayMode, bp Breakpoint) int {
	if mode == ModeVerbose {
		return clampInt(height/3, 3, 15)
	}
	if mode == ModeCompact || bp == BreakpointNarrow {
		return 0
	}
	return clampInt(height/4, 2, 5)
}

func clampBreakpoint(bp Breakpoint) Breakpoint {
	if bp < 0 {
		return 0
	}
	if bp >= numBreakpoints {
		return numBreakpoints - 1
	}
	return bp
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
