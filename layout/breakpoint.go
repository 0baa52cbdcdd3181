// Package layout implements the responsive terminal layout engine: breakpoint
// classification, display-mode reconciliation, priority-based segment
// allocation under a width budget, and width-aware text truncation.
//
// The engine supports 4 width breakpoints:
//   - Narrow  (< 60 cols):  single critical status only, aggressive truncation
//   - Compact (< 100 cols): critical + important segments, abbreviated labels
//   - Normal  (< 160 cols): full segment set, moderate truncation
//   - Wide    (>= 160 cols): full segment set, readability-capped text
//
// All computations are pure functions of their inputs; the only mutable state
// lives in Observer, which caches the last terminal size sample.
package layout

import (
	"fmt"
	"sort"
)

// Breakpoint represents a discrete terminal-width class. Values are ordered:
// a numerically larger breakpoint always corresponds to a wider terminal.
type Breakpoint int

const (
	// BreakpointNarrow is for terminals narrower than 60 columns.
	BreakpointNarrow Breakpoint = iota
	// BreakpointCompact is for terminals between 60 and 99 columns.
	BreakpointCompact
	// BreakpointNormal is for terminals between 100 and 159 columns.
	BreakpointNormal
	// BreakpointWide is for terminals 160 columns and wider.
	BreakpointWide

	numBreakpoints = iota
)

// String returns the human-readable name of the breakpoint.
func (b Breakpoint) String() string {
	switch b {
	case BreakpointNarrow:
		return "narrow"
	case BreakpointCompact:
		return "compact"
	case BreakpointNormal:
		return "normal"
	case BreakpointWide:
		return "wide"
	default:
		return "unknown"
	}
}

// ParseBreakpoint converts a breakpoint name to its Breakpoint value.
func ParseBreakpoint(s string) (Breakpoint, error) {
	switch s {
	case "narrow":
		return BreakpointNarrow, nil
	case "compact":
		return BreakpointCompact, nil
	case "normal":
		return BreakpointNormal, nil
	case "wide":
		return BreakpointWide, nil
	default:
		return 0, fmt.Errorf("unknown breakpoint %q", s)
	}
}

// Threshold pairs a breakpoint with the smallest width that selects it.
type Threshold struct {
	Breakpoint Breakpoint
	MinWidth   int
}

// ThresholdTable maps terminal widths to breakpoints. A valid table is
// immutable after construction; Classify is a total, deterministic function
// of width.
type ThresholdTable struct {
	thresholds []Threshold
}

// NewThresholdTable builds a validated threshold table. The entries must be
// ordered by strictly increasing MinWidth and strictly increasing Breakpoint,
// and the first entry must have MinWidth 0 so that every width (including
// degenerate zero or negative widths) classifies to some tier.
func NewThresholdTable(thresholds []Threshold) (ThresholdTable, error) {
	if len(thresholds) == 0 {
		return ThresholdTable{}, fmt.Errorf("threshold table is empty")
	}
	if thresholds[0].MinWidth != 0 {
		return ThresholdTable{}, fmt.Errorf("first threshold must have min width 0, got %d", thresholds[0].MinWidth)
	}
	for i, th := range thresholds {
		if th.Breakpoint < 0 || th.Breakpoint >= numBreakpoints {
			return ThresholdTable{}, fmt.Errorf("threshold[%d] has invalid breakpoint %d", i, th.Breakpoint)
		}
		if i == 0 {
			continue
		}
		prev := thresholds[i-1]
		if th.MinWidth <= prev.MinWidth {
			return ThresholdTable{}, fmt.Errorf("threshold min widths must be strictly increasing: %s(%d) after %s(%d)",
				th.Breakpoint, th.MinWidth, prev.Breakpoint, prev.MinWidth)
		}
		if th.Breakpoint <= prev.Breakpoint {
			return ThresholdTable{}, fmt.Errorf("threshold breakpoints must be strictly increasing: %s after %s",
				th.Breakpoint, prev.Breakpoint)
		}
	}

	// Defensive copy so later mutation of the caller's slice cannot affect
	// classification.
	copied := make([]Threshold, len(thresholds))
	copy(copied, thresholds)
	return ThresholdTable{thresholds: copied}, nil
}

// DefaultThresholds returns the canonical 4-tier table:
// narrow < 60, compact < 100, normal < 160, wide >= 160.
func DefaultThresholds() ThresholdTable {
	table, err := NewThresholdTable([]Threshold{
		{Breakpoint: BreakpointNarrow, MinWidth: 0},
		{Breakpoint: BreakpointCompact, MinWidth: 60},
		{Breakpoint: BreakpointNormal, MinWidth: 100},
		{Breakpoint: BreakpointWide, MinWidth: 160},
	})
	if err != nil {
		// The literal above is valid; reaching here is a programming error.
		panic(err)
	}
	return table
}

// Classify returns the breakpoint whose lower bound is the greatest bound
// less than or equal to width. Widths below the first bound (including
// negative widths) classify to the first tier. Classification is monotonic:
// a larger width never yields a smaller breakpoint.
func (t ThresholdTable) Classify(width int) Breakpoint {
	ths := t.thresholds
	if len(ths) == 0 {
		ths = DefaultThresholds().thresholds
	}

	// Binary search for the last entry with MinWidth <= width.
	i := sort.Search(len(ths), func(i int) bool { return ths[i].MinWidth > width })
	if i == 0 {
		return ths[0].Breakpoint
	}
	return ths[i-1].Breakpoint
}

// Narrowest returns the smallest breakpoint in the table.
func (t ThresholdTable) Narrowest() Breakpoint {
	if len(t.thresholds) == 0 {
		return BreakpointNarrow
	}
	return t.thresholds[0].Breakpoint
}
