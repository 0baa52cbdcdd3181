package layout

import "fmt"

// Side indicates which end of the status line a segment anchors to.
type Side int

const (
	// SideLeft anchors a segment to the left edge.
	SideLeft Side = iota
	// SideRight anchors a segment to the right edge.
	SideRight
)

// String returns the human-readable name of the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Tier is an ordinal segment priority. Lower values are more important;
// TierCritical segments are never evicted by the allocator.
type Tier int

const (
	// TierCritical segments always survive allocation.
	TierCritical Tier = iota
	// TierImportant segments survive at every breakpoint but are evicted
	// before critical ones under extreme budgets.
	TierImportant
	// TierOptional segments appear from the compact breakpoint up.
	TierOptional
	// TierDebug segments appear only at normal and wide breakpoints.
	TierDebug

	numTiers = iota
)

// String returns the human-readable name of the tier.
func (t Tier) String() string {
	switch t {
	case TierCritical:
		return "critical"
	case TierImportant:
		return "important"
	case TierOptional:
		return "optional"
	case TierDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseTier converts a tier name to its Tier value.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "critical":
		return TierCritical, nil
	case "important":
		return TierImportant, nil
	case "optional":
		return TierOptional, nil
	case "debug":
		return TierDebug, nil
	default:
		return 0, fmt.Errorf("unknown priority tier %q", s)
	}
}

// Segment is one displayable unit of status content. Segments are built fresh
// on every layout pass from current application state; they carry no state
// beyond the single allocation that consumes them.
type Segment struct {
	// ID identifies the segment for the caller; the allocator only uses it
	// in results.
	ID string
	// Side is the edge the segment anchors to.
	Side Side
	// Tier is the segment's priority tier.
	Tier Tier
	// MinWidth is the smallest number of columns the segment can render in.
	MinWidth int
	// FullText is the segment's full content.
	FullText string
	// AbbrevText, when non-empty, is a shorter form the allocator may swap
	// in instead of evicting the segment.
	AbbrevText string
}
