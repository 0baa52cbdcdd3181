package layout

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Budget is the width budget for one allocation pass. Left and right segments
// share a single budget.
type Budget struct {
	// TotalWidth is the number of columns available for the whole line.
	TotalWidth int
	// FixedPadding is charged once regardless of segment count (outer
	// margins, prompt markers).
	FixedPadding int
	// Gap is the number of columns between adjacent segments.
	Gap int
}

// CeilingTable holds the least-important tier still admitted at each
// breakpoint. Validated at construction; immutable thereafter.
type CeilingTable struct {
	ceilings [numBreakpoints]Tier
}

// NewCeilingTable builds a validated ceiling table. Every breakpoint must be
// assigned a valid tier, and ceilings must be non-decreasing with breakpoint:
// a wider terminal never admits fewer tiers than a narrower one.
func NewCeilingTable(ceilings map[Breakpoint]Tier) (CeilingTable, error) {
	var table CeilingTable
	for bp := Breakpoint(0); bp < numBreakpoints; bp++ {
		tier, ok := ceilings[bp]
		if !ok {
			return CeilingTable{}, fmt.Errorf("priority ceiling missing for breakpoint %s", bp)
		}
		if tier < 0 || tier >= numTiers {
			return CeilingTable{}, fmt.Errorf("priority ceiling for %s is invalid tier %d", bp, int(tier))
		}
		if bp > 0 && tier < table.ceilings[bp-1] {
			return CeilingTable{}, fmt.Errorf("priority ceiling for %s (%s) is below the %s ceiling (%s)",
				bp, tier, bp-1, table.ceilings[bp-1])
		}
		table.ceilings[bp] = tier
	}
	return table, nil
}

// DefaultCeilings returns the standard per-breakpoint ceilings: narrow admits
// only critical and important segments, compact adds optional, normal and
// wide admit everything.
func DefaultCeilings() CeilingTable {
	table, err := NewCeilingTable(map[Breakpoint]Tier{
		BreakpointNarrow:  TierImportant,
		BreakpointCompact: TierOptional,
		BreakpointNormal:  TierDebug,
		BreakpointWide:    TierDebug,
	})
	if err != nil {
		panic(err)
	}
	return table
}

// Ceiling returns the least-important tier admitted at the given breakpoint.
func (c CeilingTable) Ceiling(bp Breakpoint) Tier {
	if bp < 0 || bp >= numBreakpoints {
		return TierCritical
	}
	return c.ceilings[bp]
}

// Placed is a segment that survived allocation, together with the width it
// was charged against the budget.
type Placed struct {
	Segment
	// Width is the column count charged for this segment.
	Width int
	// Abbreviated reports whether the segment was shrunk to its AbbrevText
	// to stay within budget.
	Abbreviated bool
}

// Allocation is the result of one allocation pass. Kept preserves the input
// order of surviving segments; Dropped lists evicted segments in eviction
// order.
type Allocation struct {
	Kept    []Placed
	Dropped []Segment
	// UsedWidth is the total width of the kept segments including padding
	// and gaps.
	UsedWidth int
	// OverBudget reports that the critical segments alone exceed the
	// budget. The line will overflow; critical content is never dropped.
	OverBudget bool
}

// Allocator decides which segments survive a width budget.
type Allocator struct {
	ceilings CeilingTable
}

// NewAllocator creates an Allocator with the given priority ceilings.
func NewAllocator(ceilings CeilingTable) *Allocator {
	return &Allocator{ceilings: ceilings}
}

// Allocate partitions segments into kept and dropped under the budget.
//
// Three steps, in order:
//
//  1. Tier filter: segments above the breakpoint's priority ceiling are
//     dropped outright.
//  2. Width check: used = FixedPadding + sum of segment widths + Gap between
//     adjacent survivors, left and right sides charged against the one
//     shared budget.
//  3. Progressive eviction: while over budget, the surviving non-critical
//     segment with the largest tier is evicted; ties prefer the right side
//     over the left, and among equal side and tier the most recently added
//     segment goes first. A segment with an abbreviation is shrunk to it
//     before being evicted. Eviction stops when the line fits or only
//     critical segments remain.
//
// Verbose mode skips both the tier filter and eviction: every segment is
// kept at full size regardless of width, and the line may overflow.
//
// Critical segments are never evicted: when they alone exceed the budget the
// result is returned with OverBudget set rather than dropping them.
// Identical inputs always produce identical partitions.
func (a *Allocator) Allocate(segments []Segment, budget Budget, bp Breakpoint, mode DisplayMode) Allocation {
	ceiling := a.ceilings.Ceiling(bp)

	var alloc Allocation
	kept := make([]Placed, 0, len(segments))
	for _, seg := range segments {
		if mode != ModeVerbose && seg.Tier > ceiling {
			alloc.Dropped = append(alloc.Dropped, seg)
			continue
		}
		kept = append(kept, Placed{Segment: seg, Width: segmentWidth(seg)})
	}

	used := totalWidth(kept, budget)
	for mode != ModeVerbose && used > budget.TotalWidth {
		victim := evictionCandidate(kept)
		if victim < 0 {
			break
		}
		if w, ok := abbreviatedWidth(kept[victim]); ok {
			kept[victim].Width = w
			kept[victim].Abbreviated = true
		} else {
			alloc.Dropped = append(alloc.Dropped, kept[victim].Segment)
			kept = append(kept[:victim], kept[victim+1:]...)
		}
		used = totalWidth(kept, budget)
	}

	alloc.Kept = kept
	alloc.UsedWidth = used
	alloc.OverBudget = used > budget.TotalWidth
	return alloc
}

// segmentWidth is the width a segment is charged at full size: its declared
// minimum, or its full text's display width when no minimum is declared.
func segmentWidth(seg Segment) int {
	if seg.MinWidth > 0 {
		return seg.MinWidth
	}
	return runewidth.StringWidth(seg.FullText)
}

// abbreviatedWidth returns the width the placed segment would occupy when
// shrunk to its abbreviation, and whether shrinking would actually help.
func abbreviatedWidth(p Placed) (int, bool) {
	if p.Abbreviated || p.AbbrevText == "" {
		return 0, false
	}
	w := runewidth.StringWidth(p.AbbrevText)
	if w <= 0 || w >= p.Width {
		return 0, false
	}
	return w, true
}

// totalWidth computes the budget charge for the kept segments: fixed padding
// plus every segment width plus one gap between each adjacent pair.
func totalWidth(kept []Placed, budget Budget) int {
	if len(kept) == 0 {
		return 0
	}
	used := budget.FixedPadding
	for _, p := range kept {
		used += p.Width
	}
	used += budget.Gap * (len(kept) - 1)
	return used
}

// evictionCandidate returns the index of the next segment to shrink or evict:
// the largest tier wins, then the right side before the left, then the most
// recently added. Critical segments are never candidates; -1 means none.
func evictionCandidate(kept []Placed) int {
	best := -1
	for i, p := range kept {
		if p.Tier == TierCritical {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := kept[best]
		switch {
		case p.Tier != b.Tier:
			if p.Tier > b.Tier {
				best = i
			}
		case p.Side != b.Side:
			if p.Side == SideRight {
				best = i
			}
		default:
			// Same tier and side: i > best, so i is more recent.
			best = i
		}
	}
	return best
}
