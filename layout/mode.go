package layout

import "fmt"

// DisplayMode represents a display density. A DisplayMode is either a user
// preference (the requested mode) or the effective mode actually applied
// after reconciliation with the current breakpoint; both share one value set.
type DisplayMode int

const (
	// ModeCompact shows only critical information with aggressive truncation.
	ModeCompact DisplayMode = iota
	// ModeNormal is the default balanced density.
	ModeNormal
	// ModeVerbose shows everything regardless of width, accepting overflow.
	ModeVerbose
)

// String returns the human-readable name of the display mode.
func (m DisplayMode) String() string {
	switch m {
	case ModeCompact:
		return "compact"
	case ModeNormal:
		return "normal"
	case ModeVerbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name to its DisplayMode value.
func ParseMode(s string) (DisplayMode, error) {
	switch s {
	case "compact":
		return ModeCompact, nil
	case "normal":
		return ModeNormal, nil
	case "verbose":
		return ModeVerbose, nil
	default:
		return 0, fmt.Errorf("unknown display mode %q", s)
	}
}

// ResolveMode reconciles the observed breakpoint with the user-requested
// display mode into the effective mode used for all rendering decisions.
//
// At the narrowest breakpoint the effective mode is forced to compact unless
// the user explicitly requested verbose: an explicit verbose request is
// honored even when it overflows, since the user accepted that trade-off.
func ResolveMode(bp Breakpoint, requested DisplayMode) DisplayMode {
	if bp == BreakpointNarrow && requested != ModeVerbose {
		return ModeCompact
	}
	return requested
}
