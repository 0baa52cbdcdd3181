package layout

// Features holds the per-breakpoint presentation toggles derived from the
// effective mode. Renderers consult these instead of comparing breakpoints at
// call sites.
type Features struct {
	// ShowSeparators enables decorative separators between segments.
	ShowSeparators bool
	// ShowCounters enables numeric counters (tokens, elapsed time).
	ShowCounters bool
	// ShowSubtasks enables the subtask list below the status line.
	ShowSubtasks bool
	// AbbreviateLabels prefers short label forms over full ones.
	AbbreviateLabels bool
}

// FeaturesFor returns the feature toggles for a breakpoint and effective
// mode. Verbose enables everything; compact strips decoration regardless of
// width.
func FeaturesFor(bp Breakpoint, mode DisplayMode) Features {
	if mode == ModeVerbose {
		return Features{
			ShowSeparators:   true,
			ShowCounters:     true,
			ShowSubtasks:     true,
			AbbreviateLabels: false,
		}
	}
	if mode == ModeCompact {
		return Features{
			ShowSeparators:   false,
			ShowCounters:     bp >= BreakpointNormal,
			ShowSubtasks:     false,
			AbbreviateLabels: true,
		}
	}

	switch bp {
	case BreakpointNarrow:
		return Features{
			ShowSeparators:   false,
			ShowCounters:     false,
			ShowSubtasks:     false,
			AbbreviateLabels: true,
		}
	case BreakpointCompact:
		return Features{
			ShowSeparators:   true,
			ShowCounters:     false,
			ShowSubtasks:     true,
			AbbreviateLabels: true,
		}
	default: // BreakpointNormal, BreakpointWide
		return Features{
			ShowSeparators:   true,
			ShowCounters:     true,
			ShowSubtasks:     true,
			AbbreviateLabels: false,
		}
	}
}
