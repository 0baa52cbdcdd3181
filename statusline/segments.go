package statusline

import (
	"net/url"
	"strings"

	"github.com/mattn/go-runewidth"

	"gitlab.com/tinyland/lab/termflow/internal/format"
	"gitlab.com/tinyland/lab/termflow/layout"
)

// Segment IDs used by the renderer.
const (
	segConn    = "conn"
	segTask    = "task"
	segBranch  = "branch"
	segModel   = "model"
	segTokens  = "tokens"
	segElapsed = "elapsed"
	segURL     = "url"
)

// Minimum width granted to the task field before truncation kicks in.
const taskMinWidth = 10

// healthDots maps each health level to its compact indicator.
var healthDots = map[Health]string{
	HealthOK:       "●",
	HealthDegraded: "●",
	HealthOffline:  "○",
}

// buildSegments converts application state into the ordered segment list for
// one allocation pass. Segment order within a side determines eviction order
// among equal tiers: later segments go first.
func buildSegments(st State, feats layout.Features) []layout.Segment {
	dot := healthDots[st.Connection]
	connFull := dot + " " + st.Connection.String()
	if feats.AbbreviateLabels {
		connFull = dot
	}

	segments := []layout.Segment{
		{
			ID:       segConn,
			Side:     layout.SideLeft,
			Tier:     layout.TierCritical,
			MinWidth: runewidth.StringWidth(connFull),
			FullText: connFull,
			// The dot alone still conveys health at extreme widths.
			AbbrevText: dot,
		},
		{
			ID:       segTask,
			Side:     layout.SideLeft,
			Tier:     layout.TierCritical,
			MinWidth: minInt(taskMinWidth, runewidth.StringWidth(st.Task)),
			FullText: st.Task,
		},
	}

	if st.Branch != "" {
		label := branchLabel(st.Branch, feats.AbbreviateLabels)
		segments = append(segments, layout.Segment{
			ID:         segBranch,
			Side:       layout.SideLeft,
			Tier:       layout.TierImportant,
			MinWidth:   runewidth.StringWidth(label),
			FullText:   label,
			AbbrevText: branchLabel(st.Branch, true),
		})
	}

	if st.Model != "" {
		segments = append(segments, layout.Segment{
			ID:         segModel,
			Side:       layout.SideLeft,
			Tier:       layout.TierOptional,
			MinWidth:   runewidth.StringWidth(st.Model),
			FullText:   st.Model,
			AbbrevText: format.TruncateRunes(st.Model, 8),
		})
	}

	if feats.ShowCounters {
		if st.Tokens > 0 {
			text := format.FormatCount(st.Tokens) + " tok"
			segments = append(segments, layout.Segment{
				ID:         segTokens,
				Side:       layout.SideRight,
				Tier:       layout.TierOptional,
				MinWidth:   runewidth.StringWidth(text),
				FullText:   text,
				AbbrevText: format.FormatCount(st.Tokens),
			})
		}
		if st.Elapsed > 0 {
			text := format.FormatDuration(st.Elapsed)
			segments = append(segments, layout.Segment{
				ID:         segElapsed,
				Side:       layout.SideRight,
				Tier:       layout.TierOptional,
				MinWidth:   runewidth.StringWidth(text),
				FullText:   text,
				AbbrevText: format.FormatCompactDuration(st.Elapsed),
			})
		}
	}

	if st.URL != "" {
		segments = append(segments, layout.Segment{
			ID:         segURL,
			Side:       layout.SideRight,
			Tier:       layout.TierDebug,
			MinWidth:   runewidth.StringWidth(st.URL),
			FullText:   st.URL,
			AbbrevText: urlHost(st.URL),
		})
	}

	return segments
}

// branchLabel renders a branch name, shortened to its last path element when
// abbreviating (feature/team/login-flow -> login-flow).
func branchLabel(branch string, abbrev bool) string {
	if abbrev {
		if i := strings.LastIndex(branch, "/"); i >= 0 && i+1 < len(branch) {
			branch = branch[i+1:]
		}
		branch = format.TruncateRunes(branch, 16)
	}
	return "⎇ " + branch
}

// urlHost reduces a URL to its host for abbreviated display.
func urlHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
