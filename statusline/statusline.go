// Package statusline composes a single-line status display from application
// state, running the full layout pipeline: breakpoint snapshot, mode
// resolution, priority allocation, and width-aware truncation. The rendered
// line is plain terminal text; callers print it wherever they like.
package statusline

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termflow/internal/format"
	"gitlab.com/tinyland/lab/termflow/layout"
)

// Health represents connection health shown in the status line.
type Health int

const (
	// HealthOK indicates a healthy connection.
	HealthOK Health = iota
	// HealthDegraded indicates a degraded connection.
	HealthDegraded
	// HealthOffline indicates no connection.
	HealthOffline
)

// String returns the status-line label for the health level.
func (h Health) String() string {
	switch h {
	case HealthOK:
		return "online"
	case HealthDegraded:
		return "degraded"
	case HealthOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// State is the application state rendered into the status line. It is read
// once per compose pass and never retained.
type State struct {
	// Connection is the connection health.
	Connection Health
	// Task is the current task description; it is the flexible text field
	// that absorbs truncation.
	Task string
	// Branch is the current git branch, if any.
	Branch string
	// Model is the active model or profile label, if any.
	Model string
	// URL is a related link, if any.
	URL string
	// Tokens is the token counter; shown when counters are enabled.
	Tokens int
	// Elapsed is the running duration; shown when counters are enabled.
	Elapsed time.Duration
	// Subtasks are in-progress subtask descriptions listed below the line.
	Subtasks []string
}

// Color palette matching the termflow demo theme.
var (
	colorSecondary = lipgloss.Color("#06B6D4") // Cyan - task text
	colorSuccess   = lipgloss.Color("#22C55E") // Green - healthy status
	colorWarning   = lipgloss.Color("#EAB308") // Yellow - degraded status
	colorDanger    = lipgloss.Color("#EF4444") // Red - offline status
	colorMuted     = lipgloss.Color("#6B7280") // Gray - counters/links
)

// healthColors maps each health level to its indicator color.
var healthColors = map[Health]lipgloss.Color{
	HealthOK:       colorSuccess,
	HealthDegraded: colorWarning,
	HealthOffline:  colorDanger,
}

// RendererConfig configures a Renderer.
type RendererConfig struct {
	// Ceilings is the per-breakpoint priority ceiling table.
	Ceilings layout.CeilingTable
	// ColorEnabled enables ANSI color output.
	ColorEnabled bool
}

// DefaultRendererConfig returns a RendererConfig with the standard ceilings
// and colors enabled.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		Ceilings:     layout.DefaultCeilings(),
		ColorEnabled: true,
	}
}

// Renderer composes status lines. It holds no per-pass state; Compose may be
// called once per frame with fresh snapshots.
type Renderer struct {
	allocator    *layout.Allocator
	colorEnabled bool
}

// NewRenderer creates a Renderer from the given configuration.
func NewRenderer(cfg RendererConfig) *Renderer {
	return &Renderer{
		allocator:    layout.NewAllocator(cfg.Ceilings),
		colorEnabled: cfg.ColorEnabled,
	}
}

// Line is one composed status display.
type Line struct {
	// Text is the status line, at most the snapshot width unless the mode
	// is verbose or critical content alone exceeded the budget.
	Text string
	// Subtasks are the rendered subtask lines, already capped and
	// truncated.
	Subtasks []string
	// Mode is the effective display mode used.
	Mode layout.DisplayMode
	// OverBudget reports that critical content alone exceeded the width.
	OverBudget bool
}

// Compose builds the status line for the given terminal snapshot, requested
// display mode, and application state.
func (r *Renderer) Compose(snap layout.Snapshot, requested layout.DisplayMode, st State) Line {
	mode := layout.ResolveMode(snap.Breakpoint, requested)
	feats := layout.FeaturesFor(snap.Breakpoint, mode)

	// Separators cost three columns per join; plain gaps cost one. The
	// budget gap and the rendered joiner must agree or width math drifts.
	gap := 1
	if feats.ShowSeparators {
		gap = 3
	}
	budget := layout.Budget{TotalWidth: snap.Width, FixedPadding: 2, Gap: gap}
	alloc := r.allocator.Allocate(buildSegments(st, feats), budget, snap.Breakpoint, mode)

	text := r.renderLine(snap, mode, feats, st, alloc, budget)

	return Line{
		Text:       text,
		Subtasks:   r.renderSubtasks(snap, mode, st.Subtasks),
		Mode:       mode,
		OverBudget: alloc.OverBudget,
	}
}

// renderLine turns the allocation into the final line: left segments joined
// left-to-right, right segments pushed to the right edge.
func (r *Renderer) renderLine(snap layout.Snapshot, mode layout.DisplayMode, feats layout.Features, st State, alloc layout.Allocation, budget layout.Budget) string {
	// The task field absorbs whatever width its kept siblings leave over.
	var reserved []int
	siblings := 0
	for _, p := range alloc.Kept {
		if p.ID != segTask {
			reserved = append(reserved, p.Width+budget.Gap)
			siblings += p.Width
		}
	}
	reserved = append(reserved, budget.FixedPadding)
	taskMax := layout.MaxFieldLength(snap.Width, snap.Breakpoint, mode, reserved...)

	// Outside compact mode MaxFieldLength only charges fixed overhead, so a
	// crowded line can still grant the task more than is actually free.
	// Clamp to the leftover space, keeping a small readable minimum.
	// Verbose deliberately overflows instead.
	if mode != layout.ModeVerbose && len(alloc.Kept) > 1 {
		avail := snap.Width - budget.FixedPadding - siblings - budget.Gap*(len(alloc.Kept)-1)
		if avail < taskMinWidth {
			avail = taskMinWidth
		}
		if avail < taskMax {
			taskMax = avail
		}
	}

	var left, right []string
	for _, p := range alloc.Kept {
		text := p.FullText
		if p.Abbreviated {
			text = p.AbbrevText
		}
		if p.ID == segTask {
			text = layout.Truncate(text, taskMax)
		}
		styled := r.styleSegment(p.ID, st, text)
		if p.Side == layout.SideLeft {
			left = append(left, styled)
		} else {
			right = append(right, styled)
		}
	}

	joiner := strings.Repeat(" ", budget.Gap)
	if feats.ShowSeparators {
		joiner = " " + r.muted("│") + " "
	}
	leftText := strings.Join(left, joiner)
	rightText := strings.Join(right, joiner)
	if rightText == "" {
		return r.clampLine(leftText, snap.Width, mode)
	}

	middle := snap.Width - format.VisibleWidth(leftText) - format.VisibleWidth(rightText) - budget.FixedPadding
	if middle < budget.Gap {
		middle = budget.Gap
	}
	line := leftText + strings.Repeat(" ", middle) + rightText
	return r.clampLine(line, snap.Width, mode)
}

// clampLine enforces the width postcondition. Verbose mode deliberately
// accepts overflow.
func (r *Renderer) clampLine(line string, width int, mode layout.DisplayMode) string {
	if mode == layout.ModeVerbose {
		return line
	}
	return format.TruncateToWidth(line, width)
}

// renderSubtasks renders at most the height-derived number of subtask lines,
// each truncated to the terminal width.
func (r *Renderer) renderSubtasks(snap layout.Snapshot, mode layout.DisplayMode, subtasks []string) []string {
	limit := layout.SubtaskLimit(snap.Height, mode, snap.Breakpoint)
	if limit <= 0 || len(subtasks) == 0 {
		return nil
	}
	if len(subtasks) > limit {
		subtasks = subtasks[:limit]
	}

	maxLen := snap.Width - 4 // indent + bullet
	lines := make([]string, 0, len(subtasks))
	for _, sub := range subtasks {
		lines = append(lines, "  "+r.muted("·")+" "+layout.Truncate(sub, maxLen))
	}
	return lines
}

// styleSegment applies the theme color for a segment kind.
func (r *Renderer) styleSegment(id string, st State, text string) string {
	if !r.colorEnabled {
		return text
	}
	switch id {
	case segConn:
		return lipgloss.NewStyle().Foreground(healthColors[st.Connection]).Render(text)
	case segTask:
		return lipgloss.NewStyle().Foreground(colorSecondary).Render(text)
	case segBranch, segModel:
		return lipgloss.NewStyle().Bold(true).Render(text)
	default: // counters, url
		return r.muted(text)
	}
}

func (r *Renderer) muted(text string) string {
	if !r.colorEnabled {
		return text
	}
	return lipgloss.NewStyle().Foreground(colorMuted).Render(text)
}
