package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termflow/layout"
	"gitlab.com/tinyland/lab/termflow/statusline"
)

// model is the bubbletea model for the demo. It owns the observer (the only
// stateful layout component) and re-composes the status line on every resize
// or mode change.
type model struct {
	observer  *layout.Observer
	renderer  *statusline.Renderer
	requested layout.DisplayMode
	state     statusline.State
	snap      layout.Snapshot
	started   time.Time
}

func newModel(observer *layout.Observer, renderer *statusline.Renderer, requested layout.DisplayMode) model {
	return model{
		observer:  observer,
		renderer:  renderer,
		requested: requested,
		state:     mockState(),
		snap:      observer.Latest(),
		started:   time.Now(),
	}
}

// mockState returns representative application state for the demo.
func mockState() statusline.State {
	return statusline.State{
		Connection: statusline.HealthOK,
		Task:       "Refactoring the ingestion pipeline to stream records in fixed-size batches instead of loading whole files",
		Branch:     "feature/ingest/stream-batches",
		Model:      "sonnet-large",
		URL:        "https://ci.tinyland.dev/pipelines/8841",
		Tokens:     48210,
		Subtasks: []string{
			"Split reader into bounded chunks",
			"Wire backpressure into the batch queue",
			"Update retry semantics for partial batches",
			"Re-run the soak benchmark",
			"Document the new flush interval default",
		},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.CycleMode):
			m.requested = nextMode(m.requested)
		case key.Matches(msg, keys.Tick):
			m.state.Tokens += 1375
			if len(m.state.Subtasks) > 0 {
				m.state.Subtasks = m.state.Subtasks[1:]
			}
		}

	case tea.WindowSizeMsg:
		m.snap = m.observer.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

func (m model) View() string {
	m.state.Elapsed = time.Since(m.started)
	line := m.renderer.Compose(m.snap, m.requested, m.state)

	var b strings.Builder
	b.WriteString(line.Text)
	b.WriteString("\n")
	for _, sub := range line.Subtasks {
		b.WriteString(sub)
		b.WriteString("\n")
	}

	footer := fmt.Sprintf("%dx%d %s  mode=%s (requested %s)  [c] mode  [t] tick  [q] quit",
		m.snap.Width, m.snap.Height, m.snap.Breakpoint, line.Mode, m.requested)
	if line.OverBudget {
		footer += "  (over budget)"
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(footer))
	return b.String()
}

// nextMode cycles compact -> normal -> verbose -> compact.
func nextMode(mode layout.DisplayMode) layout.DisplayMode {
	switch mode {
	case layout.ModeCompact:
		return layout.ModeNormal
	case layout.ModeNormal:
		return layout.ModeVerbose
	default:
		return layout.ModeCompact
	}
}
