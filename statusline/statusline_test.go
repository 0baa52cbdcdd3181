package statusline

import (
	"strings"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/termflow/internal/format"
	"gitlab.com/tinyland/lab/termflow/layout"
)

func testRenderer() *Renderer {
	cfg := DefaultRendererConfig()
	cfg.ColorEnabled = false
	return NewRenderer(cfg)
}

func snapAt(width, height int) layout.Snapshot {
	obs := layout.NewObserver(layout.ObserverConfig{})
	return obs.Resize(width, height)
}

func fullState() State {
	return State{
		Connection: HealthOK,
		Task:       "Migrating the session store to the new schema while keeping reads available",
		Branch:     "feature/session/schema-migration",
		Model:      "sonnet-large",
		URL:        "https://ci.example.com/builds/1234",
		Tokens:     48210,
		Elapsed:    95 * time.Second,
		Subtasks: []string{
			"Copy rows in batches",
			"Verify checksums",
			"Swap the read path",
			"Drop the old tables",
			"Update runbooks",
			"Announce the cutover",
		},
	}
}

func TestCompose_NarrowForcesCompact(t *testing.T) {
	st := State{
		Connection: HealthOK,
		Task:       strings.Repeat("describe the long running work ", 3), // ~90 chars
	}
	snap := snapAt(50, 24)

	line := testRenderer().Compose(snap, layout.ModeNormal, st)

	if line.Mode != layout.ModeCompact {
		t.Errorf("mode = %s, want compact forced at narrow", line.Mode)
	}
	if !strings.Contains(line.Text, "...") {
		t.Errorf("long task not truncated: %q", line.Text)
	}
	if w := format.VisibleWidth(line.Text); w > 50 {
		t.Errorf("line width = %d, want <= 50", w)
	}
}

func TestCompose_LineNeverExceedsWidth(t *testing.T) {
	st := fullState()
	r := testRenderer()

	for width := 20; width <= 200; width += 10 {
		for _, mode := range []layout.DisplayMode{layout.ModeCompact, layout.ModeNormal} {
			snap := snapAt(width, 40)
			line := r.Compose(snap, mode, st)
			if w := format.VisibleWidth(line.Text); w > width {
				t.Errorf("width %d mode %s: line width = %d", width, mode, w)
			}
		}
	}
}

func TestCompose_WideShowsCountersAndURL(t *testing.T) {
	snap := snapAt(180, 50)

	line := testRenderer().Compose(snap, layout.ModeNormal, fullState())

	if !strings.Contains(line.Text, "48k tok") {
		t.Errorf("wide line missing token counter: %q", line.Text)
	}
	if !strings.Contains(line.Text, "1m 35s") {
		t.Errorf("wide line missing elapsed counter: %q", line.Text)
	}
	if !strings.Contains(line.Text, "ci.example.com") {
		t.Errorf("wide line missing url: %q", line.Text)
	}
}

func TestCompose_NarrowDropsDebugContent(t *testing.T) {
	snap := snapAt(50, 24)

	line := testRenderer().Compose(snap, layout.ModeNormal, fullState())

	if strings.Contains(line.Text, "ci.example.com") || strings.Contains(line.Text, "https://") {
		t.Errorf("narrow line still shows url: %q", line.Text)
	}
}

func TestCompose_SubtasksCappedByHeight(t *testing.T) {
	snap := snapAt(120, 24)

	line := testRenderer().Compose(snap, layout.ModeNormal, fullState())

	// normal mode at height 24 allows 5 subtask lines.
	if len(line.Subtasks) != 5 {
		t.Errorf("subtask lines = %d, want 5", len(line.Subtasks))
	}
	for _, sub := range line.Subtasks {
		if w := format.VisibleWidth(sub); w > 120 {
			t.Errorf("subtask line width = %d, want <= 120: %q", w, sub)
		}
	}
}

func TestCompose_CompactHidesSubtasks(t *testing.T) {
	snap := snapAt(120, 40)

	line := testRenderer().Compose(snap, layout.ModeCompact, fullState())

	if len(line.Subtasks) != 0 {
		t.Errorf("compact mode rendered %d subtask lines, want 0", len(line.Subtasks))
	}
}

func TestCompose_VerboseKeepsEverythingAtNarrowWidth(t *testing.T) {
	snap := snapAt(40, 24)

	line := testRenderer().Compose(snap, layout.ModeVerbose, fullState())

	if line.Mode != layout.ModeVerbose {
		t.Errorf("mode = %s, want verbose honored at narrow", line.Mode)
	}
	if !strings.Contains(line.Text, "https://ci.example.com/builds/1234") {
		t.Errorf("verbose line missing full url: %q", line.Text)
	}
	// Verbose accepts overflow; the allocator reports it instead of dropping.
	if !line.OverBudget {
		t.Error("verbose at width 40 should report over budget")
	}
}

func TestCompose_Deterministic(t *testing.T) {
	snap := snapAt(100, 30)
	r := testRenderer()
	st := fullState()

	first := r.Compose(snap, layout.ModeNormal, st)
	for i := 0; i < 10; i++ {
		again := r.Compose(snap, layout.ModeNormal, st)
		if again.Text != first.Text || len(again.Subtasks) != len(first.Subtasks) {
			t.Fatalf("compose %d differs:\n%q\n%q", i, again.Text, first.Text)
		}
	}
}

func TestCompose_EmptyState(t *testing.T) {
	snap := snapAt(80, 24)

	line := testRenderer().Compose(snap, layout.ModeNormal, State{})

	if w := format.VisibleWidth(line.Text); w > 80 {
		t.Errorf("empty-state line width = %d", w)
	}
	if len(line.Subtasks) != 0 {
		t.Errorf("empty state rendered subtasks: %v", line.Subtasks)
	}
}

func TestHealth_String(t *testing.T) {
	tests := []struct {
		h    Health
		want string
	}{
		{HealthOK, "online"},
		{HealthDegraded, "degraded"},
		{HealthOffline, "offline"},
		{Health(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Health(%d).String() = %q, want %q", int(tt.h), got, tt.want)
		}
	}
}

func TestBranchLabel_Abbreviation(t *testing.T) {
	if got := branchLabel("feature/session/schema-migration", true); got != "⎇ schema-migration" {
		t.Errorf("abbreviated branch = %q", got)
	}
	if got := branchLabel("main", false); got != "⎇ main" {
		t.Errorf("full branch = %q", got)
	}
}

func TestURLHost(t *testing.T) {
	if got := urlHost("https://ci.example.com/builds/1234"); got != "ci.example.com" {
		t.Errorf("urlHost = %q, want host only", got)
	}
	if got := urlHost("not a url"); got != "not a url" {
		t.Errorf("urlHost fallback = %q, want input unchanged", got)
	}
}
