package layout

import "testing"

func TestClassify_Boundaries(t *testing.T) {
	table := DefaultThresholds()

	tests := []struct {
		width int
		want  Breakpoint
	}{
		{-10, BreakpointNarrow},
		{0, BreakpointNarrow},
		{59, BreakpointNarrow},
		{60, BreakpointCompact},
		{99, BreakpointCompact},
		{100, BreakpointNormal},
		{159, BreakpointNormal},
		{160, BreakpointWide},
		{500, BreakpointWide},
	}
	for _, tt := range tests {
		if got := table.Classify(tt.width); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.width, got, tt.want)
		}
	}
}

func TestClassify_Monotonic(t *testing.T) {
	table := DefaultThresholds()

	prev := table.Classify(-5)
	for w := -4; w <= 300; w++ {
		got := table.Classify(w)
		if got < prev {
			t.Fatalf("Classify(%d) = %s, below Classify(%d) = %s", w, got, w-1, prev)
		}
		prev = got
	}
}

func TestClassify_Deterministic(t *testing.T) {
	table := DefaultThresholds()

	for i := 0; i < 10; i++ {
		if got := table.Classify(87); got != BreakpointCompact {
			t.Fatalf("Classify(87) = %s on call %d, want compact", got, i)
		}
	}
}

func TestClassify_ZeroTableFallsBack(t *testing.T) {
	var table ThresholdTable
	if got := table.Classify(120); got != BreakpointNormal {
		t.Errorf("zero-value table Classify(120) = %s, want normal", got)
	}
}

func TestNewThresholdTable_Valid(t *testing.T) {
	// 3-tier variant: narrow < 60, normal < 120, wide >= 120.
	table, err := NewThresholdTable([]Threshold{
		{Breakpoint: BreakpointNarrow, MinWidth: 0},
		{Breakpoint: BreakpointNormal, MinWidth: 60},
		{Breakpoint: BreakpointWide, MinWidth: 120},
	})
	if err != nil {
		t.Fatalf("NewThresholdTable: %v", err)
	}
	if got := table.Classify(80); got != BreakpointNormal {
		t.Errorf("Classify(80) = %s, want normal", got)
	}
	if got := table.Classify(120); got != BreakpointWide {
		t.Errorf("Classify(120) = %s, want wide", got)
	}
}

func TestNewThresholdTable_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		thresholds []Threshold
	}{
		{"empty", nil},
		{"first bound not zero", []Threshold{
			{Breakpoint: BreakpointNarrow, MinWidth: 10},
			{Breakpoint: BreakpointCompact, MinWidth: 60},
		}},
		{"non-increasing widths", []Threshold{
			{Breakpoint: BreakpointNarrow, MinWidth: 0},
			{Breakpoint: BreakpointCompact, MinWidth: 60},
			{Breakpoint: BreakpointNormal, MinWidth: 60},
		}},
		{"decreasing widths", []Threshold{
			{Breakpoint: BreakpointNarrow, MinWidth: 0},
			{Breakpoint: BreakpointCompact, MinWidth: 100},
			{Breakpoint: BreakpointNormal, MinWidth: 60},
		}},
		{"non-increasing breakpoints", []Threshold{
			{Breakpoint: BreakpointNarrow, MinWidth: 0},
			{Breakpoint: BreakpointNormal, MinWidth: 60},
			{Breakpoint: BreakpointCompact, MinWidth: 100},
		}},
		{"invalid breakpoint", []Threshold{
			{Breakpoint: Breakpoint(99), MinWidth: 0},
		}},
	}
	for _, tt := range tests {
		if _, err := NewThresholdTable(tt.thresholds); err == nil {
			t.Errorf("%s: NewThresholdTable accepted invalid table", tt.name)
		}
	}
}

func TestBreakpoint_String(t *testing.T) {
	tests := []struct {
		bp   Breakpoint
		want string
	}{
		{BreakpointNarrow, "narrow"},
		{BreakpointCompact, "compact"},
		{BreakpointNormal, "normal"},
		{BreakpointWide, "wide"},
		{Breakpoint(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.bp.String(); got != tt.want {
			t.Errorf("Breakpoint(%d).String() = %q, want %q", int(tt.bp), got, tt.want)
		}
	}
}

func TestParseBreakpoint_RoundTrip(t *testing.T) {
	for bp := BreakpointNarrow; bp <= BreakpointWide; bp++ {
		got, err := ParseBreakpoint(bp.String())
		if err != nil {
			t.Fatalf("ParseBreakpoint(%q): %v", bp.String(), err)
		}
		if got != bp {
			t.Errorf("ParseBreakpoint(%q) = %s", bp.String(), got)
		}
	}
	if _, err := ParseBreakpoint("gigantic"); err == nil {
		t.Error("ParseBreakpoint accepted unknown name")
	}
}
