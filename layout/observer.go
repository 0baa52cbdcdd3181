package layout

import (
	"context"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/x/term"
)

// Default fallback dimensions when the terminal size cannot be determined.
const (
	DefaultFallbackWidth  = 80
	DefaultFallbackHeight = 24
)

// Snapshot is an immutable record of one terminal size observation.
type Snapshot struct {
	// Width is the terminal width in columns.
	Width int
	// Height is the terminal height in rows.
	Height int
	// Breakpoint is the width classification under the observer's table.
	Breakpoint Breakpoint
	// Available reports whether the environment provided a real size. When
	// false, Width and Height hold the configured fallback dimensions.
	Available bool
}

// IsNarrow reports whether the snapshot is at the narrow breakpoint.
func (s Snapshot) IsNarrow() bool { return s.Breakpoint == BreakpointNarrow }

// IsCompact reports whether the snapshot is at the compact breakpoint.
func (s Snapshot) IsCompact() bool { return s.Breakpoint == BreakpointCompact }

// IsNormal reports whether the snapshot is at the normal breakpoint.
func (s Snapshot) IsNormal() bool { return s.Breakpoint == BreakpointNormal }

// IsWide reports whether the snapshot is at the wide breakpoint.
func (s Snapshot) IsWide() bool { return s.Breakpoint == BreakpointWide }

// SizeProbe reports the current terminal dimensions. ok is false when the
// environment provides no size.
type SizeProbe func() (width, height int, ok bool)

// DetectTerminalSize probes the terminal size. It tries TTY detection via the
// stdout file descriptor first, then the COLUMNS/LINES environment variables.
// ok is false when neither source yields a usable size.
func DetectTerminalSize() (width, height int, ok bool) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err == nil && w > 0 && h > 0 {
		return w, h, true
	}

	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			width = w
		}
	}
	if lines := os.Getenv("LINES"); lines != "" {
		if h, err := strconv.Atoi(lines); err == nil && h > 0 {
			height = h
		}
	}

	if width > 0 && height > 0 {
		return width, height, true
	}
	return 0, 0, false
}

// ObserverConfig configures an Observer. Zero-value fields get defaults.
type ObserverConfig struct {
	// Thresholds is the breakpoint classification table.
	Thresholds ThresholdTable
	// FallbackWidth is used when no size is available (default 80).
	FallbackWidth int
	// FallbackHeight is used when no size is available (default 24).
	FallbackHeight int
	// Probe overrides the size source, primarily for tests.
	Probe SizeProbe
}

// Observer samples terminal dimensions and classifies them into breakpoints.
// It owns the single piece of persistent state in the engine: the last
// observed snapshot. Consumers only ever see immutable Snapshot values.
type Observer struct {
	table          ThresholdTable
	fallbackWidth  int
	fallbackHeight int
	probe          SizeProbe

	mu      sync.Mutex
	last    Snapshot
	sampled bool
}

// NewObserver creates an Observer from the given configuration.
func NewObserver(cfg ObserverConfig) *Observer {
	if len(cfg.Thresholds.thresholds) == 0 {
		cfg.Thresholds = DefaultThresholds()
	}
	if cfg.FallbackWidth <= 0 {
		cfg.FallbackWidth = DefaultFallbackWidth
	}
	if cfg.FallbackHeight <= 0 {
		cfg.FallbackHeight = DefaultFallbackHeight
	}
	if cfg.Probe == nil {
		cfg.Probe = DetectTerminalSize
	}
	return &Observer{
		table:          cfg.Thresholds,
		fallbackWidth:  cfg.FallbackWidth,
		fallbackHeight: cfg.FallbackHeight,
		probe:          cfg.Probe,
	}
}

// Thresholds returns the observer's classification table.
func (o *Observer) Thresholds() ThresholdTable { return o.table }

// Classify returns the breakpoint for the given width under the observer's
// table.
func (o *Observer) Classify(width int) Breakpoint { return o.table.Classify(width) }

// Sample probes the environment and returns a fresh snapshot, caching it as
// the latest observation. When the environment reports no size, the snapshot
// carries the fallback dimensions with Available false. Sample never fails.
func (o *Observer) Sample() Snapshot {
	w, h, ok := o.probe()
	if !ok {
		w, h = o.fallbackWidth, o.fallbackHeight
	}
	return o.store(w, h, ok)
}

// Resize records an explicit resize notification, e.g. from a host event
// loop's window-size message, and returns the resulting snapshot.
func (o *Observer) Resize(width, height int) Snapshot {
	if width <= 0 || height <= 0 {
		return o.store(o.fallbackWidth, o.fallbackHeight, false)
	}
	return o.store(width, height, true)
}

// Latest returns the most recent snapshot, sampling first if the observer has
// never observed a size.
func (o *Observer) Latest() Snapshot {
	o.mu.Lock()
	if o.sampled {
		snap := o.last
		o.mu.Unlock()
		return snap
	}
	o.mu.Unlock()
	return o.Sample()
}

// Watch re-samples every interval until ctx is cancelled, sending a snapshot
// on the returned channel whenever the observed size changes. The channel is
// closed when ctx is done.
func (o *Observer) Watch(ctx context.Context, interval time.Duration) <-chan Snapshot {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	ch := make(chan Snapshot, 1)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		prev := o.Latest()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				snap := o.Sample()
				if snap == prev {
					continue
				}
				prev = snap
				select {
				case ch <- snap:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch
}

func (o *Observer) store(width, height int, available bool) Snapshot {
	snap := Snapshot{
		Width:      width,
		Height:     height,
		Breakpoint: o.table.Classify(width),
		Available:  available,
	}
	o.mu.Lock()
	o.last = snap
	o.sampled = true
	o.mu.Unlock()
	return snap
}
