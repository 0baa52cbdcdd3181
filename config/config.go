// Package config provides configuration parsing for termflow.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/termflow/layout"
)

// Config represents the termflow configuration.
type Config struct {
	// Display holds density and rendering settings.
	Display DisplayConfig `yaml:"display"`

	// Breakpoints holds the width thresholds for each breakpoint tier.
	Breakpoints BreakpointsConfig `yaml:"breakpoints"`

	// Priority holds the per-breakpoint priority ceilings.
	Priority PriorityConfig `yaml:"priority"`

	// Observer holds terminal size sampling settings.
	Observer ObserverConfig `yaml:"observer"`
}

// DisplayConfig holds density and rendering settings.
type DisplayConfig struct {
	// Mode is the requested display density: "compact", "normal", or
	// "verbose".
	Mode string `yaml:"mode"`
	// ColorEnabled enables ANSI color output.
	ColorEnabled bool `yaml:"color_enabled"`
}

// BreakpointsConfig holds the lower width bound of each breakpoint above
// narrow. Narrow always starts at width 0.
type BreakpointsConfig struct {
	// CompactMin is the smallest width classified as compact.
	CompactMin int `yaml:"compact_min"`
	// NormalMin is the smallest width classified as normal.
	NormalMin int `yaml:"normal_min"`
	// WideMin is the smallest width classified as wide.
	WideMin int `yaml:"wide_min"`
}

// PriorityConfig holds the per-breakpoint priority ceilings.
type PriorityConfig struct {
	// Ceilings maps a breakpoint name to the least-important tier name it
	// still admits ("critical", "important", "optional", "debug").
	Ceilings map[string]string `yaml:"ceilings"`
}

// ObserverConfig holds terminal size sampling settings.
type ObserverConfig struct {
	// FallbackWidth is used when the terminal size is unavailable.
	FallbackWidth int `yaml:"fallback_width"`
	// FallbackHeight is used when the terminal size is unavailable.
	FallbackHeight int `yaml:"fallback_height"`
	// PollInterval is a duration string (e.g. "100ms") between size
	// re-samples when polling is used instead of resize notifications.
	PollInterval string `yaml:"poll_interval"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Mode:         "normal",
			ColorEnabled: true,
		},
		Breakpoints: BreakpointsConfig{
			CompactMin: 60,
			NormalMin:  100,
			WideMin:    160,
		},
		Priority: PriorityConfig{
			Ceilings: map[string]string{
				"narrow":  "important",
				"compact": "optional",
				"normal":  "debug",
				"wide":    "debug",
			},
		},
		Observer: ObserverConfig{
			FallbackWidth:  80,
			FallbackHeight: 24,
			PollInterval:   "100ms",
		},
	}
}

// LoadConfig loads configuration from a YAML file, merging with defaults.
// A missing file yields the defaults. The returned config is validated;
// invalid threshold or ceiling tables are rejected here, never at layout
// time.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for required fields and logical
// consistency.
func (c *Config) Validate() error {
	if _, err := layout.ParseMode(c.Display.Mode); err != nil {
		return fmt.Errorf("display.mode must be 'compact', 'normal', or 'verbose', got %q", c.Display.Mode)
	}

	if _, err := c.Thresholds(); err != nil {
		return fmt.Errorf("breakpoints: %w", err)
	}

	if _, err := c.CeilingTable(); err != nil {
		return fmt.Errorf("priority.ceilings: %w", err)
	}

	if c.Observer.FallbackWidth <= 0 {
		return fmt.Errorf("observer.fallback_width must be positive, got %d", c.Observer.FallbackWidth)
	}
	if c.Observer.FallbackHeight <= 0 {
		return fmt.Errorf("observer.fallback_height must be positive, got %d", c.Observer.FallbackHeight)
	}
	if c.Observer.PollInterval != "" {
		if _, err := time.ParseDuration(c.Observer.PollInterval); err != nil {
			return fmt.Errorf("observer.poll_interval is not a valid duration: %q", c.Observer.PollInterval)
		}
	}

	return nil
}

// Mode returns the configured display mode. Call Validate first; an invalid
// mode string falls back to normal.
func (c *Config) Mode() layout.DisplayMode {
	mode, err := layout.ParseMode(c.Display.Mode)
	if err != nil {
		return layout.ModeNormal
	}
	return mode
}

// Thresholds builds the breakpoint threshold table from the configured
// bounds. Strict ordering is enforced by the layout constructor.
func (c *Config) Thresholds() (layout.ThresholdTable, error) {
	return layout.NewThresholdTable([]layout.Threshold{
		{Breakpoint: layout.BreakpointNarrow, MinWidth: 0},
		{Breakpoint: layout.BreakpointCompact, MinWidth: c.Breakpoints.CompactMin},
		{Breakpoint: layout.BreakpointNormal, MinWidth: c.Breakpoints.NormalMin},
		{Breakpoint: layout.BreakpointWide, MinWidth: c.Breakpoints.WideMin},
	})
}

// CeilingTable builds the per-breakpoint priority ceiling table from the
// configured tier names.
func (c *Config) CeilingTable() (layout.CeilingTable, error) {
	ceilings := make(map[layout.Breakpoint]layout.Tier, len(c.Priority.Ceilings))
	for bpName, tierName := range c.Priority.Ceilings {
		bp, err := layout.ParseBreakpoint(bpName)
		if err != nil {
			return layout.CeilingTable{}, err
		}
		tier, err := layout.ParseTier(tierName)
		if err != nil {
			return layout.CeilingTable{}, fmt.Errorf("breakpoint %s: %w", bpName, err)
		}
		ceilings[bp] = tier
	}
	return layout.NewCeilingTable(ceilings)
}

// PollInterval returns the configured re-sample interval, defaulting to
// 100ms when unset or unparsable.
func (c *Config) PollInterval() time.Duration {
	d, err := time.ParseDuration(c.Observer.PollInterval)
	if err != nil || d <= 0 {
		return 100 * time.Millisecond
	}
	return d
}
