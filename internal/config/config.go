// Package config handles loading the tab strip configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hy4ri/tabstrip/internal/layout"
	"github.com/hy4ri/tabstrip/internal/strip"
)

// Config represents the application configuration.
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	UI     UIConfig     `yaml:"ui"`
	// Tabs are opened on startup, in order.
	Tabs []TabConfig `yaml:"tabs"`
}

// LayoutConfig holds the settings passed to the layout engine.
type LayoutConfig struct {
	Mode        string `yaml:"mode"`        // "scrollable", "single" or "table"
	Orientation string `yaml:"orientation"` // "top" or "bottom"

	PinnedSeparateRow bool `yaml:"pinned_separate_row"`
	Compressible      bool `yaml:"compressible"`
	SingleRow         bool `yaml:"single_row"`
	HideTabs          bool `yaml:"hide_tabs"`

	Gap            int `yaml:"gap"`
	MinTabWidth    int `yaml:"min_tab_width"`
	FirstTabOffset int `yaml:"first_tab_offset"`
	Padding        int `yaml:"padding"`

	DragOutMultiplier float64 `yaml:"drag_out_multiplier"`
	Deadzone          int     `yaml:"deadzone"`

	Toolbar      string `yaml:"toolbar,omitempty"` // "none", "top", "left" or "right"
	ToolbarWidth int    `yaml:"toolbar_width,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	Title          string `yaml:"title,omitempty"`
	ShowEntryPoint bool   `yaml:"show_entry_point"`
	VimMode        bool   `yaml:"vim_mode"`

	// NotifyDetach sends a desktop notification when a tab is dragged out.
	NotifyDetach bool `yaml:"notify_detach"`
}

// TabConfig is a tab opened on startup.
type TabConfig struct {
	Title  string `yaml:"title"`
	Pinned bool   `yaml:"pinned,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Mode:              string(layout.ModeScrollable),
			Orientation:       "top",
			Gap:               1,
			Padding:           1,
			DragOutMultiplier: layout.DefaultDragOutMultiplier,
			Deadzone:          layout.DefaultDeadzone,
			Toolbar:           string(strip.ToolbarNone),
		},
		UI: UIConfig{
			ShowEntryPoint: true,
			VimMode:        true,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "tabstrip")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration at path.
// If the file doesn't exist, returns a default configuration.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values the engine cannot recover from.
func (c *Config) Validate() error {
	if _, err := layout.ParseMode(c.Layout.Mode); err != nil {
		return err
	}
	if _, err := ParseOrientation(c.Layout.Orientation); err != nil {
		return err
	}
	switch strip.ToolbarPlacement(c.Layout.Toolbar) {
	case "", strip.ToolbarNone, strip.ToolbarTop, strip.ToolbarLeft, strip.ToolbarRight:
	default:
		return fmt.Errorf("unknown toolbar placement %q", c.Layout.Toolbar)
	}
	if c.Layout.Gap < 0 || c.Layout.MinTabWidth < 0 || c.Layout.Padding < 0 || c.Layout.FirstTabOffset < 0 {
		return fmt.Errorf("gap, min_tab_width, padding and first_tab_offset must not be negative")
	}
	return nil
}

// ParseOrientation maps "top" and "bottom" to an orientation.
func ParseOrientation(s string) (layout.Orientation, error) {
	switch s {
	case "", "top":
		return layout.Top, nil
	case "bottom":
		return layout.Bottom, nil
	}
	return layout.Top, fmt.Errorf("unknown orientation %q", s)
}

// StripOptions converts the configuration into strip options. The config
// must have been validated.
func (c *Config) StripOptions() strip.Options {
	l := c.Layout
	mode, _ := layout.ParseMode(l.Mode)
	orientation, _ := ParseOrientation(l.Orientation)
	return strip.Options{
		Mode:              mode,
		Orientation:       orientation,
		PinnedSeparate:    l.PinnedSeparateRow,
		Compressible:      l.Compressible,
		SingleRow:         l.SingleRow,
		HideTabs:          l.HideTabs,
		Gap:               l.Gap,
		MinTabWidth:       l.MinTabWidth,
		FirstTabOffset:    l.FirstTabOffset,
		Padding:           l.Padding,
		Title:             c.UI.Title,
		ShowEntryPoint:    c.UI.ShowEntryPoint,
		Toolbar:           strip.ToolbarPlacement(l.Toolbar),
		ToolbarWidth:      l.ToolbarWidth,
		DragOutMultiplier: l.DragOutMultiplier,
		Deadzone:          l.Deadzone,
	}
}

// Template is written by WriteTemplate.
const Template = `# tabstrip configuration
# Location: ~/.config/tabstrip/config.yaml

layout:
  # scrollable, single or table
  mode: scrollable
  # top or bottom
  orientation: top

  # table mode: keep pinned tabs on a row of their own
  pinned_separate_row: false
  # table mode: shrink tabs proportionally instead of wrapping early
  compressible: false
  # table mode: keep all tabs on one scrolling row
  single_row: false
  hide_tabs: false

  gap: 1
  min_tab_width: 0
  first_tab_offset: 0
  padding: 1

  # a tab dragged vertically beyond this many header heights is detached
  drag_out_multiplier: 1.5
  # cells a tab may be clipped by and still count as shown
  deadzone: 10

  # none, top, left or right
  toolbar: none
  toolbar_width: 12

ui:
  title: ""
  show_entry_point: true
  vim_mode: true
  # desktop notification when a tab is dragged out of the strip
  notify_detach: false

tabs:
  - title: main.go
    pinned: true
  - title: README.md
`

// WriteTemplate writes the commented template config to path.
func WriteTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
