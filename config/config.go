package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/soocke/radial-select-go/domain/geometry"
)

// Config holds runtime configuration for the selector window and ring.
// Fields may be loaded from a JSON file and overridden by command-line arguments.
type Config struct {
	Debug bool `json:"debug"`

	// Window
	WindowSize     int  `json:"window_size"`
	Transparent    bool `json:"transparent"`
	Floating       bool `json:"floating"`
	Decorated      bool `json:"decorated"`
	CenterOnCursor bool `json:"center_on_cursor"`
	Backdrop       bool `json:"backdrop"`

	// Ring geometry, normalized viewport units
	Segments    int     `json:"segments"`
	InnerRadius float64 `json:"inner_radius"`
	OuterRadius float64 `json:"outer_radius"`
	BorderWidth float64 `json:"border_width"`

	// Colors: "#RRGGBB", "#RRGGBBAA" or an SVG color name
	ActiveColor     string `json:"active_color"`
	InactiveColor   string `json:"inactive_color"`
	BackgroundColor string `json:"background_color"`

	Labels     []string `json:"labels,omitempty"`
	LabelSize  float64  `json:"label_size"`
	LabelColor string   `json:"label_color"`
	QuitKey    string   `json:"quit_key"`
}

const (
	defaultWindowSize  = 480
	defaultSegments    = 10
	defaultInnerRadius = 0.1
	defaultOuterRadius = 0.4
	defaultBorderWidth = 0.01
	defaultLabelSize   = 14
	defaultQuitKey     = "Q"

	DefaultActiveColor     = "#C65333FF"
	DefaultInactiveColor   = "#697893FF"
	DefaultBackgroundColor = "#00000000"
	DefaultLabelColor      = "white"
)

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		WindowSize:      defaultWindowSize,
		Transparent:     true,
		Floating:        true,
		Decorated:       true,
		CenterOnCursor:  true,
		Backdrop:        false,
		Segments:        defaultSegments,
		InnerRadius:     defaultInnerRadius,
		OuterRadius:     defaultOuterRadius,
		BorderWidth:     defaultBorderWidth,
		ActiveColor:     DefaultActiveColor,
		InactiveColor:   DefaultInactiveColor,
		BackgroundColor: DefaultBackgroundColor,
		LabelSize:       defaultLabelSize,
		LabelColor:      DefaultLabelColor,
		QuitKey:         defaultQuitKey,
	}
}

// Validate clamps/normalizes values to safe ranges. It returns an error only
// for values that cannot be repaired, such as unparseable colors.
func (c *Config) Validate() error {
	if c.WindowSize <= 0 {
		c.WindowSize = defaultWindowSize
	}
	if c.Segments < 1 {
		c.Segments = defaultSegments
	}
	if c.InnerRadius <= 0 {
		c.InnerRadius = defaultInnerRadius
	}
	if c.OuterRadius <= 0 || c.OuterRadius <= c.InnerRadius {
		c.InnerRadius, c.OuterRadius = defaultInnerRadius, defaultOuterRadius
	}
	if c.BorderWidth <= 0 || c.BorderWidth >= c.OuterRadius-c.InnerRadius {
		c.BorderWidth = defaultBorderWidth
	}
	if c.LabelSize <= 0 {
		c.LabelSize = defaultLabelSize
	}
	if c.LabelColor == "" {
		c.LabelColor = DefaultLabelColor
	}
	if c.QuitKey == "" {
		c.QuitKey = defaultQuitKey
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if _, err := ParseColor(c.LabelColor); err != nil {
		return fmt.Errorf("label_color: %w", err)
	}
	return nil
}

// Menu returns the ring geometry.
func (c *Config) Menu() geometry.Menu {
	return geometry.Menu{
		Segments:    c.Segments,
		InnerRadius: c.InnerRadius,
		OuterRadius: c.OuterRadius,
		BorderWidth: c.BorderWidth,
	}
}

// Palette parses the three configured colors.
func (c *Config) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Active, err = ParseColor(c.ActiveColor); err != nil {
		return p, fmt.Errorf("active_color: %w", err)
	}
	if p.Inactive, err = ParseColor(c.InactiveColor); err != nil {
		return p, fmt.Errorf("inactive_color: %w", err)
	}
	if p.Background, err = ParseColor(c.BackgroundColor); err != nil {
		return p, fmt.Errorf("background_color: %w", err)
	}
	return p, nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
