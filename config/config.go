// Package config reads the desktop and spinner settings from YAML.
package config

import (
	"image"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/esimov/bling/ease"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Output places a display in the layout.
type Output struct {
	Name   string  `yaml:"name"`
	X      int     `yaml:"x"`
	Y      int     `yaml:"y"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
}

// Spinner configures the spinner bling.
type Spinner struct {
	CX         int    `yaml:"cx"`
	CY         int    `yaml:"cy"`
	DurationMS int    `yaml:"duration_ms"`
	Easing     string `yaml:"easing"`
	// Sprite is a PNG or SVG path or url. Empty uses the built in sprite.
	Sprite string `yaml:"sprite"`
}

// Backdrop is a translucent rectangle drawn below the spinner.
type Backdrop struct {
	X      int     `yaml:"x"`
	Y      int     `yaml:"y"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Color  string  `yaml:"color"`
	Alpha  float64 `yaml:"alpha"`
}

// Debug holds the debugging switches.
type Debug struct {
	DamageTracking bool `yaml:"damage_tracking"`
}

// Config is the top level configuration.
type Config struct {
	Outputs         []Output   `yaml:"outputs"`
	Spinner         Spinner    `yaml:"spinner"`
	Background      string     `yaml:"background"`
	Backdrops       []Backdrop `yaml:"backdrops"`
	Debug           Debug      `yaml:"debug"`
	FrameIntervalMS int        `yaml:"frame_interval_ms"`
}

// Default returns a configuration with a single portrait phone display.
func Default() *Config {
	return &Config{
		Outputs: []Output{{
			Name:   "DSI-1",
			Width:  720,
			Height: 1440,
			Scale:  2,
		}},
		Spinner: Spinner{
			CX:         180,
			CY:         360,
			DurationMS: 750,
			Easing:     string(ease.EaseInOutBack),
		},
		Background:      "black",
		FrameIntervalMS: 16,
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: could not read file")
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "config: could not parse yaml")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if len(c.Outputs) == 0 {
		return errors.New("config: at least one output is required")
	}
	seen := make(map[string]bool, len(c.Outputs))
	for i, o := range c.Outputs {
		if o.Name == "" {
			return errors.Errorf("config: output %d has no name", i)
		}
		if seen[o.Name] {
			return errors.Errorf("config: duplicate output %q", o.Name)
		}
		seen[o.Name] = true
		if o.Width <= 0 || o.Height <= 0 {
			return errors.Errorf("config: output %q has invalid size %dx%d", o.Name, o.Width, o.Height)
		}
		if o.Scale <= 0 {
			return errors.Errorf("config: output %q has invalid scale %v", o.Name, o.Scale)
		}
	}

	if c.Spinner.CX < 0 || c.Spinner.CY < 0 {
		return errors.Errorf("config: spinner center %d,%d is negative", c.Spinner.CX, c.Spinner.CY)
	}
	if c.Spinner.DurationMS <= 0 {
		return errors.Errorf("config: spinner duration must be positive, got %dms", c.Spinner.DurationMS)
	}
	if _, err := ease.Parse(c.Spinner.Easing); err != nil {
		return errors.Wrap(err, "config")
	}
	if c.FrameIntervalMS <= 0 {
		return errors.Errorf("config: frame interval must be positive, got %dms", c.FrameIntervalMS)
	}

	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	for i, b := range c.Backdrops {
		if b.Width <= 0 || b.Height <= 0 {
			return errors.Errorf("config: backdrop %d has invalid size %dx%d", i, b.Width, b.Height)
		}
		if b.Alpha < 0 || b.Alpha > 1 {
			return errors.Errorf("config: backdrop %d alpha %v is out of [0, 1]", i, b.Alpha)
		}
		if _, err := ParseColor(b.Color); err != nil {
			return err
		}
	}
	return nil
}

// Duration returns the length of one spinner turn.
func (s Spinner) Duration() time.Duration {
	return time.Duration(s.DurationMS) * time.Millisecond
}

// Curve returns the spinner easing curve.
func (s Spinner) Curve() ease.Curve {
	c, err := ease.Parse(s.Easing)
	if err != nil {
		return ease.EaseInOutBack
	}
	return c
}

// FrameInterval returns the time between two frames.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMS) * time.Millisecond
}

// Box returns the backdrop area in layout coordinates.
func (b Backdrop) Box() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// NRGBA returns the backdrop color with its alpha applied. A zero alpha
// keeps the color opaque.
func (b Backdrop) NRGBA() color.NRGBA {
	c, err := ParseColor(b.Color)
	if err != nil {
		return color.NRGBA{}
	}
	if b.Alpha > 0 {
		c.A = uint8(b.Alpha*255 + 0.5)
	}
	return c
}

// ParseColor accepts an SVG color name, "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok && (len(hex) == 6 || len(hex) == 8) {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err == nil {
			if len(hex) == 6 {
				v = v<<8 | 0xff
			}
			return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
		}
	}
	return color.NRGBA{}, errors.Errorf("config: unknown color %q", s)
}
