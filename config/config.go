// Package config provides configuration loading and access for the particle field.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Links     LinksConfig     `yaml:"links"`
	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// FieldConfig holds particle sampling parameters.
// Ranges are half-open: [min, max).
type FieldConfig struct {
	Count         int     `yaml:"count"`
	RadiusMin     float64 `yaml:"radius_min"`
	RadiusMax     float64 `yaml:"radius_max"`
	SpeedMax      float64 `yaml:"speed_max"` // px/tick per axis
	OpacityMin    float64 `yaml:"opacity_min"`
	OpacityMax    float64 `yaml:"opacity_max"`
	ReducedMotion bool    `yaml:"reduced_motion"` // start paused: draw the field but don't animate it
}

// LinksConfig holds proximity link parameters.
type LinksConfig struct {
	Distance float64 `yaml:"distance"`  // pairs strictly closer than this are linked
	MaxAlpha float64 `yaml:"max_alpha"` // alpha at distance 0, fading to 0 at Distance
	Width    float64 `yaml:"width"`
}

// RenderConfig holds colors as [r, g, b] triples.
type RenderConfig struct {
	Accent     []int `yaml:"accent"`
	Background []int `yaml:"background"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // seconds
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// RGB is a validated 8-bit color.
type RGB struct {
	R, G, B uint8
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT         float64 // seconds per tick at the target FPS
	StatsTicks int64   // driver ticks per telemetry window, at least 1
	Accent     RGB
	Background RGB
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived validates the loaded values and fills Derived.
func (c *Config) computeDerived() error {
	if c.Field.Count < 0 {
		return fmt.Errorf("field.count must be >= 0, got %d", c.Field.Count)
	}
	if c.Field.RadiusMax < c.Field.RadiusMin {
		return fmt.Errorf("field.radius_max (%v) < radius_min (%v)", c.Field.RadiusMax, c.Field.RadiusMin)
	}
	if c.Field.OpacityMax < c.Field.OpacityMin {
		return fmt.Errorf("field.opacity_max (%v) < opacity_min (%v)", c.Field.OpacityMax, c.Field.OpacityMin)
	}

	accent, err := parseRGB("render.accent", c.Render.Accent)
	if err != nil {
		return err
	}
	background, err := parseRGB("render.background", c.Render.Background)
	if err != nil {
		return err
	}
	c.Derived.Accent = accent
	c.Derived.Background = background

	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.DT = 1.0 / float64(fps)

	c.Derived.StatsTicks = max(int64(math.Round(c.Telemetry.StatsWindow*float64(fps))), 1)
	return nil
}

func parseRGB(key string, v []int) (RGB, error) {
	if len(v) != 3 {
		return RGB{}, fmt.Errorf("%s: want 3 components, got %d", key, len(v))
	}
	for _, c := range v {
		if c < 0 || c > 255 {
			return RGB{}, fmt.Errorf("%s: component %d out of range 0-255", key, c)
		}
	}
	return RGB{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2])}, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
