package game

import (
	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/field"
)

// Screen dimensions
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// Options holds configuration for game initialization.
type Options struct {
	Seed   int64
	Count  int
	Width  int
	Height int
	Params field.Params

	StepsPerUpdate int   // simulation steps per driver tick, clamped to [1, 10]
	MaxTicks       int64 // stop Run after this many driver ticks (0 = unlimited)
	ReducedMotion  bool  // start paused

	// Telemetry
	DT               float64 // seconds per driver tick
	StatsWindowTicks int64   // driver ticks per stats window
	PerfWindow       int
	LogStats         bool
	OutputDir        string
	Config           *config.Config // written to OutputDir when set
}

// DefaultOptions returns the options of the production page.
func DefaultOptions() Options {
	return Options{
		Seed:             1,
		Count:            field.DefaultCount,
		Width:            ScreenWidth,
		Height:           ScreenHeight,
		Params:           field.DefaultParams(),
		StepsPerUpdate:   1,
		DT:               1.0 / 60.0,
		StatsWindowTicks: 600,
		PerfWindow:       120,
	}
}

// OptionsFromConfig builds options from a loaded config. Run-specific
// fields (Seed, MaxTicks, LogStats, OutputDir) are left for the caller.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	opts.Count = cfg.Field.Count
	opts.Width = cfg.Screen.Width
	opts.Height = cfg.Screen.Height
	opts.Params = FieldParams(cfg)
	opts.ReducedMotion = cfg.Field.ReducedMotion
	opts.DT = cfg.Derived.DT
	opts.StatsWindowTicks = cfg.Derived.StatsTicks
	opts.PerfWindow = cfg.Telemetry.PerfCollectorWindow
	opts.Config = cfg
	return opts
}

// FieldParams converts the field, links and render sections to simulator params.
func FieldParams(cfg *config.Config) field.Params {
	accent := cfg.Derived.Accent
	return field.Params{
		RadiusMin:    cfg.Field.RadiusMin,
		RadiusMax:    cfg.Field.RadiusMax,
		SpeedMax:     cfg.Field.SpeedMax,
		OpacityMin:   cfg.Field.OpacityMin,
		OpacityMax:   cfg.Field.OpacityMax,
		LinkDistance: cfg.Links.Distance,
		LinkMaxAlpha: cfg.Links.MaxAlpha,
		LinkWidth:    cfg.Links.Width,
		Accent:       field.Color{R: accent.R, G: accent.G, B: accent.B, A: 1},
	}
}
