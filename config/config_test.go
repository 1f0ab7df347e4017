package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Field.Count != 80 {
		t.Errorf("field.count = %d, want 80", cfg.Field.Count)
	}
	if cfg.Links.Distance != 120 {
		t.Errorf("links.distance = %v, want 120", cfg.Links.Distance)
	}
	if cfg.Links.MaxAlpha != 0.15 {
		t.Errorf("links.max_alpha = %v, want 0.15", cfg.Links.MaxAlpha)
	}
	if cfg.Derived.Accent != (RGB{R: 37, G: 99, B: 235}) {
		t.Errorf("accent = %+v, want {37 99 235}", cfg.Derived.Accent)
	}
	if cfg.Derived.StatsTicks != 600 {
		t.Errorf("derived stats ticks = %d, want 600", cfg.Derived.StatsTicks)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "field:\n  count: 12\nlinks:\n  distance: 80\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Field.Count != 12 {
		t.Errorf("field.count = %d, want 12", cfg.Field.Count)
	}
	if cfg.Links.Distance != 80 {
		t.Errorf("links.distance = %v, want 80", cfg.Links.Distance)
	}
	// Untouched keys keep their defaults.
	if cfg.Field.RadiusMax != 4 {
		t.Errorf("field.radius_max = %v, want default 4", cfg.Field.RadiusMax)
	}
	if cfg.Screen.TargetFPS != 60 {
		t.Errorf("screen.target_fps = %d, want default 60", cfg.Screen.TargetFPS)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"negative count", "field:\n  count: -1\n", "field.count"},
		{"inverted radius", "field:\n  radius_min: 5\n  radius_max: 2\n", "radius_max"},
		{"short accent", "render:\n  accent: [1, 2]\n", "render.accent"},
		{"accent out of range", "render:\n  accent: [1, 2, 300]\n", "render.accent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLReloads(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Field.Count = 33

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reloaded.Field.Count != 33 {
		t.Errorf("field.count = %d, want 33", reloaded.Field.Count)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Cfg()
}

func TestStatsTicksRounding(t *testing.T) {
	tests := []struct {
		name   string
		window float64
		fps    int
		want   int64
	}{
		{"default", 10, 60, 600},
		{"half second at 30fps", 0.5, 30, 15},
		{"rounds to nearest", 0.26, 10, 3},
		{"sub-tick window", 0.001, 60, 1},
		{"zero fps falls back to 60", 1, 0, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatal(err)
			}
			cfg.Telemetry.StatsWindow = tt.window
			cfg.Screen.TargetFPS = tt.fps
			if err := cfg.computeDerived(); err != nil {
				t.Fatal(err)
			}
			if cfg.Derived.StatsTicks != tt.want {
				t.Errorf("StatsTicks = %d, want %d", cfg.Derived.StatsTicks, tt.want)
			}
		})
	}
}
