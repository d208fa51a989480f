package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-ambient/internal/core"
	"github.com/vovakirdan/tui-ambient/internal/weather"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("mode: meteor\nclock:\n  bounce: true\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Mode != "meteor" || !cfg.Clock.Bounce {
		t.Errorf("parsed = %+v, expected meteor with bouncing clock", cfg)
	}
	if cfg.FPS != 60 || cfg.Clock.BlinkEvery != 30 || !cfg.Clock.ShowSeconds {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"unknown mode", func(c *Config) { c.Mode = "hail" }, false},
		{"unknown wind", func(c *Config) { c.Wind = "up" }, false},
		{"negative level", func(c *Config) { c.Level = -1 }, false},
		{"huge level", func(c *Config) { c.Level = 70000 }, false},
		{"bad density", func(c *Config) { c.Density = "soup" }, false},
		{"zero fps", func(c *Config) { c.FPS = 0 }, false},
		{"fast fps", func(c *Config) { c.FPS = 241 }, false},
		{"bad bounce", func(c *Config) { c.Clock.BounceEvery = 500 }, false},
		{"bad color", func(c *Config) { c.Theme.Meteor = "mauve" }, false},
		{"bad clock color", func(c *Config) { c.Theme.Clock = "mauve" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Fatalf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		density DensityPreset
		mode    weather.Mode
		want    uint16
	}{
		{"explicit level", 7, DensityHeavy, weather.ModeRain, 7},
		{"normal", 0, DensityNormal, weather.ModeRain, 50},
		{"light", 0, DensityLight, weather.ModeMeteor, 400},
		{"heavy", 0, DensityHeavy, weather.ModeStar, 60},
		{"empty preset", 0, "", weather.ModeSnow, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Level = tc.level
			cfg.Density = tc.density
			if got := cfg.Threshold(tc.mode); got != tc.want {
				t.Errorf("Threshold() = %d, expected %d", got, tc.want)
			}
		})
	}

	if ScaleThreshold(1, DensityHeavy) != 1 {
		t.Error("heavy preset must never produce a zero threshold")
	}
}

func TestWeatherSettingsAndClockOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "star"
	cfg.Wind = "left"
	cfg.Theme.Clock = "cyan"
	cfg.Clock.Bounce = true

	s, err := cfg.WeatherSettings()
	if err != nil {
		t.Fatalf("WeatherSettings() failed: %v", err)
	}
	if s.Mode != weather.ModeStar || s.Wind != weather.WindLeft || s.Threshold != 120 {
		t.Errorf("WeatherSettings() = %+v", s)
	}

	opts, err := cfg.ClockOptions()
	if err != nil {
		t.Fatalf("ClockOptions() failed: %v", err)
	}
	if !opts.Bounce || opts.BounceEvery != 6 || opts.Color != core.ColorCyan {
		t.Errorf("ClockOptions() = %+v", opts)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ambient.yaml")
	if err := os.WriteFile(path, []byte("mode: snow\nwind: right\nlevel: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Mode != "snow" || cfg.Wind != "right" || cfg.Level != 12 {
		t.Errorf("Load() = %+v", cfg)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("fps: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of an invalid file = %v, expected ErrInvalid", err)
	}
}

func TestApplyDensityPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = 9

	ApplyDensityPreset(&cfg, "")
	if cfg.Level != 9 {
		t.Error("empty preset should leave the config alone")
	}

	ApplyDensityPreset(&cfg, DensityHeavy)
	if cfg.Level != 0 || cfg.Density != DensityHeavy {
		t.Errorf("ApplyDensityPreset() = %+v", cfg)
	}
}
