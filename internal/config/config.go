// Package config provides YAML-based configuration loading and density
// presets for the ambient scenes.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-ambient/internal/clock"
	"github.com/vovakirdan/tui-ambient/internal/core"
	"github.com/vovakirdan/tui-ambient/internal/theme"
	"github.com/vovakirdan/tui-ambient/internal/weather"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Limits for numeric fields.
const (
	MaxFPS        = 240
	MaxFrameEvery = weather.FrameWrap
)

// Config contains all configuration for an ambient scene.
type Config struct {
	Mode    string        `yaml:"mode"`
	Level   int           `yaml:"level"`   // Density threshold, 0 = mode default scaled by Density
	Density DensityPreset `yaml:"density"` // light, normal or heavy
	Wind    string        `yaml:"wind"`
	FPS     int           `yaml:"fps"`
	Clock   ClockConfig   `yaml:"clock"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// ClockConfig defines the clock overlay behavior.
type ClockConfig struct {
	Hidden      bool `yaml:"hidden"`
	Bounce      bool `yaml:"bounce"`
	Blink       bool `yaml:"blink"`
	ShowSeconds bool `yaml:"show_seconds"`
	BounceEvery int  `yaml:"bounce_every"`
	BlinkEvery  int  `yaml:"blink_every"`
}

// ThemeConfig names the colors used by each mode and the clock.
type ThemeConfig struct {
	Rain   string `yaml:"rain"`
	Snow   string `yaml:"snow"`
	Meteor string `yaml:"meteor"`
	Star   string `yaml:"star"`
	Tail   string `yaml:"tail"`
	Clock  string `yaml:"clock"`
}

// DensityPreset represents a named density level.
type DensityPreset string

const (
	DensityLight  DensityPreset = "light"
	DensityNormal DensityPreset = "normal"
	DensityHeavy  DensityPreset = "heavy"
)

// ScaleThreshold applies a preset to a mode's default threshold.
// Light halves the spawn rate, heavy doubles it.
func ScaleThreshold(base uint16, preset DensityPreset) uint16 {
	switch preset {
	case DensityLight:
		if base > math.MaxUint16/2 {
			return math.MaxUint16
		}
		return base * 2
	case DensityHeavy:
		if base/2 == 0 {
			return 1
		}
		return base / 2
	default:
		return base
	}
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if _, err := weather.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := weather.ParseWindMode(c.Wind); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Level < 0 || c.Level > math.MaxUint16 {
		return fmt.Errorf("%w: level %d out of range 0..%d", ErrInvalid, c.Level, math.MaxUint16)
	}
	switch c.Density {
	case "", DensityLight, DensityNormal, DensityHeavy:
	default:
		return fmt.Errorf("%w: density %q (want light, normal or heavy)", ErrInvalid, c.Density)
	}
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d out of range 1..%d", ErrInvalid, c.FPS, MaxFPS)
	}
	if c.Clock.BounceEvery < 0 || c.Clock.BounceEvery > MaxFrameEvery {
		return fmt.Errorf("%w: clock.bounce_every %d out of range 0..%d", ErrInvalid, c.Clock.BounceEvery, MaxFrameEvery)
	}
	if c.Clock.BlinkEvery < 0 || c.Clock.BlinkEvery > MaxFrameEvery {
		return fmt.Errorf("%w: clock.blink_every %d out of range 0..%d", ErrInvalid, c.Clock.BlinkEvery, MaxFrameEvery)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := core.ParseColor(c.Theme.Clock); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// WeatherMode returns the parsed mode.
func (c Config) WeatherMode() (weather.Mode, error) {
	return weather.ParseMode(c.Mode)
}

// Threshold resolves the spawn threshold: an explicit level wins,
// otherwise the mode default scaled by the density preset.
func (c Config) Threshold(mode weather.Mode) uint16 {
	if c.Level > 0 {
		return uint16(c.Level)
	}
	return ScaleThreshold(mode.DefaultThreshold(), c.Density)
}

// WeatherSettings builds the composer settings.
func (c Config) WeatherSettings() (weather.Settings, error) {
	mode, err := weather.ParseMode(c.Mode)
	if err != nil {
		return weather.Settings{}, err
	}
	wind, err := weather.ParseWindMode(c.Wind)
	if err != nil {
		return weather.Settings{}, err
	}
	return weather.Settings{
		Mode:      mode,
		Threshold: c.Threshold(mode),
		Wind:      wind,
	}, nil
}

// ClockOptions builds the overlay options.
func (c Config) ClockOptions() (clock.Options, error) {
	color, err := core.ParseColor(c.Theme.Clock)
	if err != nil {
		return clock.Options{}, err
	}
	return clock.Options{
		Hidden:      c.Clock.Hidden,
		Bounce:      c.Clock.Bounce,
		Blink:       c.Clock.Blink,
		ShowSeconds: c.Clock.ShowSeconds,
		BounceEvery: uint64(c.Clock.BounceEvery),
		BlinkEvery:  uint64(c.Clock.BlinkEvery),
		Color:       color,
	}, nil
}

// Palette parses the theme colors.
func (c Config) Palette() (theme.Palette, error) {
	p := theme.DefaultPalette()
	fields := []struct {
		name string
		dst  *core.Color
	}{
		{c.Theme.Rain, &p.Rain},
		{c.Theme.Snow, &p.Snow},
		{c.Theme.Meteor, &p.Meteor},
		{c.Theme.Star, &p.Star},
		{c.Theme.Tail, &p.Tail},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.name) == "" {
			continue
		}
		color, err := core.ParseColor(f.name)
		if err != nil {
			return p, err
		}
		*f.dst = color
	}
	return p, nil
}
