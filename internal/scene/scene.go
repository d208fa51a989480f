// Package scene ties the weather composer, the clock overlay and the theme
// into a single registry.Scene. Presets register themselves in init().
package scene

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-ambient/internal/clock"
	"github.com/vovakirdan/tui-ambient/internal/config"
	"github.com/vovakirdan/tui-ambient/internal/core"
	"github.com/vovakirdan/tui-ambient/internal/registry"
	"github.com/vovakirdan/tui-ambient/internal/theme"
	"github.com/vovakirdan/tui-ambient/internal/weather"
)

// Scene is an ambient weather scene with an optional clock on top.
type Scene struct {
	id    string
	title string

	settings  weather.Settings
	clockOpts clock.Options
	theme     theme.Theme

	composer *weather.Composer
	grid     *weather.Grid
	frame    weather.Frame
	clock    *clock.Overlay
	rng      *rand.Rand

	ticks   uint64
	renders uint64
}

// New builds a scene from a validated config. Reset must be called
// before the first Step.
func New(id, title string, cfg config.Config) (*Scene, error) {
	settings, err := cfg.WeatherSettings()
	if err != nil {
		return nil, err
	}
	clockOpts, err := cfg.ClockOptions()
	if err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	composer, err := weather.NewComposer(settings)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		id:        id,
		title:     title,
		settings:  settings,
		clockOpts: clockOpts,
		theme:     theme.New(settings.Mode, palette),
		composer:  composer,
		grid:      weather.NewGrid(0, 0),
		clock:     clock.New(clockOpts),
		rng:       rand.New(rand.NewSource(1)),
	}
	return s, nil
}

// ID returns the preset identifier.
func (s *Scene) ID() string {
	return s.id
}

// Title returns the display name.
func (s *Scene) Title() string {
	return s.title
}

// Reset rebuilds the grid, passes and clock for a fresh run.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))

	// Settings were checked in New, so a rebuild cannot fail.
	if composer, err := weather.NewComposer(s.settings); err == nil {
		s.composer = composer
	}

	s.grid = weather.NewGrid(cfg.ScreenW, cfg.ScreenH)
	s.frame = weather.Frame{}
	s.clock = clock.New(s.clockOpts)
	s.clock.Resize(cfg.ScreenW, cfg.ScreenH)
	s.ticks = 0
	s.renders = 0
}

// Resize discards the weather state and refits the clock.
func (s *Scene) Resize(w, h int) {
	s.grid.Resize(w, h)
	s.clock.Resize(w, h)
}

// Step runs one frame: one fresh seed for every weather pass, then the
// clock timers on the same frame number. It reports whether the weather or
// a visible clock changed.
func (s *Scene) Step() bool {
	seed := s.rng.Uint64()
	frame := s.frame.Next()

	sig := s.composer.OnFrame(s.grid, seed, frame)
	if s.clock.OnFrame(frame) {
		sig = sig.Or(weather.Render)
	}

	s.ticks++
	if sig == weather.Render {
		s.renders++
	}
	return sig == weather.Render
}

// TickClock refreshes the clock digits.
func (s *Scene) TickClock(now time.Time) {
	s.clock.Refresh(now)
}

// Render draws the weather, then the clock over it.
func (s *Scene) Render(dst *core.Screen) {
	s.theme.Draw(dst, s.grid, s.composer.Wind().Direction, s.composer.TailMode())
	s.clock.Render(dst)
}

// Stats returns a snapshot for the footer and history.
func (s *Scene) Stats() core.SceneStats {
	threshold := s.settings.Threshold
	if s.settings.Mode == weather.ModeDisabled {
		threshold = 0
	}
	return core.SceneStats{
		Mode:      s.settings.Mode.String(),
		Ticks:     s.ticks,
		Renders:   s.renders,
		Frame:     s.frame.Value(),
		Wind:      s.composer.Wind().Direction.String(),
		Threshold: threshold,
	}
}

// Grid exposes the weather grid for inspection.
func (s *Scene) Grid() *weather.Grid {
	return s.grid
}

// Clock exposes the overlay for inspection.
func (s *Scene) Clock() *clock.Overlay {
	return s.clock
}

// Preset is a named mode the registry can create.
type Preset struct {
	ID    string
	Title string
	Mode  weather.Mode
}

// Presets lists the built-in scenes.
var Presets = []Preset{
	{ID: "rain", Title: "Rain", Mode: weather.ModeRain},
	{ID: "snow", Title: "Snow", Mode: weather.ModeSnow},
	{ID: "meteor", Title: "Meteor Shower", Mode: weather.ModeMeteor},
	{ID: "star", Title: "Falling Stars", Mode: weather.ModeStar},
	{ID: "calm", Title: "Calm (clock only)", Mode: weather.ModeDisabled},
}

// Factory returns a registry factory that forces the preset's mode onto
// the loaded config.
func (p Preset) Factory() registry.Factory {
	return func(cfg config.Config) (registry.Scene, error) {
		cfg.Mode = p.Mode.String()
		s, err := New(p.ID, p.Title, cfg)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", p.ID, err)
		}
		return s, nil
	}
}

func init() {
	for _, p := range Presets {
		registry.Register(p.ID, p.Factory())
	}
}

// PresetFor returns the preset ID that runs the given mode.
func PresetFor(mode weather.Mode) string {
	for _, p := range Presets {
		if p.Mode == mode {
			return p.ID
		}
	}
	return Presets[0].ID
}
