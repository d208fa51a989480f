package scene

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-ambient/internal/config"
	"github.com/vovakirdan/tui-ambient/internal/core"
	"github.com/vovakirdan/tui-ambient/internal/registry"
)

func runtimeCfg(w, h int, seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = w
	cfg.ScreenH = h
	cfg.Seed = seed
	return cfg
}

func renderAfter(t *testing.T, id string, cfg config.Config, frames int) string {
	t.Helper()
	s, err := registry.Create(id, cfg)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", id, err)
	}
	s.Reset(runtimeCfg(60, 20, 99))
	s.TickClock(time.Date(2024, 1, 1, 10, 20, 30, 0, time.Local))
	for i := 0; i < frames; i++ {
		s.Step()
	}
	dst := core.NewScreen(60, 20)
	s.Render(dst)
	return dst.String()
}

func TestPresetsRegistered(t *testing.T) {
	for _, p := range Presets {
		if !registry.Exists(p.ID) {
			t.Errorf("preset %q not registered", p.ID)
		}
	}
}

func TestPresetForcesMode(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Mode = "rain"

	s, err := registry.Create("meteor", cfg)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if got := s.Stats().Mode; got != "meteor" {
		t.Errorf("Stats().Mode = %q, expected meteor", got)
	}
}

func TestSameSeedSameFrames(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Clock.Hidden = true

	for _, id := range []string{"rain", "snow", "meteor", "star"} {
		t.Run(id, func(t *testing.T) {
			a := renderAfter(t, id, cfg, 300)
			b := renderAfter(t, id, cfg, 300)
			if a != b {
				t.Error("two runs with the same seed diverged")
			}
		})
	}
}

func TestRainFillsScreen(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Clock.Hidden = true
	cfg.Level = 1

	s, err := registry.Create("rain", cfg)
	if err != nil {
		t.Fatal(err)
	}
	s.Reset(runtimeCfg(40, 10, 5))
	for i := 0; i < 60; i++ {
		s.Step()
	}

	dst := core.NewScreen(40, 10)
	s.Render(dst)

	drawn := 0
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if dst.Get(x, y) != ' ' {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("rain at level 1 drew nothing after 60 frames")
	}
}

func TestCalmDrawsOnlyClock(t *testing.T) {
	s, err := registry.Create("calm", config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s.Reset(runtimeCfg(50, 11, 1))
	s.TickClock(time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local))

	for i := 0; i < 100; i++ {
		if s.Step() {
			t.Fatal("calm scene asked for a weather redraw")
		}
	}

	dst := core.NewScreen(50, 11)
	s.Render(dst)
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			r := dst.Get(x, y)
			if r != ' ' && r != '█' && r != '▀' {
				t.Fatalf("unexpected rune %q at (%d,%d)", r, x, y)
			}
		}
	}

	st := s.Stats()
	if st.Ticks != 100 || st.Renders != 0 || st.Threshold != 0 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestCalmBlinkAsksForRedraw(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Clock.Blink = true
	cfg.Clock.BlinkEvery = 30

	s, err := registry.Create("calm", cfg)
	if err != nil {
		t.Fatal(err)
	}
	s.Reset(runtimeCfg(50, 11, 1))

	var redraws []int
	for i := 1; i <= 60; i++ {
		if s.Step() {
			redraws = append(redraws, i)
		}
	}
	if len(redraws) != 2 || redraws[0] != 30 || redraws[1] != 60 {
		t.Errorf("redraws on frames %v, expected [30 60]", redraws)
	}
	if got := s.Stats().Renders; got != 2 {
		t.Errorf("Renders = %d, expected 2", got)
	}
}

func TestStatsCountFrames(t *testing.T) {
	s, err := registry.Create("snow", config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s.Reset(runtimeCfg(30, 10, 3))
	for i := 0; i < 250; i++ {
		s.Step()
	}

	st := s.Stats()
	if st.Ticks != 250 {
		t.Errorf("Ticks = %d, expected 250", st.Ticks)
	}
	if st.Frame != 10 {
		t.Errorf("Frame = %d, expected 10 after wrapping at 240", st.Frame)
	}
	if st.Renders != 250 {
		t.Errorf("Renders = %d, expected every frame to redraw snow", st.Renders)
	}

	s.Reset(runtimeCfg(30, 10, 3))
	if st := s.Stats(); st.Ticks != 0 || st.Frame != 0 {
		t.Errorf("Stats() after Reset = %+v", st)
	}
}

func TestResizeDiscardsWeather(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Level = 1
	sc, err := New("rain", "Rain", cfg)
	if err != nil {
		t.Fatal(err)
	}
	sc.Reset(runtimeCfg(20, 8, 11))
	for i := 0; i < 30; i++ {
		sc.Step()
	}

	sc.Resize(25, 6)
	g := sc.Grid()
	if g.Width() != 25 || g.Height() != 6 {
		t.Fatalf("grid = %dx%d, expected 25x6", g.Width(), g.Height())
	}
	for x := 0; x < g.Width(); x++ {
		for _, c := range g.Column(x) {
			if c.Len() != 0 {
				t.Fatal("Resize() kept weather state")
			}
		}
	}

	b := sc.Clock().State().Bounds
	if b.W != 1 || b.H != 2 {
		t.Errorf("clock bounds = %+v after resize, expected 1x2", b)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Theme.Clock = "mauve"
	if _, err := New("rain", "Rain", cfg); err == nil {
		t.Error("New() accepted an unknown clock color")
	}
}

func TestPresetFor(t *testing.T) {
	for _, p := range Presets {
		if got := PresetFor(p.Mode); got != p.ID {
			t.Errorf("PresetFor(%v) = %q, expected %q", p.Mode, got, p.ID)
		}
	}
}
