package weather

import (
	"fmt"
	"strings"
)

// MaxWindDuration is how many ticks a rolled direction persists.
const MaxWindDuration = 255

// WindMode is the configured wind behaviour.
type WindMode uint8

const (
	WindRandom WindMode = iota
	WindDisabled
	WindLeft
	WindRight
)

// ParseWindMode converts a config/CLI name into a WindMode.
func ParseWindMode(s string) (WindMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "":
		return WindRandom, nil
	case "disable", "disabled", "none":
		return WindDisabled, nil
	case "left", "only-left":
		return WindLeft, nil
	case "right", "only-right":
		return WindRight, nil
	default:
		return WindRandom, fmt.Errorf("weather: unknown wind mode %q (want random, disable, left or right)", s)
	}
}

// String returns the config name of the wind mode.
func (m WindMode) String() string {
	switch m {
	case WindRandom:
		return "random"
	case WindDisabled:
		return "disable"
	case WindLeft:
		return "left"
	case WindRight:
		return "right"
	default:
		return "unknown"
	}
}

// WithoutRandom maps Random to Disabled; forced directions are kept.
func (m WindMode) WithoutRandom() WindMode {
	if m == WindRandom {
		return WindDisabled
	}
	return m
}

// Direction is the current lateral drift.
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// WindState is the live wind direction and the ticks left before a re-roll.
type WindState struct {
	Direction Direction
	Remaining int
}

// Wind drifts the grid sideways by permuting column order.
type Wind struct {
	mode  WindMode
	state WindState
}

// NewWind creates a wind pass; forced modes start with their direction set.
func NewWind(mode WindMode) *Wind {
	return &Wind{
		mode:  mode,
		state: WindState{Direction: forcedDirection(mode)},
	}
}

// Mode returns the configured wind mode.
func (w *Wind) Mode() WindMode {
	return w.mode
}

// State returns the current wind state.
func (w *Wind) State() WindState {
	return w.state
}

// OnFrame updates the direction and rotates the columns once if wind is blowing.
func (w *Wind) OnFrame(g *Grid, seed uint64, _ uint64) Signal {
	if g.Width() <= 1 {
		return Skip
	}

	switch w.mode {
	case WindDisabled:
		w.state.Direction = DirNone
		return Skip
	case WindLeft, WindRight:
		w.state.Direction = forcedDirection(w.mode)
	default:
		w.roll(seed)
	}

	switch w.state.Direction {
	case DirLeft:
		g.RotateLeft()
	case DirRight:
		g.RotateRight()
	default:
		return Skip
	}
	return Render
}

// roll counts down the current gust and picks a new direction when it expires.
func (w *Wind) roll(seed uint64) {
	if w.state.Direction != DirNone && w.state.Remaining > 0 {
		w.state.Remaining--
	}
	if w.state.Remaining > 0 && w.state.Direction != DirNone {
		return
	}

	switch {
	case seed%2024 == 0:
		w.state.Direction = DirLeft
	case seed%123 == 0:
		w.state.Direction = DirRight
	default:
		w.state.Direction = DirNone
	}

	w.state.Remaining = 0
	if w.state.Direction != DirNone {
		w.state.Remaining = MaxWindDuration
	}
}

func forcedDirection(mode WindMode) Direction {
	switch mode {
	case WindLeft:
		return DirLeft
	case WindRight:
		return DirRight
	default:
		return DirNone
	}
}
