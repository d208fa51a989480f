package weather

import (
	"fmt"
	"strings"
)

// Mode selects the weather effect.
type Mode uint8

const (
	ModeRain Mode = iota
	ModeSnow
	ModeMeteor
	ModeStar
	ModeDisabled
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeRain, ModeSnow, ModeMeteor, ModeStar, ModeDisabled}

// ParseMode converts a config/CLI name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rain", "":
		return ModeRain, nil
	case "snow":
		return ModeSnow, nil
	case "meteor":
		return ModeMeteor, nil
	case "star", "stars":
		return ModeStar, nil
	case "disable", "disabled", "none", "calm":
		return ModeDisabled, nil
	default:
		return ModeRain, fmt.Errorf("weather: unknown mode %q (want rain, snow, meteor, star or disabled)", s)
	}
}

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeRain:
		return "rain"
	case ModeSnow:
		return "snow"
	case ModeMeteor:
		return "meteor"
	case ModeStar:
		return "star"
	case ModeDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// FramesPerStep returns how many frames a kind waits between one-row moves.
// Zero means the kind never moves under this mode.
func (m Mode) FramesPerStep(k Kind) uint64 {
	switch m {
	case ModeRain:
		switch k {
		case KindFast:
			return 1
		case KindNormal:
			return 2
		case KindSlow:
			return 3
		}
	case ModeSnow:
		switch k {
		case KindFast:
			return 2
		case KindNormal:
			return 4
		case KindSlow:
			return 6
		}
	case ModeMeteor:
		if k.IsDropping() {
			return 4
		}
	case ModeStar:
		switch k {
		case KindFast:
			return 4
		case KindNormal:
			return 6
		case KindSlow:
			return 8
		}
	}
	return 0
}

// DefaultThreshold returns the spawn density used when none is configured.
// Lower is denser.
func (m Mode) DefaultThreshold() uint16 {
	switch m {
	case ModeRain, ModeSnow:
		return 50
	case ModeMeteor:
		return 200
	case ModeStar:
		return 120
	default:
		return 0
	}
}

// HasTail reports whether the mode draws trailing streaks.
func (m Mode) HasTail() bool {
	return m == ModeMeteor || m == ModeStar
}
