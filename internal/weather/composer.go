package weather

import "fmt"

// Settings selects the pass chain built by NewComposer.
type Settings struct {
	Mode      Mode
	Threshold uint16 // 0 selects Mode.DefaultThreshold()
	Wind      WindMode
}

// Composer runs a fixed chain of passes chosen once from the mode.
type Composer struct {
	mode  Mode
	wind  *Wind
	tail  *Tail
	chain []Pass
}

// NewComposer builds the pass chain for the configured mode:
//
//	rain, snow     -> wind + dropping
//	meteor, star   -> wind (no random gusts) + dropping + tail
//	disabled       -> no-op
func NewComposer(s Settings) (*Composer, error) {
	c := &Composer{mode: s.Mode}

	threshold := s.Threshold
	if threshold == 0 {
		threshold = s.Mode.DefaultThreshold()
	}

	switch s.Mode {
	case ModeRain, ModeSnow:
		drop, err := NewDropping(s.Mode, threshold)
		if err != nil {
			return nil, err
		}
		c.wind = NewWind(s.Wind)
		c.chain = []Pass{c.wind, drop}

	case ModeMeteor, ModeStar:
		drop, err := NewDropping(s.Mode, threshold)
		if err != nil {
			return nil, err
		}
		c.wind = NewWind(s.Wind.WithoutRandom())
		c.tail = NewTail(TailModeFromWind(s.Wind))
		c.chain = []Pass{c.wind, drop, c.tail}

	case ModeDisabled:
		c.chain = []Pass{Noop{}}

	default:
		return nil, fmt.Errorf("weather: unsupported mode %d", s.Mode)
	}

	return c, nil
}

// OnFrame runs every pass in order; the result is Render if any pass asked for it.
func (c *Composer) OnFrame(g *Grid, seed uint64, frame uint64) Signal {
	sig := Skip
	for _, p := range c.chain {
		sig = sig.Or(p.OnFrame(g, seed, frame))
	}
	return sig
}

// Mode returns the active weather mode.
func (c *Composer) Mode() Mode {
	return c.mode
}

// Wind returns the live wind state (zero value when the chain has no wind pass).
func (c *Composer) Wind() WindState {
	if c.wind == nil {
		return WindState{}
	}
	return c.wind.State()
}

// TailMode returns the tail diagonal, TailDefault when the mode draws no tails.
func (c *Composer) TailMode() TailMode {
	if c.tail == nil {
		return TailDefault
	}
	return c.tail.Mode()
}
