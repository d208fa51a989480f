// Package theme maps weather cells to glyphs and colors for each mode.
package theme

import (
	"github.com/vovakirdan/tui-ambient/internal/core"
	"github.com/vovakirdan/tui-ambient/internal/weather"
)

// Palette holds the colors used per mode.
type Palette struct {
	Rain   core.Color
	Snow   core.Color
	Meteor core.Color
	Star   core.Color
	Tail   core.Color
}

// DefaultPalette returns the standard colors.
func DefaultPalette() Palette {
	return Palette{
		Rain:   core.ColorGray,
		Snow:   core.ColorBrightWhite,
		Meteor: core.ColorYellow,
		Star:   core.ColorBrightYellow,
		Tail:   core.ColorDefault,
	}
}

// Theme turns cell contents into a rune and color for one mode.
type Theme struct {
	Mode    weather.Mode
	Palette Palette
}

// New creates a theme for the given mode.
func New(mode weather.Mode, p Palette) Theme {
	return Theme{Mode: mode, Palette: p}
}

// Primary picks the kind a cell is drawn as.
// Snow only shows Normal flakes; other modes favor Slow, then any head,
// then whatever was inserted first.
func (t Theme) Primary(c *weather.Cell) weather.Kind {
	switch t.Mode {
	case weather.ModeDisabled:
		return weather.KindNone
	case weather.ModeSnow:
		if c.Contains(weather.KindNormal) {
			return weather.KindNormal
		}
		return weather.KindNone
	}

	if c.Contains(weather.KindSlow) {
		return weather.KindSlow
	}
	for _, e := range c.Entries() {
		if e.Kind.IsDropping() {
			return e.Kind
		}
	}
	return c.First()
}

// Glyph returns the rune and color for a cell given the live wind and tail state.
// A space with the default color means nothing is drawn.
func (t Theme) Glyph(c *weather.Cell, wind weather.Direction, tail weather.TailMode) (rune, core.Color) {
	k := t.Primary(c)
	if k == weather.KindNone {
		return ' ', core.ColorDefault
	}

	switch t.Mode {
	case weather.ModeRain:
		switch k {
		case weather.KindFast:
			return '.', t.Palette.Rain
		case weather.KindNormal:
			return ':', t.Palette.Rain
		case weather.KindSlow:
			return slant(wind), t.Palette.Rain
		}
	case weather.ModeSnow:
		return '●', t.Palette.Snow
	case weather.ModeMeteor:
		if k == weather.KindTail {
			return tailRune(tail), t.Palette.Tail
		}
		return '★', t.Palette.Meteor
	case weather.ModeStar:
		switch k {
		case weather.KindFast:
			return '.', t.Palette.Star
		case weather.KindNormal:
			return '*', t.Palette.Star
		case weather.KindSlow:
			return '+', t.Palette.Star
		case weather.KindTail:
			return tailRune(tail), t.Palette.Tail
		}
	}
	return ' ', core.ColorDefault
}

// slant draws slow rain leaning with the wind.
func slant(d weather.Direction) rune {
	switch d {
	case weather.DirLeft:
		return '/'
	case weather.DirRight:
		return '\\'
	default:
		return '|'
	}
}

func tailRune(m weather.TailMode) rune {
	switch m {
	case weather.TailLeft:
		return '/'
	case weather.TailRight:
		return '\\'
	default:
		return '|'
	}
}

// Draw paints the whole grid into dst, one cell per screen position.
func (t Theme) Draw(dst *core.Screen, g *weather.Grid, wind weather.Direction, tail weather.TailMode) {
	w := core.Min(dst.Width(), g.Width())
	h := core.Min(dst.Height(), g.Height())
	for x := 0; x < w; x++ {
		col := g.Column(x)
		for y := 0; y < h; y++ {
			r, c := t.Glyph(&col[y], wind, tail)
			if r == ' ' {
				continue
			}
			dst.SetCell(x, y, r, c)
		}
	}
}
