package theme

import (
	"testing"

	"github.com/vovakirdan/tui-ambient/internal/core"
	"github.com/vovakirdan/tui-ambient/internal/weather"
)

func cellOf(entries ...weather.Entry) *weather.Cell {
	c := &weather.Cell{}
	for _, e := range entries {
		c.Insert(e)
	}
	return c
}

func TestGlyph(t *testing.T) {
	tail := weather.Entry{Kind: weather.KindTail, Len: 1}
	p := DefaultPalette()

	tests := []struct {
		name  string
		mode  weather.Mode
		cell  *weather.Cell
		wind  weather.Direction
		tail  weather.TailMode
		rune  rune
		color core.Color
	}{
		{"rain fast", weather.ModeRain, cellOf(weather.E(weather.KindFast)), weather.DirNone, weather.TailDefault, '.', p.Rain},
		{"rain slow wins", weather.ModeRain, cellOf(weather.E(weather.KindFast), weather.E(weather.KindSlow)), weather.DirNone, weather.TailDefault, '|', p.Rain},
		{"rain slow leans left", weather.ModeRain, cellOf(weather.E(weather.KindSlow)), weather.DirLeft, weather.TailDefault, '/', p.Rain},
		{"rain slow leans right", weather.ModeRain, cellOf(weather.E(weather.KindSlow)), weather.DirRight, weather.TailDefault, '\\', p.Rain},
		{"snow ignores fast", weather.ModeSnow, cellOf(weather.E(weather.KindFast)), weather.DirNone, weather.TailDefault, ' ', core.ColorDefault},
		{"snow flake", weather.ModeSnow, cellOf(weather.E(weather.KindFast), weather.E(weather.KindNormal)), weather.DirNone, weather.TailDefault, '●', p.Snow},
		{"meteor head over tail", weather.ModeMeteor, cellOf(tail, weather.E(weather.KindNormal)), weather.DirNone, weather.TailRight, '★', p.Meteor},
		{"meteor tail right", weather.ModeMeteor, cellOf(tail), weather.DirNone, weather.TailRight, '\\', p.Tail},
		{"star tail left", weather.ModeStar, cellOf(tail), weather.DirNone, weather.TailLeft, '/', p.Tail},
		{"star normal", weather.ModeStar, cellOf(weather.E(weather.KindNormal)), weather.DirNone, weather.TailDefault, '*', p.Star},
		{"disabled", weather.ModeDisabled, cellOf(weather.E(weather.KindNormal)), weather.DirNone, weather.TailDefault, ' ', core.ColorDefault},
		{"empty", weather.ModeRain, cellOf(), weather.DirNone, weather.TailDefault, ' ', core.ColorDefault},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, c := New(tc.mode, p).Glyph(tc.cell, tc.wind, tc.tail)
			if r != tc.rune || c != tc.color {
				t.Errorf("Glyph() = %q/%v, expected %q/%v", r, c, tc.rune, tc.color)
			}
		})
	}
}

func TestDrawFollowsColumnOrder(t *testing.T) {
	g := weather.NewGrid(3, 2)
	g.Cell(0, 1).Insert(weather.E(weather.KindFast))
	g.RotateRight()

	s := core.NewScreen(3, 2)
	New(weather.ModeRain, DefaultPalette()).Draw(s, g, weather.DirNone, weather.TailDefault)

	if s.Get(1, 1) != '.' {
		t.Errorf("row 1 = %q, expected drop in column 1 after rotation", s.Row(1))
	}
	if s.Get(0, 1) != ' ' {
		t.Errorf("row 1 = %q, column 0 should be empty", s.Row(1))
	}
}
