// Package clock implements the big digital clock drawn over the weather.
// The overlay keeps its own state (digits, position, colon visibility)
// and never touches the weather grid.
package clock

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-ambient/internal/core"
)

// Defaults for the bouncing and blinking timers, in render frames.
const (
	DefaultBounceEvery = 6
	DefaultBlinkEvery  = 30
)

// Time is the wall-clock value shown by the overlay.
type Time struct {
	Hours   uint8
	Minutes uint8
	Seconds uint8
}

// FromTime extracts the local hour, minute and second.
func FromTime(t time.Time) Time {
	return Time{
		Hours:   uint8(t.Hour()),
		Minutes: uint8(t.Minute()),
		Seconds: uint8(t.Second()),
	}
}

// String formats the time as HH:MM:SS.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// Options configures the overlay behavior.
type Options struct {
	Hidden      bool
	Bounce      bool
	Blink       bool
	ShowSeconds bool
	BounceEvery uint64 // Frames per one-cell move, 0 selects the default
	BlinkEvery  uint64 // Frames per colon toggle, 0 selects the default
	Color       core.Color
}

// State is the read-only view handed to the renderer.
type State struct {
	Time         Time
	X, Y         int
	Bounds       core.Rect // Valid top-left positions
	Direction    Direction
	ColonVisible bool
}

// Overlay tracks the clock placement and blinking.
type Overlay struct {
	opts  Options
	state State
}

// New creates an overlay showing the current time.
func New(opts Options) *Overlay {
	if opts.BounceEvery == 0 {
		opts.BounceEvery = DefaultBounceEvery
	}
	if opts.BlinkEvery == 0 {
		opts.BlinkEvery = DefaultBlinkEvery
	}
	return &Overlay{
		opts: opts,
		state: State{
			Time:         FromTime(time.Now()),
			Direction:    RightBottom,
			ColonVisible: true,
			Bounds:       core.NewRect(0, 0, 1, 1),
		},
	}
}

// Options returns the overlay configuration.
func (o *Overlay) Options() Options {
	return o.opts
}

// State returns a copy of the current overlay state.
func (o *Overlay) State() State {
	return o.state
}

// Width returns the clock width in cells.
func (o *Overlay) Width() int {
	return Width(o.opts.ShowSeconds)
}

// Resize recomputes the bounds for a new screen size.
// Plain mode recenters; bouncing mode keeps the position clamped to the new bounds.
func (o *Overlay) Resize(screenW, screenH int) {
	w := core.Max(screenW-o.Width(), 0) + 1
	h := core.Max(screenH-Height, 0) + 1
	o.state.Bounds = core.NewRect(0, 0, w, h)

	if !o.opts.Bounce {
		o.state.X = (w - 1) / 2
		o.state.Y = (h - 1) / 2
		return
	}
	o.clamp()
}

// Refresh re-reads the wall clock. Called from the one-second tick.
func (o *Overlay) Refresh(now time.Time) {
	o.state.Time = FromTime(now)
}

// OnFrame advances the bounce and blink timers for one render frame.
// It reports whether a visible clock changed.
func (o *Overlay) OnFrame(frame uint64) bool {
	changed := false
	if o.opts.Blink && frame%o.opts.BlinkEvery == 0 {
		o.state.ColonVisible = !o.state.ColonVisible
		changed = true
	}
	if o.opts.Bounce && frame%o.opts.BounceEvery == 0 {
		o.step()
		changed = true
	}
	return changed && !o.opts.Hidden
}

// step moves the clock one cell, reflecting off the bounds first.
func (o *Overlay) step() {
	o.state.Direction = o.state.Direction.Reflect(o.state.X, o.state.Y, o.state.Bounds)
	dx, dy := o.state.Direction.Delta()
	o.state.X += dx
	o.state.Y += dy
	o.clamp()
}

func (o *Overlay) clamp() {
	b := o.state.Bounds
	o.state.X = core.Clamp(o.state.X, b.X, b.Right()-1)
	o.state.Y = core.Clamp(o.state.Y, b.Y, b.Bottom()-1)
}

// Render draws the clock into dst. Nothing is drawn when hidden.
func (o *Overlay) Render(dst *core.Screen) {
	if o.opts.Hidden {
		return
	}
	box := core.NewRect(o.state.X, o.state.Y, o.Width(), Height)
	if !dst.Bounds().Intersects(box) {
		return
	}

	x := box.X
	t := o.state.Time
	x = o.renderPair(dst, x, box.Y, t.Hours)
	x = o.renderColon(dst, x, box.Y)
	x = o.renderPair(dst, x, box.Y, t.Minutes)
	if o.opts.ShowSeconds {
		x = o.renderColon(dst, x, box.Y)
		o.renderPair(dst, x, box.Y, t.Seconds)
	}
}

func (o *Overlay) renderPair(dst *core.Screen, x, y int, v uint8) int {
	o.renderDigit(dst, x, y, v/10)
	o.renderDigit(dst, x+digitSize+1, y, v%10)
	return x + pairWidth
}

func (o *Overlay) renderDigit(dst *core.Screen, x, y int, d uint8) {
	bitmap := digits[d%10]
	for i, on := range bitmap {
		if on == 0 {
			continue
		}
		dst.SetCell(x+i%digitSize, y+i/digitSize, DigitRune, o.opts.Color)
	}
}

func (o *Overlay) renderColon(dst *core.Screen, x, y int) int {
	if o.state.ColonVisible {
		dst.SetCell(x+1, y+1, ColonRune, o.opts.Color)
		dst.SetCell(x+1, y+3, ColonRune, o.opts.Color)
	}
	return x + colonWidth
}
