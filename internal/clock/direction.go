package clock

import "github.com/vovakirdan/tui-ambient/internal/core"

// Direction is the diagonal the bouncing clock travels along.
type Direction uint8

const (
	LeftTop Direction = iota
	LeftBottom
	RightTop
	RightBottom
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case LeftTop:
		return "left-top"
	case LeftBottom:
		return "left-bottom"
	case RightTop:
		return "right-top"
	case RightBottom:
		return "right-bottom"
	default:
		return "unknown"
	}
}

// Delta returns the per-step movement (-1 or +1 on each axis).
func (d Direction) Delta() (dx, dy int) {
	dx, dy = 1, 1
	if d == LeftTop || d == LeftBottom {
		dx = -1
	}
	if d == LeftTop || d == RightTop {
		dy = -1
	}
	return dx, dy
}

func fromDelta(dx, dy int) Direction {
	switch {
	case dx < 0 && dy < 0:
		return LeftTop
	case dx < 0:
		return LeftBottom
	case dy < 0:
		return RightTop
	default:
		return RightBottom
	}
}

// Reflect bounces the direction off the edges of bounds.
// bounds holds the valid top-left positions: x in [X, Right()-1], y in [Y, Bottom()-1].
// Hitting a left/right edge flips the horizontal component, a top/bottom edge
// flips the vertical one, and a corner flips both.
func (d Direction) Reflect(x, y int, bounds core.Rect) Direction {
	dx, dy := d.Delta()
	if (dx < 0 && x <= bounds.X) || (dx > 0 && x >= bounds.Right()-1) {
		dx = -dx
	}
	if (dy < 0 && y <= bounds.Y) || (dy > 0 && y >= bounds.Bottom()-1) {
		dy = -dy
	}
	return fromDelta(dx, dy)
}
