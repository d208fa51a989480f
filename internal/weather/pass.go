package weather

// Signal tells the platform whether a pass changed anything worth redrawing.
type Signal bool

const (
	Skip   Signal = false
	Render Signal = true
)

// Or merges two signals: render if either requested it.
func (s Signal) Or(other Signal) Signal {
	return s || other
}

// String returns "render" or "skip".
func (s Signal) String() string {
	if s {
		return "render"
	}
	return "skip"
}

// Pass is one stateful simulation step run on every tick.
// seed is the tick's single random draw, shared by all passes in the chain.
// frame is the wrapped frame counter (never 0).
type Pass interface {
	OnFrame(g *Grid, seed uint64, frame uint64) Signal
}

// Noop is the pass used when weather is disabled.
type Noop struct{}

// OnFrame does nothing and never requests a redraw.
func (Noop) OnFrame(*Grid, uint64, uint64) Signal {
	return Skip
}
