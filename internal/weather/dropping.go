package weather

import "errors"

// ErrZeroThreshold is returned when a dropping pass is built with density 0.
var ErrZeroThreshold = errors.New("weather: density threshold must be at least 1")

// spawnBatch is the number of columns covered by one 64-bit random draw.
const spawnBatch = 64

// Dropping spawns new drops in the top row and moves existing ones down.
type Dropping struct {
	threshold uint64
	mode      Mode
	line      []Kind // Reused spawn buffer, one slot per column
}

// NewDropping creates a dropping pass. Lower threshold spawns more drops.
func NewDropping(mode Mode, threshold uint16) (*Dropping, error) {
	if threshold == 0 {
		return nil, ErrZeroThreshold
	}
	return &Dropping{threshold: uint64(threshold), mode: mode}, nil
}

// Threshold returns the configured density.
func (d *Dropping) Threshold() uint16 {
	return uint16(d.threshold)
}

// OnFrame clears the exit row, propagates drops and spawns a new line.
func (d *Dropping) OnFrame(g *Grid, seed uint64, frame uint64) Signal {
	if d.mode == ModeDisabled || g.Empty() {
		return Skip
	}

	g.ClearRow(g.Height() - 1)
	for x := 0; x < g.Width(); x++ {
		d.propagate(g.Column(x), frame)
	}
	d.spawn(g, seed)

	return Render
}

// propagate moves kinds one row down when their step period divides frame.
// Rows are walked bottom to top so a kind moved this tick is not moved again.
func (d *Dropping) propagate(col []Cell, frame uint64) {
	for next := len(col) - 1; next > 0; next-- {
		current := next - 1

		// Snapshot the source row before touching either cell
		src := col[current].Entries()
		for _, e := range src {
			step := d.mode.FramesPerStep(e.Kind)
			if step == 0 || frame%step != 0 {
				continue
			}
			col[current].Remove(e.Kind)
			col[next].Insert(e)
		}
	}
}

// spawn merges a freshly generated line into row 0.
func (d *Dropping) spawn(g *Grid, seed uint64) {
	d.line = d.generate(d.line[:0], g.Width(), seed)
	for x, k := range d.line {
		if k == KindNone {
			continue
		}
		g.Column(x)[0].Insert(E(k))
	}
}

// generate fills line with one spawn decision per column.
// Bit i of the batch value decides whether column i spawns; the value then
// picks the kind. Batches after the first use a value derived from seed.
func (d *Dropping) generate(line []Kind, width int, seed uint64) []Kind {
	for x := 0; x < width; x++ {
		batch := x / spawnBatch
		i := uint64(x % spawnBatch)

		value := seed
		if batch > 0 {
			value = mix64(seed, uint64(batch))
		}

		if value&(1<<i) == 0 {
			line = append(line, KindNone)
			continue
		}
		line = append(line, d.pickKind(saturatingSub(value, i)))
	}
	return line
}

// pickKind maps a random value to a drop speed.
func (d *Dropping) pickKind(v uint64) Kind {
	switch v % d.threshold {
	case 0:
		return KindNormal
	case 1:
		return KindFast
	case 2:
		return KindSlow
	default:
		return KindNone
	}
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// mix64 derives an independent 64-bit value from seed and a batch index (splitmix64 finalizer).
func mix64(seed, batch uint64) uint64 {
	z := seed + batch*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
