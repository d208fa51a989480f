package weather

// TailCap is the longest trailing streak drawn behind a head.
const TailCap = 2

// TailMode fixes which diagonal the trailing streak points along.
type TailMode uint8

const (
	TailDefault TailMode = iota
	TailLeft
	TailRight
)

// TailModeFromWind derives the tail diagonal from the wind configuration.
func TailModeFromWind(m WindMode) TailMode {
	switch m {
	case WindLeft:
		return TailLeft
	case WindRight:
		return TailRight
	default:
		return TailDefault
	}
}

// String returns a human-readable tail mode name.
func (m TailMode) String() string {
	switch m {
	case TailLeft:
		return "left"
	case TailRight:
		return "right"
	default:
		return "default"
	}
}

type tailMark struct {
	x, y int
	len  uint8
}

// Tail regenerates trailing streaks behind moving heads (meteor/star look).
// A cell qualifies for a tail when its drift neighbour holds a head, or holds
// a tail still shorter than TailCap, so streaks grow one cell per frame.
type Tail struct {
	mode  TailMode
	marks []tailMark
}

// NewTail creates a tail pass.
func NewTail(mode TailMode) *Tail {
	return &Tail{mode: mode}
}

// Mode returns the tail diagonal.
func (t *Tail) Mode() TailMode {
	return t.mode
}

// dx is the column offset from a tail cell to the cell that leads it.
func (t *Tail) dx() int {
	switch t.mode {
	case TailLeft:
		return -1
	case TailRight:
		return 1
	default:
		return 0
	}
}

// OnFrame runs on even frames only. Old tails are stripped, heads are found
// in the neighbour column, and all writes are deferred until the scan ends.
func (t *Tail) OnFrame(g *Grid, _ uint64, frame uint64) Signal {
	if frame%2 != 0 || g.Empty() {
		return Skip
	}

	w := g.Width()
	dx := t.dx()
	t.marks = t.marks[:0]

	for i := 0; i < w; i++ {
		x := i
		if t.mode == TailLeft {
			x = w - 1 - i
		}

		col := g.Column(x)
		for y := range col {
			col[y].Remove(KindTail)
		}

		lead := g.Column(x + dx)
		for y := 1; y < len(lead); y++ {
			if lead[y].HasHead() {
				t.marks = append(t.marks, tailMark{x: x, y: y - 1, len: 1})
			}
		}
	}

	// Extend each streak from the recorded marks, never from written cells.
	// Marks are appended in length order so shorter tails claim a cell first.
	for i := 0; i < len(t.marks); i++ {
		m := t.marks[i]
		if m.len >= TailCap || m.y == 0 {
			continue
		}
		nx := m.x - dx
		if nx < 0 || nx >= w {
			continue
		}
		t.marks = append(t.marks, tailMark{x: nx, y: m.y - 1, len: m.len + 1})
	}

	for _, m := range t.marks {
		if c := g.Cell(m.x, m.y); c != nil {
			c.Insert(Entry{Kind: KindTail, Len: m.len})
		}
	}

	return Render
}
