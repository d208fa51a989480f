package weather

// Grid holds the weather cells for the whole screen.
//
// Columns live in an arena addressed by a stable physical index. Logical
// column x resolves through order[x], so wind drift permutes order instead
// of moving or aliasing cell buffers. Row 0 is the top (entry) row.
type Grid struct {
	width  int
	height int
	arena  [][]Cell
	order  []int
}

// NewGrid allocates an empty grid of the given size.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Resize discards all cell state and reallocates the arena.
// Negative dimensions are treated as zero.
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	arena := make([][]Cell, width)
	order := make([]int, width)
	for x := range arena {
		arena[x] = make([]Cell, height)
		order[x] = x
	}

	// Swap in the whole allocation at once
	*g = Grid{width: width, height: height, arena: arena, order: order}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool {
	return g.width == 0 || g.height == 0
}

// Column returns logical column x. The slice aliases the physical buffer.
// Returns nil for out-of-range x.
func (g *Grid) Column(x int) []Cell {
	if x < 0 || x >= g.width {
		return nil
	}
	return g.arena[g.order[x]]
}

// PhysicalIndex returns the arena index backing logical column x, or -1.
func (g *Grid) PhysicalIndex(x int) int {
	if x < 0 || x >= g.width {
		return -1
	}
	return g.order[x]
}

// Cell returns the cell at logical (x, y), or nil when out of range.
func (g *Grid) Cell(x, y int) *Cell {
	col := g.Column(x)
	if y < 0 || y >= len(col) {
		return nil
	}
	return &col[y]
}

// ClearRow empties row y in every column.
func (g *Grid) ClearRow(y int) {
	if y < 0 || y >= g.height {
		return
	}
	for _, col := range g.arena {
		col[y].Clear()
	}
}

// RotateRight shifts every column one position right; the last wraps to the front.
func (g *Grid) RotateRight() {
	if g.width < 2 {
		return
	}
	last := g.order[g.width-1]
	copy(g.order[1:], g.order[:g.width-1])
	g.order[0] = last
}

// RotateLeft shifts every column one position left; the first wraps to the back.
func (g *Grid) RotateLeft() {
	if g.width < 2 {
		return
	}
	first := g.order[0]
	copy(g.order[:g.width-1], g.order[1:])
	g.order[g.width-1] = first
}
