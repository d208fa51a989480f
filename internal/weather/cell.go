package weather

// CellCap is the maximum number of kinds a cell holds at once.
const CellCap = 3

// Cell is a small capped set of active kinds.
// Membership is by Kind only: the Len payload never makes two entries distinct.
type Cell struct {
	items [CellCap]Entry
	n     uint8
}

// Len returns the number of kinds in the cell.
func (c *Cell) Len() int {
	return int(c.n)
}

// Entries returns a copy of the active entries in insertion order.
func (c *Cell) Entries() []Entry {
	out := make([]Entry, c.n)
	copy(out, c.items[:c.n])
	return out
}

// Contains reports whether the kind is present.
func (c *Cell) Contains(k Kind) bool {
	_, ok := c.Get(k)
	return ok
}

// Get returns the entry for a kind.
func (c *Cell) Get(k Kind) (Entry, bool) {
	for i := uint8(0); i < c.n; i++ {
		if c.items[i].Kind == k {
			return c.items[i], true
		}
	}
	return Entry{}, false
}

// Insert adds the entry if its kind is absent.
// None is never stored and a full cell silently drops the insert.
func (c *Cell) Insert(e Entry) {
	if e.Kind == KindNone || c.Contains(e.Kind) || int(c.n) >= CellCap {
		return
	}
	c.items[c.n] = e
	c.n++
}

// Remove filters the kind out, keeping the order of the remaining entries.
func (c *Cell) Remove(k Kind) {
	w := uint8(0)
	for i := uint8(0); i < c.n; i++ {
		if c.items[i].Kind == k {
			continue
		}
		c.items[w] = c.items[i]
		w++
	}
	for i := w; i < c.n; i++ {
		c.items[i] = Entry{}
	}
	c.n = w
}

// Clear empties the cell.
func (c *Cell) Clear() {
	*c = Cell{}
}

// First returns the primary kind used for rendering precedence, or KindNone.
func (c *Cell) First() Kind {
	if c.n == 0 {
		return KindNone
	}
	return c.items[0].Kind
}

// HasHead reports whether the cell holds any dropping kind.
func (c *Cell) HasHead() bool {
	for i := uint8(0); i < c.n; i++ {
		if c.items[i].Kind.IsDropping() {
			return true
		}
	}
	return false
}
