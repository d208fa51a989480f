package weather

import "testing"

func TestCellInsertDeduplicates(t *testing.T) {
	var c Cell
	c.Insert(E(KindFast))
	c.Insert(E(KindFast))
	c.Insert(Entry{Kind: KindNormal, Len: 0})
	c.Insert(Entry{Kind: KindNormal, Len: 2}) // same kind, different payload

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", c.Len())
	}
	e, ok := c.Get(KindNormal)
	if !ok || e.Len != 0 {
		t.Errorf("Get(Normal) = %+v, %v, expected first payload kept", e, ok)
	}
}

func TestCellIgnoresNone(t *testing.T) {
	var c Cell
	c.Insert(E(KindNone))
	if c.Len() != 0 {
		t.Errorf("Len() = %d after inserting None, expected 0", c.Len())
	}
	if c.First() != KindNone {
		t.Errorf("First() = %v on empty cell, expected None", c.First())
	}
}

func TestCellCapacity(t *testing.T) {
	var c Cell
	c.Insert(E(KindFast))
	c.Insert(E(KindNormal))
	c.Insert(E(KindSlow))
	c.Insert(E(KindTail))

	if c.Len() != CellCap {
		t.Fatalf("Len() = %d, expected %d", c.Len(), CellCap)
	}
	if c.Contains(KindTail) {
		t.Error("full cell should drop further inserts")
	}
}

func TestCellRemoveKeepsOrder(t *testing.T) {
	var c Cell
	c.Insert(E(KindFast))
	c.Insert(E(KindNormal))
	c.Insert(E(KindSlow))

	c.Remove(KindFast)

	got := c.Entries()
	if len(got) != 2 || got[0].Kind != KindNormal || got[1].Kind != KindSlow {
		t.Errorf("Entries() = %+v, expected [Normal Slow]", got)
	}
	if c.First() != KindNormal {
		t.Errorf("First() = %v, expected Normal", c.First())
	}

	// Removing an absent kind is a no-op
	c.Remove(KindTail)
	if c.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", c.Len())
	}
}

func TestCellNeverHoldsDuplicates(t *testing.T) {
	kinds := []Kind{KindFast, KindNormal, KindSlow, KindTail}
	var c Cell
	for i := 0; i < 200; i++ {
		k := kinds[(i*7)%len(kinds)]
		if i%3 == 0 {
			c.Remove(kinds[(i*5)%len(kinds)])
		}
		c.Insert(Entry{Kind: k, Len: uint8(i % 3)})

		seen := make(map[Kind]bool)
		for _, e := range c.Entries() {
			if seen[e.Kind] {
				t.Fatalf("step %d: duplicate kind %v in %+v", i, e.Kind, c.Entries())
			}
			seen[e.Kind] = true
		}
	}
}

func TestCellHasHead(t *testing.T) {
	var c Cell
	c.Insert(Entry{Kind: KindTail, Len: 1})
	if c.HasHead() {
		t.Error("tail-only cell should not report a head")
	}
	c.Insert(E(KindSlow))
	if !c.HasHead() {
		t.Error("cell with Slow should report a head")
	}
}
