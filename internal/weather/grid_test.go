package weather

import (
	"sort"
	"testing"
)

func TestGridResizeDiscardsState(t *testing.T) {
	g := NewGrid(4, 3)
	g.Cell(1, 1).Insert(E(KindFast))
	g.RotateRight()

	g.Resize(6, 5)

	if g.Width() != 6 || g.Height() != 5 {
		t.Fatalf("size = %dx%d, expected 6x5", g.Width(), g.Height())
	}
	for x := 0; x < g.Width(); x++ {
		if g.PhysicalIndex(x) != x {
			t.Errorf("PhysicalIndex(%d) = %d after resize, expected identity", x, g.PhysicalIndex(x))
		}
		for y := 0; y < g.Height(); y++ {
			if g.Cell(x, y).Len() != 0 {
				t.Errorf("cell (%d,%d) not empty after resize", x, y)
			}
		}
	}
}

func TestGridNegativeAndZeroSize(t *testing.T) {
	g := NewGrid(-3, 5)
	if !g.Empty() || g.Width() != 0 {
		t.Errorf("NewGrid(-3, 5) width = %d, expected empty grid", g.Width())
	}
	if g.Column(0) != nil || g.Cell(0, 0) != nil {
		t.Error("out-of-range access should return nil")
	}
	g.ClearRow(0)
	g.RotateLeft()
	g.RotateRight()
}

func TestGridRotateIsPermutation(t *testing.T) {
	tests := []struct {
		name   string
		rotate func(*Grid)
		want   []int
	}{
		{"right", (*Grid).RotateRight, []int{4, 0, 1, 2, 3}},
		{"left", (*Grid).RotateLeft, []int{1, 2, 3, 4, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(5, 2)
			g.Column(0)[0].Insert(E(KindSlow))
			marker := &g.Column(0)[0]

			tc.rotate(g)

			got := make([]int, g.Width())
			for x := range got {
				got[x] = g.PhysicalIndex(x)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("order = %v, expected %v", got, tc.want)
				}
			}

			sorted := append([]int(nil), got...)
			sort.Ints(sorted)
			for i, v := range sorted {
				if v != i {
					t.Fatalf("order %v is not a permutation", got)
				}
			}

			// The buffer moved by reference, not by copy
			found := false
			for x := 0; x < g.Width(); x++ {
				if &g.Column(x)[0] == marker {
					found = true
					if !g.Column(x)[0].Contains(KindSlow) {
						t.Error("relocated column lost its contents")
					}
				}
			}
			if !found {
				t.Error("original column buffer no longer reachable")
			}
		})
	}
}

func TestGridClearRowIdempotent(t *testing.T) {
	g := NewGrid(3, 3)
	g.Cell(2, 2).Insert(E(KindFast))
	g.Cell(0, 1).Insert(E(KindNormal))

	g.ClearRow(2)
	g.ClearRow(2)

	for x := 0; x < 3; x++ {
		if g.Cell(x, 2).Len() != 0 {
			t.Errorf("bottom cell %d not cleared", x)
		}
	}
	if !g.Cell(0, 1).Contains(KindNormal) {
		t.Error("ClearRow touched another row")
	}
}
