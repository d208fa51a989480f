package weather

import "testing"

type point struct{ x, y int }

// tails collects every tail marker in the grid.
func tails(g *Grid) map[point]uint8 {
	out := make(map[point]uint8)
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			if e, ok := g.Cell(x, y).Get(KindTail); ok {
				out[point{x, y}] = e.Len
			}
		}
	}
	return out
}

func TestTailDiagonals(t *testing.T) {
	tests := []struct {
		name string
		mode TailMode
		head point
		want map[point]uint8
	}{
		{
			name: "right",
			mode: TailRight,
			head: point{3, 3},
			want: map[point]uint8{{2, 2}: 1, {1, 1}: 2},
		},
		{
			name: "left",
			mode: TailLeft,
			head: point{1, 3},
			want: map[point]uint8{{2, 2}: 1, {3, 1}: 2},
		},
		{
			name: "default",
			mode: TailDefault,
			head: point{2, 3},
			want: map[point]uint8{{2, 2}: 1, {2, 1}: 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(5, 5)
			g.Cell(tc.head.x, tc.head.y).Insert(E(KindNormal))

			if sig := NewTail(tc.mode).OnFrame(g, 0, 2); sig != Render {
				t.Errorf("OnFrame() = %v, expected render", sig)
			}

			got := tails(g)
			if len(got) != len(tc.want) {
				t.Fatalf("tails = %v, expected %v", got, tc.want)
			}
			for p, l := range tc.want {
				if got[p] != l {
					t.Errorf("tail at %v = %d, expected %d", p, got[p], l)
				}
			}
		})
	}
}

func TestTailSkipsOddFrames(t *testing.T) {
	g := NewGrid(4, 4)
	g.Cell(2, 2).Insert(E(KindFast))

	if sig := NewTail(TailRight).OnFrame(g, 0, 3); sig != Skip {
		t.Errorf("OnFrame() on odd frame = %v, expected skip", sig)
	}
	if len(tails(g)) != 0 {
		t.Error("tail written on odd frame")
	}
}

func TestTailStripsStaleMarkers(t *testing.T) {
	g := NewGrid(4, 4)
	g.Cell(0, 3).Insert(Entry{Kind: KindTail, Len: 1})
	g.Cell(3, 0).Insert(E(KindSlow)) // head in row 0 has no room for a tail

	NewTail(TailRight).OnFrame(g, 0, 4)

	if got := tails(g); len(got) != 0 {
		t.Errorf("tails = %v, expected none", got)
	}
	if !g.Cell(3, 0).Contains(KindSlow) {
		t.Error("tail pass removed a head")
	}
}

func TestTailShorterWins(t *testing.T) {
	// Two heads stacked in one column: the upper head's first tail cell
	// is also the lower head's second tail cell.
	g := NewGrid(1, 5)
	g.Cell(0, 4).Insert(E(KindNormal))
	g.Cell(0, 3).Insert(E(KindFast))

	NewTail(TailDefault).OnFrame(g, 0, 2)

	e, ok := g.Cell(0, 2).Get(KindTail)
	if !ok || e.Len != 1 {
		t.Errorf("tail at (0,2) = %+v, %v, expected length 1", e, ok)
	}
}

func TestTailCapAndLeadInvariant(t *testing.T) {
	for _, mode := range []TailMode{TailDefault, TailLeft, TailRight} {
		t.Run(mode.String(), func(t *testing.T) {
			drop, err := NewDropping(ModeMeteor, 3)
			if err != nil {
				t.Fatal(err)
			}
			tail := NewTail(mode)
			g := NewGrid(40, 20)
			dx := tail.dx()

			var f Frame
			seed := uint64(88172645463325252)
			for i := 0; i < 500; i++ {
				seed ^= seed << 13
				seed ^= seed >> 7
				seed ^= seed << 17

				frame := f.Next()
				drop.OnFrame(g, seed, frame)
				if tail.OnFrame(g, seed, frame) == Skip {
					continue
				}

				for p, l := range tails(g) {
					if l < 1 || l > TailCap {
						t.Fatalf("tick %d: tail at %v has length %d", i, p, l)
					}
					lead := g.Cell(p.x+int(l)*dx, p.y+int(l))
					if lead == nil || !lead.HasHead() {
						t.Fatalf("tick %d: tail at %v (len %d) has no head behind it", i, p, l)
					}
				}
			}
		})
	}
}
