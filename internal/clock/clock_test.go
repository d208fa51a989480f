package clock

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-ambient/internal/core"
)

func TestReflect(t *testing.T) {
	bounds := core.NewRect(0, 0, 10, 5)

	tests := []struct {
		name string
		dir  Direction
		x, y int
		want Direction
	}{
		{"left edge", LeftBottom, 0, 2, RightBottom},
		{"left edge moving up", LeftTop, 0, 2, RightTop},
		{"right edge", RightTop, 9, 2, LeftTop},
		{"top edge", RightTop, 4, 0, RightBottom},
		{"bottom edge", LeftBottom, 4, 4, LeftTop},
		{"top-left corner", LeftTop, 0, 0, RightBottom},
		{"bottom-right corner", RightBottom, 9, 4, LeftTop},
		{"interior", LeftTop, 4, 2, LeftTop},
		{"moving away from edge", RightBottom, 0, 0, RightBottom},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.dir.Reflect(tc.x, tc.y, bounds)
			if got != tc.want {
				t.Errorf("Reflect(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestOverlayCentersInPlainMode(t *testing.T) {
	o := New(Options{ShowSeconds: true})
	o.Resize(80, 25)

	st := o.State()
	wantX := (80 - Width(true)) / 2
	wantY := (25 - Height) / 2
	if st.X != wantX || st.Y != wantY {
		t.Errorf("position = (%d, %d), expected (%d, %d)", st.X, st.Y, wantX, wantY)
	}

	// Plain mode never moves
	for f := uint64(1); f <= 240; f++ {
		o.OnFrame(f)
	}
	if o.State().X != wantX || o.State().Y != wantY {
		t.Error("plain clock moved")
	}
}

func TestOverlayBounceStaysInBounds(t *testing.T) {
	o := New(Options{Bounce: true, BounceEvery: 1})
	o.Resize(40, 12)

	b := o.State().Bounds
	visitedLeft, visitedRight := false, false
	for f := uint64(1); f <= 2000; f++ {
		o.OnFrame(f%240 + 1)
		st := o.State()
		if st.X < b.X || st.X > b.Right()-1 || st.Y < b.Y || st.Y > b.Bottom()-1 {
			t.Fatalf("frame %d: position (%d, %d) escaped bounds %+v", f, st.X, st.Y, b)
		}
		visitedLeft = visitedLeft || st.X == b.X
		visitedRight = visitedRight || st.X == b.Right()-1
	}
	if !visitedLeft || !visitedRight {
		t.Error("bouncing clock never reached both side edges")
	}
}

func TestOverlayBounceCorner(t *testing.T) {
	o := New(Options{Bounce: true, BounceEvery: 1})
	o.Resize(60, 20)
	o.state.X, o.state.Y = 0, 0
	o.state.Direction = LeftTop

	o.OnFrame(1)

	st := o.State()
	if st.Direction != RightBottom {
		t.Errorf("Direction = %v, expected right-bottom", st.Direction)
	}
	if st.X != 1 || st.Y != 1 {
		t.Errorf("position = (%d, %d), expected (1, 1)", st.X, st.Y)
	}
}

func TestOverlayBounceEvery(t *testing.T) {
	o := New(Options{Bounce: true, BounceEvery: 4})
	o.Resize(60, 20)
	o.state.X, o.state.Y = 5, 5
	o.state.Direction = RightBottom

	for f := uint64(1); f <= 3; f++ {
		o.OnFrame(f)
	}
	if o.State().X != 5 {
		t.Fatalf("moved before BounceEvery frames: x = %d", o.State().X)
	}
	o.OnFrame(4)
	if o.State().X != 6 || o.State().Y != 6 {
		t.Errorf("position = (%d, %d), expected (6, 6)", o.State().X, o.State().Y)
	}
}

func TestOverlayTinyScreen(t *testing.T) {
	o := New(Options{Bounce: true, BounceEvery: 1, ShowSeconds: true})
	o.Resize(10, 3)

	for f := uint64(1); f <= 50; f++ {
		o.OnFrame(f)
		if st := o.State(); st.X != 0 || st.Y != 0 {
			t.Fatalf("frame %d: position (%d, %d), expected pinned at origin", f, st.X, st.Y)
		}
	}
}

func TestOverlayBlink(t *testing.T) {
	o := New(Options{Blink: true, BlinkEvery: 30})
	if !o.State().ColonVisible {
		t.Fatal("colon should start visible")
	}

	for f := uint64(1); f < 30; f++ {
		o.OnFrame(f)
	}
	if !o.State().ColonVisible {
		t.Error("colon toggled early")
	}
	o.OnFrame(30)
	if o.State().ColonVisible {
		t.Error("colon should be hidden after 30 frames")
	}
	o.OnFrame(60)
	if !o.State().ColonVisible {
		t.Error("colon should be visible again after 60 frames")
	}

	steady := New(Options{})
	if steady.OnFrame(30) {
		t.Error("a steady clock reported a change")
	}
	if !steady.State().ColonVisible {
		t.Error("colon blinked with blinking disabled")
	}
}

func TestOverlayOnFrameReportsChanges(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		frame uint64
		want  bool
	}{
		{"blink frame", Options{Blink: true, BlinkEvery: 30}, 30, true},
		{"between blinks", Options{Blink: true, BlinkEvery: 30}, 29, false},
		{"bounce frame", Options{Bounce: true, BounceEvery: 6}, 12, true},
		{"between moves", Options{Bounce: true, BounceEvery: 6}, 13, false},
		{"hidden clock", Options{Hidden: true, Blink: true, Bounce: true, BlinkEvery: 2, BounceEvery: 2}, 4, false},
		{"static clock", Options{}, 240, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := New(tc.opts)
			o.Resize(80, 24)
			if got := o.OnFrame(tc.frame); got != tc.want {
				t.Errorf("OnFrame(%d) = %v, expected %v", tc.frame, got, tc.want)
			}
		})
	}
}

func TestOverlayRefreshAndRender(t *testing.T) {
	o := New(Options{ShowSeconds: true, Color: core.ColorGreen})
	o.Refresh(time.Date(2024, 1, 1, 12, 34, 56, 0, time.Local))
	o.Resize(Width(true), Height)

	if got := o.State().Time.String(); got != "12:34:56" {
		t.Fatalf("Time = %s, expected 12:34:56", got)
	}

	s := core.NewScreen(Width(true), Height)
	o.Render(s)

	// "1" has its top-left two cells empty, "2" starts with a full row
	if s.Get(0, 0) != ' ' || s.Get(2, 0) != DigitRune {
		t.Errorf("digit 1 rendered wrong: %q", s.Row(0))
	}
	if c := s.GetCell(pairWidth+1, 1); c.Rune != ColonRune || c.Color != core.ColorGreen {
		t.Errorf("colon cell = %+v, expected green %q", c, ColonRune)
	}

	o.opts.Hidden = true
	s.Clear()
	o.Render(s)
	if s.String() != core.NewScreen(Width(true), Height).String() {
		t.Error("hidden clock drew something")
	}
}
