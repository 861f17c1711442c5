package board

import (
	"image/color"
	"math"
	"strings"
	"testing"
	"time"

	"NeonBoard/internal/state"
	"NeonBoard/internal/surface"
)

// fakeCanvas counts paint calls; its snapshot is that count.
type fakeCanvas struct {
	strokes []surface.Style
	circles []float64
	ops     byte
	clears  int
}

func (f *fakeCanvas) StrokePath(_ *surface.Path, st surface.Style) {
	f.strokes = append(f.strokes, st)
	f.ops++
}

func (f *fakeCanvas) FillCircle(_ state.Point, r float64, _ surface.Style) {
	f.circles = append(f.circles, r)
	f.ops++
}

func (f *fakeCanvas) Capture() surface.Snapshot {
	return surface.Snapshot{Width: 1, Height: 1, Pix: []byte{f.ops, 0, 0, 0xff}}
}

func (f *fakeCanvas) Restore(s surface.Snapshot) { f.ops = s.Pix[0] }

func (f *fakeCanvas) Clear(color.Color) {
	f.ops = 0
	f.clears++
}

var t0 = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func ms(n int) time.Time { return t0.Add(time.Duration(n) * time.Millisecond) }

func newController(brush state.BrushConfig) (*Controller, *fakeCanvas, *state.ManualClock) {
	canvas := &fakeCanvas{}
	clock := state.NewManualClock(t0)
	c := New(canvas, Options{
		Brush:       brush,
		Glow:        state.GlowConfig{GlowLevel: state.DefaultGlowLevel},
		HistorySize: 10,
		Clock:       clock,
	})
	return c, canvas, clock
}

func TestTapDrawsPoint(t *testing.T) {
	c, canvas, _ := newController(state.DefaultBrush())

	c.Handle(PointerDown{X: 5, Y: 5, At: ms(0)})
	if !c.Drawing() {
		t.Fatal("stroke should be active after pointer down")
	}
	c.Handle(PointerUp{At: ms(80)})

	if len(canvas.circles) != 2 || canvas.circles[0] != state.DefaultMaxWidth/2 {
		t.Errorf("tap discs = %v, want two with the outer at max width", canvas.circles)
	}
	if len(canvas.strokes) != 0 {
		t.Error("a tap must not stroke a path")
	}
	if h := c.History(); h.Len() != 2 || h.Index() != 1 {
		t.Errorf("history len %d index %d, want one entry per stroke", h.Len(), h.Index())
	}
}

func TestDragDrawsCurveNotPoint(t *testing.T) {
	c, canvas, _ := newController(state.DefaultBrush())

	c.Handle(PointerDown{X: 0, Y: 0, At: ms(0)})
	if !c.Handle(PointerMove{X: 2, Y: 0, At: ms(16)}) {
		t.Fatal("move should draw")
	}
	c.Handle(PointerMove{X: 4, Y: 1, At: ms(32)})
	c.Handle(PointerUp{At: ms(40)})

	if len(canvas.strokes) == 0 {
		t.Fatal("drag painted nothing")
	}
	if len(canvas.circles) != 0 {
		t.Error("a drag must not end with a tap point")
	}
	if h := c.History(); h.Len() != 2 {
		t.Errorf("history len %d, want 2", h.Len())
	}
}

func TestMoveBelowThresholdIgnored(t *testing.T) {
	c, canvas, _ := newController(state.DefaultBrush())
	if c.Handle(PointerMove{X: 10, Y: 10, At: ms(0)}) {
		t.Error("move without an active stroke should be ignored")
	}

	c.Handle(PointerDown{X: 10, Y: 10, At: ms(0)})
	if c.Handle(PointerMove{X: 10.1, Y: 10.1, At: ms(10)}) {
		t.Error("move under the minimum distance should be ignored")
	}
	if len(canvas.strokes) != 0 || c.stroke.HasMoved() {
		t.Error("ignored move changed the stroke")
	}
}

func TestWidthFollowsSpeed(t *testing.T) {
	brush := state.DefaultBrush()
	brush.SmoothingFactor = 0

	tests := []struct {
		name  string
		dt    int
		check func(w float64) bool
	}{
		{"slow gives max width", 2000, func(w float64) bool { return math.Abs(w-brush.MaxWidth) < 1e-9 }},
		{"fast gives less than midpoint", 100, func(w float64) bool { return w < brush.MidWidth() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newController(brush)
			c.Handle(PointerDown{X: 0, Y: 0, At: ms(0)})
			c.Handle(PointerMove{X: 100, Y: 0, At: ms(tt.dt)})
			if w := c.stroke.LastWidth(); !tt.check(w) {
				t.Errorf("width after 100px in %dms = %g", tt.dt, w)
			}
		})
	}
}

func TestCancelEndsStroke(t *testing.T) {
	c, canvas, _ := newController(state.DefaultBrush())
	c.Handle(PointerDown{X: 1, Y: 1, At: ms(0)})
	if !c.Handle(PointerCancel{At: ms(5)}) {
		t.Fatal("cancel should end the stroke")
	}
	if c.Drawing() || len(canvas.circles) != 2 {
		t.Errorf("cancel should behave like up: drawing %v discs %d", c.Drawing(), len(canvas.circles))
	}
	if c.Handle(PointerUp{At: ms(6)}) {
		t.Error("up without a stroke should be ignored")
	}
}

func TestUndoRedo(t *testing.T) {
	c, canvas, _ := newController(state.DefaultBrush())

	c.Handle(PointerDown{X: 1, Y: 1, At: ms(0)})
	c.Handle(PointerUp{At: ms(10)})
	drawn := canvas.ops

	if !c.Handle(Undo{}) || canvas.ops != 0 {
		t.Fatalf("undo should restore the blank surface, ops %d", canvas.ops)
	}
	if !c.Handle(Redo{}) || canvas.ops != drawn {
		t.Fatalf("redo should restore the tap, ops %d want %d", canvas.ops, drawn)
	}

	c.Handle(Undo{})
	c.Handle(Undo{})
	if canvas.clears != 1 {
		t.Errorf("undo past the first entry should clear once, got %d", canvas.clears)
	}
	if c.Handle(Undo{}) {
		t.Error("undo with nothing left should report false")
	}
}

func TestUndoIgnoredMidStroke(t *testing.T) {
	c, _, _ := newController(state.DefaultBrush())
	c.Handle(PointerDown{X: 1, Y: 1, At: ms(0)})
	c.Handle(PointerUp{At: ms(10)})

	c.Handle(PointerDown{X: 5, Y: 5, At: ms(20)})
	if c.Handle(Undo{}) || c.Handle(Redo{}) {
		t.Error("history must not move while a stroke is active")
	}
	c.Handle(PointerUp{At: ms(30)})
	if h := c.History(); h.Len() != 3 || h.Index() != 2 {
		t.Errorf("history len %d index %d", h.Len(), h.Index())
	}
}

func TestRecording(t *testing.T) {
	c, _, clock := newController(state.DefaultBrush())

	c.Handle(PointerDown{X: 50, Y: 50, At: ms(0)})
	c.Handle(PointerUp{At: ms(10)})
	if c.Recording() {
		t.Fatal("not recording yet")
	}

	clock.Advance(time.Second)
	c.StartRecording()
	if !c.Recording() {
		t.Fatal("StartRecording did not start")
	}
	c.Handle(PointerDown{X: 1, Y: 2, At: ms(1500)})
	c.Handle(PointerMove{X: 3, Y: 4, At: ms(1750)})
	c.Handle(PointerUp{At: ms(1800)})

	if n := len(c.RecordedStrokes()); n != 1 {
		t.Fatalf("recorded %d strokes, want 1", n)
	}
	expr, ok := c.StopRecording()
	if !ok {
		t.Fatal("expected an expression")
	}
	for _, line := range []string{"  [0.500, [1.00, 2.00]],\n", "  [0.750, [3.00, 4.00]]\n"} {
		if !strings.Contains(expr, line) {
			t.Errorf("expression missing %q:\n%s", line, expr)
		}
	}
	if c.Recording() {
		t.Error("still recording after stop")
	}
}

func TestStopRecordingEmpty(t *testing.T) {
	c, _, _ := newController(state.DefaultBrush())
	c.StartRecording()
	if expr, ok := c.StopRecording(); ok || expr != "" {
		t.Errorf("empty recording gave %q, %v", expr, ok)
	}
}

func TestLiveConfig(t *testing.T) {
	c, canvas, _ := newController(state.DefaultBrush())
	c.Brush().MaxWidth = 20
	c.Glow().GlowLevel = 3
	c.SetColor(2)
	c.SetColor(99)

	if c.Palette().Index() != 2 {
		t.Errorf("palette index %d, want 2", c.Palette().Index())
	}
	c.Handle(PointerDown{X: 1, Y: 1, At: ms(0)})
	c.Handle(PointerUp{At: ms(1)})
	if canvas.circles[0] != 10 {
		t.Errorf("tap radius %g, want half the updated max width", canvas.circles[0])
	}
}

func TestDefaultsApplied(t *testing.T) {
	c := New(&fakeCanvas{}, Options{})
	if *c.Brush() != state.DefaultBrush() {
		t.Errorf("zero brush should become the default, got %+v", *c.Brush())
	}
	if c.History().Len() != 1 {
		t.Error("the starting surface should be the first history entry")
	}
}
