package history

import (
	"bytes"
	"image/color"
	"testing"

	"NeonBoard/internal/surface"
)

// fakeCanvas holds a single byte of "pixels" so tests can tell states apart.
type fakeCanvas struct {
	value    byte
	restores int
	clears   int
}

func (f *fakeCanvas) Capture() surface.Snapshot {
	return surface.Snapshot{Width: 1, Height: 1, Pix: []byte{f.value, 0, 0, 0xff}}
}

func (f *fakeCanvas) Restore(s surface.Snapshot) {
	f.value = s.Pix[0]
	f.restores++
}

func (f *fakeCanvas) Clear(color.Color) {
	f.value = 0
	f.clears++
}

func draw(h *History, c *fakeCanvas, v byte) {
	h.Save()
	c.value = v
	h.RemoveLast()
	h.Save()
}

func TestInitialize(t *testing.T) {
	c := &fakeCanvas{}
	h := New(c, 10, color.Black)
	if h.Index() != -1 || h.CanUndo() {
		t.Fatalf("new history: index %d", h.Index())
	}
	h.Initialize()
	if h.Len() != 1 || h.Index() != 0 {
		t.Errorf("after Initialize: len %d index %d", h.Len(), h.Index())
	}
}

func TestStrokeCycleAddsOneEntry(t *testing.T) {
	c := &fakeCanvas{}
	h := New(c, 10, color.Black)
	h.Initialize()

	draw(h, c, 1)
	draw(h, c, 2)
	if h.Len() != 3 || h.Index() != 2 {
		t.Fatalf("len %d index %d, want 3 and 2", h.Len(), h.Index())
	}
	if got := h.entries[2].Pix[0]; got != 2 {
		t.Errorf("newest entry holds %d, want the post-stroke state 2", got)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	c := &fakeCanvas{}
	h := New(c, 10, color.Black)
	h.Initialize()
	for v := byte(1); v <= 4; v++ {
		draw(h, c, v)
	}

	for _, want := range []byte{3, 2} {
		if !h.Undo() {
			t.Fatal("undo refused")
		}
		if c.value != want {
			t.Errorf("after undo canvas = %d, want %d", c.value, want)
		}
	}
	before := c.value
	h.Undo()
	h.Redo()
	if c.value != before {
		t.Errorf("undo+redo gave %d, want %d", c.value, before)
	}

	for h.Redo() {
	}
	if c.value != 4 || h.CanRedo() {
		t.Errorf("redo to the end: canvas %d canRedo %v", c.value, h.CanRedo())
	}
}

func TestUndoPastStartClears(t *testing.T) {
	c := &fakeCanvas{value: 7}
	h := New(c, 10, color.Black)
	h.Initialize()

	if !h.Undo() {
		t.Fatal("undo at index 0 should succeed")
	}
	if c.clears != 1 || c.value != 0 || h.Index() != -1 {
		t.Errorf("clears %d value %d index %d", c.clears, c.value, h.Index())
	}
	for i := 0; i < 3; i++ {
		if h.Undo() {
			t.Fatal("undo below the first entry must be refused")
		}
	}

	// Redo from the cleared state restores entry 0, not the cleared state.
	if !h.Redo() || c.value != 7 || h.Index() != 0 {
		t.Errorf("redo from cleared: value %d index %d", c.value, h.Index())
	}

	h.Undo()
	h.Save()
	if !h.Undo() {
		t.Error("undo should work again after a save")
	}
}

func TestSaveDropsFuture(t *testing.T) {
	c := &fakeCanvas{}
	h := New(c, 10, color.Black)
	h.Initialize()
	draw(h, c, 1)
	draw(h, c, 2)
	h.Undo()
	h.Undo()

	draw(h, c, 9)
	if h.Len() != 2 || h.CanRedo() {
		t.Errorf("len %d canRedo %v after drawing mid-stack", h.Len(), h.CanRedo())
	}
	if h.Redo() {
		t.Error("redo after a new stroke must be refused")
	}
}

func TestEviction(t *testing.T) {
	const maxSize, extra = 5, 3
	c := &fakeCanvas{}
	h := New(c, maxSize, color.Black)

	for v := byte(0); v < maxSize+extra; v++ {
		c.value = v
		h.Save()
	}
	if h.Len() != maxSize {
		t.Fatalf("len %d, want %d", h.Len(), maxSize)
	}
	if h.Index() != maxSize-1 {
		t.Errorf("index %d, want %d (newest)", h.Index(), maxSize-1)
	}
	var oldest []byte
	for _, e := range h.entries {
		oldest = append(oldest, e.Pix[0])
	}
	if !bytes.Equal(oldest, []byte{3, 4, 5, 6, 7}) {
		t.Errorf("kept entries %v, want the newest %d", oldest, maxSize)
	}
}

func TestEvictionKeepsCursorMidStack(t *testing.T) {
	c := &fakeCanvas{}
	h := New(c, 3, color.Black)
	h.Initialize()
	draw(h, c, 1)
	draw(h, c, 2)

	// Stroke start at capacity evicts the oldest; the cursor follows it.
	h.Save()
	if h.Len() != 3 || h.Index() != 2 {
		t.Fatalf("len %d index %d", h.Len(), h.Index())
	}
	c.value = 3
	h.RemoveLast()
	h.Save()
	if h.Len() != 3 || h.Index() != 2 || h.entries[2].Pix[0] != 3 {
		t.Errorf("len %d index %d newest %d", h.Len(), h.Index(), h.entries[2].Pix[0])
	}
}

func TestRemoveLastKeepsFirstEntry(t *testing.T) {
	c := &fakeCanvas{}
	h := New(c, 10, color.Black)
	h.Initialize()
	h.RemoveLast()
	if h.Len() != 1 || h.Index() != 0 {
		t.Errorf("len %d index %d", h.Len(), h.Index())
	}
}

func TestReset(t *testing.T) {
	c := &fakeCanvas{}
	h := New(c, 0, color.Black)
	if h.MaxSize() != DefaultMaxSize {
		t.Errorf("MaxSize = %d, want default", h.MaxSize())
	}
	h.Initialize()
	h.Reset()
	if h.Len() != 0 || h.Index() != -1 || h.Undo() || h.Redo() {
		t.Error("reset history should be empty")
	}
}

func TestWithSurface(t *testing.T) {
	s := surface.New(8, 8, color.Black)
	h := New(s, 4, color.Black)
	h.Initialize()

	h.Save()
	s.Clear(color.White)
	h.RemoveLast()
	h.Save()
	white := s.Capture()

	h.Undo()
	if s.At(3, 3).R != 0 {
		t.Error("undo should restore the black surface")
	}
	h.Redo()
	if !bytes.Equal(s.Capture().Pix, white.Pix) {
		t.Error("redo should restore the white surface exactly")
	}
}
