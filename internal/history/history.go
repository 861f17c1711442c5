// Package history keeps bounded undo/redo over whole-surface snapshots.
package history

import (
	"image/color"

	"NeonBoard/internal/logging"
	"NeonBoard/internal/surface"
)

// DefaultMaxSize is the number of snapshots kept when none is configured.
const DefaultMaxSize = 50

// Canvas is the surface whose pixels are saved and restored.
type Canvas interface {
	Capture() surface.Snapshot
	Restore(surface.Snapshot)
	Clear(color.Color)
}

// History is a stack of snapshots with a cursor. Entries after the cursor
// are the redo future and are dropped by the next Save.
//
// Undo from the first entry clears the canvas and parks the cursor at -1;
// Redo from there restores entry 0.
type History struct {
	canvas     Canvas
	background color.Color
	entries    []surface.Snapshot
	index      int
	maxSize    int
}

// New returns an empty history over canvas. Undo past the first entry
// clears the canvas to background.
func New(canvas Canvas, maxSize int, background color.Color) *History {
	if maxSize < 1 {
		maxSize = DefaultMaxSize
	}
	return &History{
		canvas:     canvas,
		background: background,
		index:      -1,
		maxSize:    maxSize,
	}
}

// Initialize records the starting surface as entry 0.
func (h *History) Initialize() {
	h.Save()
}

// Save captures the canvas after the cursor, discarding any redo future.
func (h *History) Save() {
	snap := h.canvas.Capture()

	if h.index < len(h.entries)-1 {
		clear(h.entries[h.index+1:])
		h.entries = h.entries[:h.index+1]
	}
	h.entries = append(h.entries, snap)
	h.index++

	if len(h.entries) > h.maxSize {
		h.entries[0] = surface.Snapshot{}
		h.entries = h.entries[1:]
		h.index--
	}
	logging.Logger().Debug("history: saved", "index", h.index, "len", len(h.entries), "bytes", snap.Size())
}

// RemoveLast drops the newest entry. It is used to swap the snapshot taken
// when a stroke starts for the one taken when it ends. The first entry is
// never removed.
func (h *History) RemoveLast() {
	if h.index > 0 {
		h.entries[len(h.entries)-1] = surface.Snapshot{}
		h.entries = h.entries[:len(h.entries)-1]
		h.index--
	}
}

// Undo steps back one entry and reports whether anything changed.
func (h *History) Undo() bool {
	switch {
	case h.index > 0:
		h.index--
		h.canvas.Restore(h.entries[h.index])
	case h.index == 0:
		h.canvas.Clear(h.background)
		h.index = -1
	default:
		return false
	}
	logging.Logger().Debug("history: undo", "index", h.index)
	return true
}

// Redo steps forward one entry and reports whether anything changed.
func (h *History) Redo() bool {
	if h.index >= len(h.entries)-1 {
		return false
	}
	h.index++
	h.canvas.Restore(h.entries[h.index])
	logging.Logger().Debug("history: redo", "index", h.index)
	return true
}

// Reset forgets every entry.
func (h *History) Reset() {
	clear(h.entries)
	h.entries = h.entries[:0]
	h.index = -1
}

func (h *History) Len() int      { return len(h.entries) }
func (h *History) Index() int    { return h.index }
func (h *History) MaxSize() int  { return h.maxSize }
func (h *History) CanUndo() bool { return h.index >= 0 }
func (h *History) CanRedo() bool { return h.index < len(h.entries)-1 }
