package board

import "time"

// Event is an input delivered to Controller.Handle.
type Event interface {
	event()
}

// PointerDown starts a stroke at (X, Y).
type PointerDown struct {
	X, Y float64
	At   time.Time
}

// PointerMove extends the active stroke to (X, Y).
type PointerMove struct {
	X, Y float64
	At   time.Time
}

// PointerUp ends the active stroke.
type PointerUp struct {
	At time.Time
}

// PointerCancel ends the active stroke when the pointer leaves the surface
// or the platform aborts the gesture. It behaves exactly like PointerUp.
type PointerCancel struct {
	At time.Time
}

type Undo struct{}

type Redo struct{}

func (PointerDown) event()   {}
func (PointerMove) event()   {}
func (PointerUp) event()     {}
func (PointerCancel) event() {}
func (Undo) event()          {}
func (Redo) event()          {}
