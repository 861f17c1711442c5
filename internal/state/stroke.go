package state

import "time"

// StrokeState tracks the live geometry of the stroke being drawn.
// It is Idle until Start and returns to Idle on Stop.
type StrokeState struct {
	active    bool
	hasMoved  bool
	last      Point
	prev      Point
	lastWidth float64
	prevWidth float64
	lastAt    time.Time
}

// Start begins a stroke at p. Calling Start on an active stroke restarts it.
func (s *StrokeState) Start(p Point, width float64, at time.Time) {
	s.active = true
	s.hasMoved = false
	s.last, s.prev = p, p
	s.lastWidth, s.prevWidth = width, width
	s.lastAt = at
}

// DistanceTo returns the distance from the last sample to p.
// Only meaningful while Active.
func (s *StrokeState) DistanceTo(p Point) float64 {
	return s.last.Dist(p)
}

// Elapsed returns the time since the last sample, never negative.
func (s *StrokeState) Elapsed(at time.Time) time.Duration {
	d := at.Sub(s.lastAt)
	if d < 0 {
		return 0
	}
	return d
}

// Advance shifts the window by one sample.
func (s *StrokeState) Advance(p Point, width float64, at time.Time) {
	if !s.active {
		return
	}
	s.prev, s.prevWidth = s.last, s.lastWidth
	s.last, s.lastWidth = p, width
	s.lastAt = at
	s.hasMoved = true
}

// Stop ends the stroke. The last point and width stay readable so the
// caller can decide how to finish it.
func (s *StrokeState) Stop() {
	s.active = false
	s.hasMoved = false
}

func (s *StrokeState) Active() bool       { return s.active }
func (s *StrokeState) HasMoved() bool     { return s.hasMoved }
func (s *StrokeState) Last() Point        { return s.last }
func (s *StrokeState) Prev() Point        { return s.prev }
func (s *StrokeState) LastWidth() float64 { return s.lastWidth }
func (s *StrokeState) PrevWidth() float64 { return s.prevWidth }
