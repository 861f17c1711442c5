// Package recorder captures timed stroke points while a recording session is
// open and turns them into a keyframe path expression.
package recorder

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"NeonBoard/internal/logging"
	"NeonBoard/internal/state"
)

// Stroke is one recorded pointer-down to pointer-up run. Point times are
// seconds since the session started.
type Stroke struct {
	ID        string
	Points    []state.TimedPoint
	StartTime float64
}

// Session is an open recording.
type Session struct {
	ID      string
	Start   time.Time
	Strokes []*Stroke
	Current *Stroke
}

// Recorder owns at most one session at a time.
type Recorder struct {
	session *Session
	active  bool
}

func New() *Recorder {
	return &Recorder{}
}

// StartSession opens a new recording at the given instant, dropping
// whatever was recorded before.
func (r *Recorder) StartSession(at time.Time) {
	r.session = &Session{ID: uuid.NewString(), Start: at}
	r.active = true
	logging.Logger().Debug("recorder: session started", "session", r.session.ID)
}

func (r *Recorder) Active() bool { return r.active }

// Session returns the current or last session, nil before the first one.
func (r *Recorder) Session() *Session { return r.session }

// StartPath flushes the open stroke and opens an empty one.
func (r *Recorder) StartPath(at time.Time) {
	if !r.active {
		return
	}
	r.flush()
	r.session.Current = &Stroke{
		ID:        uuid.NewString(),
		StartTime: r.offset(at),
	}
}

// EndPath closes the open stroke. Strokes without points are discarded.
func (r *Recorder) EndPath() {
	if !r.active {
		return
	}
	r.flush()
	r.session.Current = nil
}

// RecordPoint appends a point to the open stroke, opening one first when
// none is open. It does nothing outside a session.
func (r *Recorder) RecordPoint(x, y float64, at time.Time) {
	if !r.active {
		return
	}
	t := r.offset(at)
	if r.session.Current == nil {
		r.session.Current = &Stroke{ID: uuid.NewString(), StartTime: t}
	}
	r.session.Current.Points = append(r.session.Current.Points, state.TimedPoint{
		Point: state.Point{X: x, Y: y},
		T:     t,
	})
}

// StopSession ends the session and returns the expression for every point
// recorded in it. It reports false when nothing was recorded.
func (r *Recorder) StopSession() (string, bool) {
	if !r.active {
		return "", false
	}
	r.flush()
	r.session.Current = nil
	r.active = false

	var all []state.TimedPoint
	for _, s := range r.session.Strokes {
		all = append(all, s.Points...)
	}
	if len(all) == 0 {
		logging.Logger().Info("recorder: session stopped with no points", "session", r.session.ID)
		return "", false
	}
	slices.SortStableFunc(all, func(a, b state.TimedPoint) int {
		switch {
		case a.T < b.T:
			return -1
		case a.T > b.T:
			return 1
		}
		return 0
	})
	logging.Logger().Info("recorder: session stopped",
		"session", r.session.ID, "strokes", len(r.session.Strokes), "points", len(all))
	return Expression(all), true
}

// Clear forgets every recorded stroke without changing whether a session
// is active.
func (r *Recorder) Clear() {
	if r.session == nil {
		return
	}
	r.session.Strokes = nil
	r.session.Current = nil
}

// Strokes returns a copy of the closed strokes of the current or last
// session.
func (r *Recorder) Strokes() []Stroke {
	if r.session == nil {
		return nil
	}
	out := make([]Stroke, 0, len(r.session.Strokes))
	for _, s := range r.session.Strokes {
		out = append(out, Stroke{
			ID:        s.ID,
			Points:    slices.Clone(s.Points),
			StartTime: s.StartTime,
		})
	}
	return out
}

func (r *Recorder) flush() {
	if c := r.session.Current; c != nil && len(c.Points) > 0 {
		r.session.Strokes = append(r.session.Strokes, c)
	}
}

func (r *Recorder) offset(at time.Time) float64 {
	return at.Sub(r.session.Start).Seconds()
}
