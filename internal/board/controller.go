// Package board ties pointer input to the width model, the renderer, the
// undo history and the recorder.
package board

import (
	"image/color"

	"NeonBoard/internal/history"
	"NeonBoard/internal/logging"
	"NeonBoard/internal/recorder"
	"NeonBoard/internal/render"
	"NeonBoard/internal/state"
)

// MinDistance is the shortest pointer travel, in pixels, that extends a
// stroke.
const MinDistance = 0.2

// Canvas is what the controller paints on and snapshots.
type Canvas interface {
	render.Canvas
	history.Canvas
}

// Options configures a Controller. A zero Brush selects the default brush,
// a nil Clock the system clock and a nil Background opaque black.
type Options struct {
	Brush       state.BrushConfig
	Glow        state.GlowConfig
	HistorySize int
	Palette     []state.NeonColor
	Background  color.Color
	Clock       state.Clock
}

// Controller handles one surface. It is not safe for concurrent use; every
// call is expected on the UI event goroutine.
type Controller struct {
	brush   *state.BrushConfig
	glow    *state.GlowConfig
	palette *state.Palette
	clock   state.Clock

	stroke   state.StrokeState
	width    *state.WidthModel
	renderer *render.Renderer
	history  *history.History
	recorder *recorder.Recorder
}

// New builds a controller over canvas and records its current pixels as
// the first history entry.
func New(canvas Canvas, opts Options) *Controller {
	brush := opts.Brush
	if brush == (state.BrushConfig{}) {
		brush = state.DefaultBrush()
	}
	glow := opts.Glow
	bg := opts.Background
	if bg == nil {
		bg = state.Background
	}
	clock := opts.Clock
	if clock == nil {
		clock = state.SystemClock{}
	}

	c := &Controller{
		brush:    &brush,
		glow:     &glow,
		palette:  state.NewPalette(opts.Palette),
		clock:    clock,
		recorder: recorder.New(),
	}
	c.width = state.NewWidthModel(c.brush)
	c.renderer = render.New(canvas, c.glow)
	c.history = history.New(canvas, opts.HistorySize, bg)
	c.history.Initialize()
	return c
}

// Handle applies ev and reports whether it had any effect.
func (c *Controller) Handle(ev Event) bool {
	switch ev := ev.(type) {
	case PointerDown:
		return c.down(ev)
	case PointerMove:
		return c.move(ev)
	case PointerUp:
		return c.up()
	case PointerCancel:
		return c.up()
	case Undo:
		if c.stroke.Active() {
			return false
		}
		return c.history.Undo()
	case Redo:
		if c.stroke.Active() {
			return false
		}
		return c.history.Redo()
	}
	return false
}

func (c *Controller) down(ev PointerDown) bool {
	if c.stroke.Active() {
		c.up()
	}
	p := state.Point{X: ev.X, Y: ev.Y}

	c.history.Save()
	c.width.Reset()
	c.stroke.Start(p, c.brush.MaxWidth, ev.At)

	if c.recorder.Active() {
		c.recorder.StartPath(ev.At)
		c.recorder.RecordPoint(p.X, p.Y, ev.At)
	}
	return true
}

func (c *Controller) move(ev PointerMove) bool {
	if !c.stroke.Active() {
		return false
	}
	p := state.Point{X: ev.X, Y: ev.Y}
	distance := c.stroke.DistanceTo(p)
	if distance < MinDistance {
		return false
	}

	w := c.width.Next(distance, c.stroke.Elapsed(ev.At))
	c.renderer.DrawCurve(
		render.Sample{Point: c.stroke.Prev(), Width: c.stroke.PrevWidth()},
		render.Sample{Point: c.stroke.Last(), Width: c.stroke.LastWidth()},
		render.Sample{Point: p, Width: w},
		c.palette.Current(),
		distance,
	)
	c.stroke.Advance(p, w, ev.At)

	if c.recorder.Active() {
		c.recorder.RecordPoint(p.X, p.Y, ev.At)
	}
	return true
}

func (c *Controller) up() bool {
	if !c.stroke.Active() {
		return false
	}
	moved := c.stroke.HasMoved()
	c.stroke.Stop()

	if !moved {
		c.renderer.DrawPoint(c.stroke.Last(), c.brush.MaxWidth, c.palette.Current())
	}
	c.history.RemoveLast()
	c.history.Save()

	if c.recorder.Active() {
		c.recorder.EndPath()
	}
	c.width.Reset()
	return true
}

// StartRecording opens a new recording session, discarding any previous
// one.
func (c *Controller) StartRecording() {
	c.recorder.StartSession(c.clock.Now())
	logging.Logger().Info("board: recording started", "session", c.recorder.Session().ID)
}

// StopRecording closes the session and returns its expression. It reports
// false when nothing was drawn while recording.
func (c *Controller) StopRecording() (string, bool) {
	return c.recorder.StopSession()
}

func (c *Controller) Recording() bool { return c.recorder.Active() }

// RecordedStrokes returns the strokes of the current or last session.
func (c *Controller) RecordedStrokes() []recorder.Stroke { return c.recorder.Strokes() }

// Session returns the current or last recording session, nil before the
// first one.
func (c *Controller) Session() *recorder.Session { return c.recorder.Session() }

// SetColor selects palette entry i; out-of-range indices are ignored.
func (c *Controller) SetColor(i int) { c.palette.Set(i) }

func (c *Controller) Palette() *state.Palette { return c.palette }

// Brush returns the live brush configuration. Edits apply from the next
// sample.
func (c *Controller) Brush() *state.BrushConfig { return c.brush }

// Glow returns the live glow configuration.
func (c *Controller) Glow() *state.GlowConfig { return c.glow }

func (c *Controller) History() *history.History { return c.history }

// Drawing reports whether a stroke is in progress.
func (c *Controller) Drawing() bool { return c.stroke.Active() }
