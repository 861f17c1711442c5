// Package render turns pointer samples into smooth neon strokes.
//
// Every shape is painted twice: once at full width with a glow of the
// configured level, then again thinner with twice the glow to brighten the
// core. Samples further apart than MaxSegmentLength are subdivided with a
// smoothstep ease so curvature stays smooth at any pointer speed.
package render

import (
	"math"

	"NeonBoard/internal/state"
	"NeonBoard/internal/surface"
)

const (
	// MaxSegmentLength is the longest distance, in pixels, drawn as a
	// single segment.
	MaxSegmentLength = 3

	coreWidthRatio = 0.6
	dotCoreRatio   = 0.3
)

// Canvas is the surface the renderer paints on.
type Canvas interface {
	StrokePath(p *surface.Path, st surface.Style)
	FillCircle(c state.Point, r float64, st surface.Style)
}

// Sample is a point with the line width wanted there.
type Sample struct {
	state.Point
	Width float64
}

// Renderer paints glow-styled strokes. The glow level is re-read on each
// call.
type Renderer struct {
	canvas Canvas
	glow   *state.GlowConfig
}

func New(canvas Canvas, glow *state.GlowConfig) *Renderer {
	return &Renderer{canvas: canvas, glow: glow}
}

// Glow returns the shared glow configuration.
func (r *Renderer) Glow() *state.GlowConfig { return r.glow }

// DrawCurve renders the newest step of a stroke from the rolling window
// a (oldest), b, c (newest). distance is the travel from b to c.
func (r *Renderer) DrawCurve(a, b, c Sample, col state.NeonColor, distance float64) {
	steps := int(math.Ceil(distance / MaxSegmentLength))
	if steps <= 1 {
		r.DrawSmoothSegment(a, b, &c, col)
		return
	}

	pts := interpolate(b, c, steps)
	for i := 0; i < len(pts)-1; i++ {
		first := b
		if i > 0 {
			first = pts[i-1]
		}
		if i+2 < len(pts) {
			next := pts[i+1]
			r.DrawSmoothSegment(first, pts[i], &next, col)
		} else {
			r.drawFinalSegment(pts[i], pts[i+1], col)
		}
	}
}

// DrawSmoothSegment draws from a through b. With a third sample c the
// path bends at b towards the midpoint of b and c, so consecutive calls
// share tangents; without it the path is a straight line to b.
func (r *Renderer) DrawSmoothSegment(a, b Sample, c *Sample, col state.NeonColor) {
	var p surface.Path
	p.MoveTo(a.Point)

	width := (a.Width + b.Width) / 2
	if c != nil {
		p.QuadTo(b.Point, b.Mid(c.Point))
		width = (a.Width + b.Width + c.Width) / 3
	} else {
		p.LineTo(b.Point)
	}
	r.strokeNeon(&p, width, col)
}

func (r *Renderer) drawFinalSegment(a, b Sample, col state.NeonColor) {
	r.DrawSmoothSegment(a, b, nil, col)
}

// DrawPoint paints a tap: a glowing disc of the given width with a
// brighter inner disc.
func (r *Renderer) DrawPoint(p state.Point, width float64, col state.NeonColor) {
	level := r.level()
	r.canvas.FillCircle(p, width/2, surface.Style{Color: col.Main, Glow: col.Glow, Blur: level})
	r.canvas.FillCircle(p, width*dotCoreRatio, surface.Style{Color: col.Main, Glow: col.Glow, Blur: level * 2})
}

func (r *Renderer) strokeNeon(p *surface.Path, width float64, col state.NeonColor) {
	level := r.level()
	r.canvas.StrokePath(p, surface.Style{Width: width, Color: col.Main, Glow: col.Glow, Blur: level})
	r.canvas.StrokePath(p, surface.Style{Width: width * coreWidthRatio, Color: col.Main, Glow: col.Glow, Blur: level * 2})
}

func (r *Renderer) level() float64 {
	if r.glow == nil || r.glow.GlowLevel < 0 {
		return 0
	}
	return r.glow.GlowLevel
}

// interpolate returns steps+1 samples from b to c eased with smoothstep,
// both ends included.
func interpolate(b, c Sample, steps int) []Sample {
	pts := make([]Sample, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		e := t * t * (3 - 2*t)
		pts = append(pts, Sample{
			Point: state.Point{
				X: b.X + (c.X-b.X)*e,
				Y: b.Y + (c.Y-b.Y)*e,
			},
			Width: b.Width + (c.Width-b.Width)*e,
		})
	}
	return pts
}
