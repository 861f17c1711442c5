package state

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Point is a position in surface pixel coordinates.
type Point struct{ X, Y float64 }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// TimedPoint is a recorded point. T is seconds since the recording started.
type TimedPoint struct {
	Point
	T float64
}

// Defaults taken by a fresh board.
const (
	DefaultMinWidth         = 0.5
	DefaultMaxWidth         = 12
	DefaultUniformityFactor = 100
	DefaultMinSpeed         = 50   // px/s, slowest speed, thickest line
	DefaultMaxSpeed         = 1500 // px/s, fastest speed, thinnest line
	DefaultSmoothingFactor  = 0.85
	DefaultGlowLevel        = 15
	MaxGlowLevel            = 50
)

// BrushConfig drives the width model. UI callbacks mutate it between
// strokes; the width model re-reads it on every sample.
type BrushConfig struct {
	MinWidth         float64
	MaxWidth         float64
	UniformityFactor float64 // 0 = uniform, 100 = fully speed-reactive
	MinSpeed         float64
	MaxSpeed         float64
	SmoothingFactor  float64 // in [0, 1)
}

// DefaultBrush returns the stock brush.
func DefaultBrush() BrushConfig {
	return BrushConfig{
		MinWidth:         DefaultMinWidth,
		MaxWidth:         DefaultMaxWidth,
		UniformityFactor: DefaultUniformityFactor,
		MinSpeed:         DefaultMinSpeed,
		MaxSpeed:         DefaultMaxSpeed,
		SmoothingFactor:  DefaultSmoothingFactor,
	}
}

var (
	ErrWidthRange  = errors.New("min width exceeds max width")
	ErrSpeedRange  = errors.New("min speed must be below max speed")
	ErrUniformity  = errors.New("uniformity factor outside [0, 100]")
	ErrSmoothing   = errors.New("smoothing factor outside [0, 1)")
	ErrNegativeVal = errors.New("negative width")
)

// Validate reports the first broken invariant, if any.
func (c BrushConfig) Validate() error {
	switch {
	case c.MinWidth < 0 || c.MaxWidth < 0:
		return ErrNegativeVal
	case c.MinWidth > c.MaxWidth:
		return fmt.Errorf("%w: %g > %g", ErrWidthRange, c.MinWidth, c.MaxWidth)
	case c.MinSpeed >= c.MaxSpeed:
		return fmt.Errorf("%w: %g >= %g", ErrSpeedRange, c.MinSpeed, c.MaxSpeed)
	case c.UniformityFactor < 0 || c.UniformityFactor > 100:
		return fmt.Errorf("%w: %g", ErrUniformity, c.UniformityFactor)
	case c.SmoothingFactor < 0 || c.SmoothingFactor >= 1:
		return fmt.Errorf("%w: %g", ErrSmoothing, c.SmoothingFactor)
	}
	return nil
}

// MidWidth is the width of a perfectly uniform stroke.
func (c BrushConfig) MidWidth() float64 {
	return (c.MinWidth + c.MaxWidth) / 2
}

// GlowConfig controls the blur radius of the neon passes.
type GlowConfig struct {
	GlowLevel float64
}

// NeonColor pairs the stroke hue with its glow hue.
type NeonColor struct {
	Name string
	Main color.NRGBA
	Glow color.NRGBA
}

// NeonColors is the fixed preset palette.
var NeonColors = []NeonColor{
	{Name: "magenta", Main: color.NRGBA{R: 0xff, B: 0xff, A: 0xff}, Glow: color.NRGBA{R: 0xff, B: 0xff, A: 0xff}},
	{Name: "cyan", Main: color.NRGBA{G: 0xff, B: 0xff, A: 0xff}, Glow: color.NRGBA{G: 0xff, B: 0xff, A: 0xff}},
	{Name: "green", Main: color.NRGBA{G: 0xff, A: 0xff}, Glow: color.NRGBA{G: 0xff, A: 0xff}},
	{Name: "orange", Main: color.NRGBA{R: 0xff, G: 0x80, A: 0xff}, Glow: color.NRGBA{R: 0xff, G: 0x80, A: 0xff}},
	{Name: "pink", Main: color.NRGBA{R: 0xff, B: 0x80, A: 0xff}, Glow: color.NRGBA{R: 0xff, B: 0x80, A: 0xff}},
	{Name: "blue", Main: color.NRGBA{G: 0x80, B: 0xff, A: 0xff}, Glow: color.NRGBA{G: 0x80, B: 0xff, A: 0xff}},
}

// Background is the surface clear color.
var Background = color.NRGBA{A: 0xff}
