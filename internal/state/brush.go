package state

import (
	"math"
	"time"
)

// WidthModel maps pointer speed to line width. Faster motion gives a
// thinner line, like a real marker. Target widths are low-pass filtered so
// noisy pointer sampling does not make the width jitter.
type WidthModel struct {
	cfg          *BrushConfig
	lastSmoothed float64
}

// NewWidthModel reads cfg on every sample, so changes made between strokes
// take effect on the next one.
func NewWidthModel(cfg *BrushConfig) *WidthModel {
	m := &WidthModel{cfg: cfg}
	m.Reset()
	return m
}

// Target computes the unsmoothed width for distance pixels travelled in dt.
func (m *WidthModel) Target(distance float64, dt time.Duration) float64 {
	c := *m.cfg
	mid := c.MidWidth()
	if dt <= 0 || c.UniformityFactor == 0 {
		return mid
	}

	speed := distance / dt.Seconds()
	speed = clamp(speed, c.MinSpeed, c.MaxSpeed)
	ratio := 0.0
	if c.MaxSpeed > c.MinSpeed {
		ratio = (speed - c.MinSpeed) / (c.MaxSpeed - c.MinSpeed)
	}

	variable := c.MinWidth + (c.MaxWidth-c.MinWidth)*(1-ratio)
	width := mid + (variable-mid)*(c.UniformityFactor/100)
	return clamp(width, c.MinWidth, c.MaxWidth)
}

// Smooth folds target into the running width and returns the result.
func (m *WidthModel) Smooth(target float64) float64 {
	k := m.cfg.SmoothingFactor
	m.lastSmoothed = m.lastSmoothed*k + target*(1-k)
	return m.lastSmoothed
}

// Next is Target followed by Smooth.
func (m *WidthModel) Next(distance float64, dt time.Duration) float64 {
	return m.Smooth(m.Target(distance, dt))
}

// Reset re-seeds the filter with the max width for the next stroke.
func (m *WidthModel) Reset() {
	m.lastSmoothed = m.cfg.MaxWidth
}

// Smoothed returns the last filtered width.
func (m *WidthModel) Smoothed() float64 { return m.lastSmoothed }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
