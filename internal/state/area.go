package state

import (
	"image"
	"math"
)

// DrawingArea is an axis-aligned box on the surface.
type DrawingArea struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// AreaOf returns the bounding box of points grown by padding on every side.
// The zero area is returned for no points.
func AreaOf(padding float64, points ...Point) DrawingArea {
	if len(points) == 0 {
		return DrawingArea{}
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	return DrawingArea{
		X:      minX - padding,
		Y:      minY - padding,
		Width:  maxX - minX + 2*padding,
		Height: maxY - minY + 2*padding,
	}
}

// Empty reports whether the area covers nothing.
func (a DrawingArea) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Union returns the smallest area covering both a and b. An empty operand
// is ignored.
func (a DrawingArea) Union(b DrawingArea) DrawingArea {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	minX := math.Min(a.X, b.X)
	minY := math.Min(a.Y, b.Y)
	maxX := math.Max(a.X+a.Width, b.X+b.Width)
	maxY := math.Max(a.Y+a.Height, b.Y+b.Height)
	return DrawingArea{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Rect converts a to whole pixels, rounding outwards, clipped to bounds.
func (a DrawingArea) Rect(bounds image.Rectangle) image.Rectangle {
	if a.Empty() {
		return image.Rectangle{}
	}
	r := image.Rect(
		int(math.Floor(a.X)), int(math.Floor(a.Y)),
		int(math.Ceil(a.X+a.Width)), int(math.Ceil(a.Y+a.Height)),
	)
	return r.Intersect(bounds)
}
