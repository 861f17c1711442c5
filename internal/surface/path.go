package surface

import (
	"image/color"

	"NeonBoard/internal/state"
)

type opKind uint8

const (
	opMove opKind = iota
	opLine
	opQuad
)

type pathOp struct {
	kind opKind
	pts  [2]state.Point
}

// Path is a sequence of move, line and quadratic curve commands in surface
// coordinates.
type Path struct {
	ops []pathOp
}

func (p *Path) MoveTo(pt state.Point) {
	p.ops = append(p.ops, pathOp{kind: opMove, pts: [2]state.Point{pt}})
}

// LineTo adds a straight segment. A path that does not start with MoveTo
// starts at pt.
func (p *Path) LineTo(pt state.Point) {
	if len(p.ops) == 0 {
		p.MoveTo(pt)
		return
	}
	p.ops = append(p.ops, pathOp{kind: opLine, pts: [2]state.Point{pt}})
}

// QuadTo adds a quadratic Bézier curve with control point ctrl ending at to.
func (p *Path) QuadTo(ctrl, to state.Point) {
	if len(p.ops) == 0 {
		p.MoveTo(ctrl)
	}
	p.ops = append(p.ops, pathOp{kind: opQuad, pts: [2]state.Point{ctrl, to}})
}

// Len returns the number of commands.
func (p *Path) Len() int { return len(p.ops) }

// Hull returns every point of the path including control points. The
// bounding box of the hull contains the curve.
func (p *Path) Hull() []state.Point {
	pts := make([]state.Point, 0, len(p.ops)*2)
	for _, op := range p.ops {
		pts = append(pts, op.pts[0])
		if op.kind == opQuad {
			pts = append(pts, op.pts[1])
		}
	}
	return pts
}

// Style describes one paint pass. Blur follows the canvas shadow model:
// the shape's coverage is blurred with a Gaussian of standard deviation
// Blur/2, painted in Glow, and the sharp shape is painted on top in Color.
type Style struct {
	Width float64
	Color color.Color
	Glow  color.Color
	Blur  float64
}
