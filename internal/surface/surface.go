package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"NeonBoard/internal/logging"
	"NeonBoard/internal/state"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Surface is the raster the board paints on. It is not safe for concurrent
// use; all painting and snapshotting happens on the UI event goroutine.
type Surface struct {
	img        *image.RGBA
	background color.Color
	damage     state.DrawingArea
}

// New returns a width×height surface cleared to background.
func New(width, height int, background color.Color) *Surface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s := &Surface{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: background,
	}
	s.Clear(background)
	return s
}

func (s *Surface) Width() int              { return s.img.Rect.Dx() }
func (s *Surface) Height() int             { return s.img.Rect.Dy() }
func (s *Surface) Bounds() image.Rectangle { return s.img.Rect }
func (s *Surface) Background() color.Color { return s.background }
func (s *Surface) Image() *image.RGBA      { return s.img }
func (s *Surface) At(x, y int) color.RGBA  { return s.img.RGBAAt(x, y) }

func (s *Surface) markRect(r image.Rectangle) {
	s.damage = s.damage.Union(state.DrawingArea{
		X: float64(r.Min.X), Y: float64(r.Min.Y),
		Width: float64(r.Dx()), Height: float64(r.Dy()),
	})
}

// TakeDamage returns the region changed since the previous call.
func (s *Surface) TakeDamage() image.Rectangle {
	r := s.damage.Rect(s.img.Rect)
	s.damage = state.DrawingArea{}
	return r
}

// Clear fills the whole surface with c.
func (s *Surface) Clear(c color.Color) {
	if c == nil {
		c = s.background
	}
	xdraw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, xdraw.Src)
	s.markRect(s.img.Rect)
}

// StrokePath strokes p with round caps and joins.
func (s *Surface) StrokePath(p *Path, st Style) {
	if p == nil || p.Len() == 0 || st.Width <= 0 {
		return
	}
	s.paint(p.Hull(), st.Width/2, st, func(sc *rasterx.ScannerGV, w, h int, off state.Point) {
		stroker := rasterx.NewStroker(w, h, sc)
		stroker.SetStroke(toFixed(st.Width), toFixed(4), rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
		started := false
		for _, op := range p.ops {
			switch op.kind {
			case opMove:
				if started {
					stroker.Stop(false)
				}
				stroker.Start(fixedPoint(op.pts[0], off))
				started = true
			case opLine:
				stroker.Line(fixedPoint(op.pts[0], off))
			case opQuad:
				stroker.QuadBezier(fixedPoint(op.pts[0], off), fixedPoint(op.pts[1], off))
			}
		}
		if started {
			stroker.Stop(false)
		}
	})
}

// FillCircle paints a filled disc of radius r centred on c.
func (s *Surface) FillCircle(c state.Point, r float64, st Style) {
	if r <= 0 {
		return
	}
	s.paint([]state.Point{c}, r, st, func(sc *rasterx.ScannerGV, w, h int, off state.Point) {
		addCircle(rasterx.NewFiller(w, h, sc), state.Point{X: c.X + off.X, Y: c.Y + off.Y}, r)
	})
}

// paint rasterizes a shape into a coverage mask covering hull grown by
// reach plus the blur spread, then composites the glow and the shape.
func (s *Surface) paint(hull []state.Point, reach float64, st Style, build func(sc *rasterx.ScannerGV, w, h int, off state.Point)) {
	sigma := st.Blur / 2
	pad := reach + blurExtent(sigma) + 2
	r := state.AreaOf(pad, hull...).Rect(s.img.Rect)
	if r.Empty() {
		return
	}

	w, h := r.Dx(), r.Dy()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, mask, mask.Bounds())
	scanner.SetColor(color.Opaque)

	off := state.Point{X: -float64(r.Min.X), Y: -float64(r.Min.Y)}
	build(scanner, w, h, off)
	scanner.Draw()

	if sigma > 0 && st.Glow != nil {
		glow := glowMask(mask, sigma)
		xdraw.DrawMask(s.img, r, image.NewUniform(st.Glow), image.Point{}, glow, image.Point{}, xdraw.Over)
	}
	fill := st.Color
	if fill == nil {
		fill = color.White
	}
	xdraw.DrawMask(s.img, r, image.NewUniform(fill), image.Point{}, mask, image.Point{}, xdraw.Over)

	s.markRect(r)
	logging.Logger().Debug("surface: painted", "rect", r, "blur", st.Blur)
}

// addCircle traces a circle as four cubic arcs.
func addCircle(f *rasterx.Filler, c state.Point, r float64) {
	k := r * kappa
	pt := func(x, y float64) fixed.Point26_6 { return rasterx.ToFixedP(x, y) }

	f.Start(pt(c.X+r, c.Y))
	f.CubeBezier(pt(c.X+r, c.Y+k), pt(c.X+k, c.Y+r), pt(c.X, c.Y+r))
	f.CubeBezier(pt(c.X-k, c.Y+r), pt(c.X-r, c.Y+k), pt(c.X-r, c.Y))
	f.CubeBezier(pt(c.X-r, c.Y-k), pt(c.X-k, c.Y-r), pt(c.X, c.Y-r))
	f.CubeBezier(pt(c.X+k, c.Y-r), pt(c.X+r, c.Y-k), pt(c.X+r, c.Y))
	f.Stop(true)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fixedPoint(p, off state.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X+off.X, p.Y+off.Y)
}
