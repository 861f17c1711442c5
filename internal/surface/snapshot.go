package surface

import "NeonBoard/internal/logging"

// Snapshot is an owned copy of the surface pixels, RGBA, row-major,
// 4*Width bytes per row.
type Snapshot struct {
	Width  int
	Height int
	Pix    []byte
}

// Size returns the number of bytes held by the snapshot.
func (s Snapshot) Size() int { return len(s.Pix) }

// Capture copies every pixel of the surface. The cost is O(width×height).
func (s *Surface) Capture() Snapshot {
	w, h := s.Width(), s.Height()
	pix := make([]byte, 4*w*h)
	if s.img.Stride == 4*w {
		copy(pix, s.img.Pix)
	} else {
		for y := 0; y < h; y++ {
			copy(pix[y*4*w:(y+1)*4*w], s.img.Pix[y*s.img.Stride:])
		}
	}
	return Snapshot{Width: w, Height: h, Pix: pix}
}

// Restore writes snap back onto the surface. When the sizes differ only the
// overlapping top-left region is copied and the rest is left untouched.
func (s *Surface) Restore(snap Snapshot) {
	w, h := s.Width(), s.Height()
	if snap.Width == w && snap.Height == h && s.img.Stride == 4*w && len(snap.Pix) == len(s.img.Pix) {
		copy(s.img.Pix, snap.Pix)
		s.markRect(s.img.Rect)
		return
	}

	cw, ch := min(w, snap.Width), min(h, snap.Height)
	if cw <= 0 || ch <= 0 || len(snap.Pix) < 4*snap.Width*snap.Height {
		logging.Logger().Warn("surface: snapshot does not fit", "snapshot", [2]int{snap.Width, snap.Height}, "surface", [2]int{w, h})
		return
	}
	for y := 0; y < ch; y++ {
		src := snap.Pix[y*4*snap.Width : y*4*snap.Width+4*cw]
		copy(s.img.Pix[y*s.img.Stride:], src)
	}
	s.markRect(s.img.Rect)
}
