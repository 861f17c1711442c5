package surface

import (
	"image"
	"testing"

	"github.com/disintegration/imaging"
)

func alphaAt(img image.Image, x, y int) uint8 {
	_, _, _, a := img.At(x, y).RGBA()
	return uint8(a >> 8)
}

func TestGlowSpreadsCoverage(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 41, 41))
	src.Pix[20*src.Stride+20] = 0xff
	out := glowMask(src, 2)

	if alphaAt(out, 20, 20) >= 0xff {
		t.Error("blur should spread the single pixel")
	}
	if alphaAt(out, 22, 20) == 0 {
		t.Error("neighbour should receive some coverage")
	}
	if alphaAt(out, 0, 0) != 0 {
		t.Error("corner should stay empty")
	}
	if !out.Bounds().Eq(src.Bounds()) {
		t.Errorf("bounds %v, want %v", out.Bounds(), src.Bounds())
	}
}

func TestGlowZeroSigmaCopies(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 3, 3))
	src.Pix[4] = 200
	out := glowMask(src, 0)
	if got := alphaAt(out, 1, 1); got != 200 {
		t.Errorf("zero sigma changed coverage: %d", got)
	}
	src.Pix[4] = 1
	if got := alphaAt(out, 1, 1); got != 200 {
		t.Error("blur must not alias its input")
	}
}

func TestBlurScale(t *testing.T) {
	tests := []struct {
		sigma float64
		want  int
	}{
		{0.5, 1},
		{3.9, 1},
		{4, 1},
		{8, 2},
		{25, 6},
		{50, 12},
	}
	for _, tt := range tests {
		if got := blurScale(tt.sigma); got != tt.want {
			t.Errorf("blurScale(%g) = %d, want %d", tt.sigma, got, tt.want)
		}
	}
}

func TestGlowSmallSigmaMatchesFullBlur(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 30, 30))
	for y := 10; y < 20; y++ {
		for x := 10; x < 20; x++ {
			src.Pix[y*src.Stride+x] = 0xff
		}
	}
	got := glowMask(src, 3)
	want := imaging.Blur(src, 3)
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			if a, b := alphaAt(got, x, y), alphaAt(want, x, y); a != b {
				t.Fatalf("(%d,%d) = %d, want %d", x, y, a, b)
			}
		}
	}
}

// A downscaled wide blur must stay close to the full-resolution result.
func TestGlowWideSigmaApproximatesFullBlur(t *testing.T) {
	const size = 160
	src := image.NewAlpha(image.Rect(0, 0, size, size))
	for y := 60; y < 100; y++ {
		for x := 60; x < 100; x++ {
			src.Pix[y*src.Stride+x] = 0xff
		}
	}
	got := glowMask(src, 16)
	want := imaging.Blur(src, 16)

	for _, p := range []image.Point{{80, 80}, {100, 80}, {80, 120}, {130, 130}, {40, 80}} {
		a, b := int(alphaAt(got, p.X, p.Y)), int(alphaAt(want, p.X, p.Y))
		if d := a - b; d > 12 || d < -12 {
			t.Errorf("%v: downscaled %d, full %d", p, a, b)
		}
	}
	if alphaAt(got, 0, 0) > 2 {
		t.Errorf("far corner = %d, want ~0", alphaAt(got, 0, 0))
	}
}
