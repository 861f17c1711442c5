package surface

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// blurScaleSigma is the largest sigma blurred at full resolution. Wider
// blurs run on a mask shrunk so the effective sigma stays near this value.
const blurScaleSigma = 4

// blurExtent is how far a blur of the given sigma spreads coverage.
func blurExtent(sigma float64) float64 {
	if sigma <= 0 {
		return 0
	}
	return math.Ceil(3 * sigma)
}

// blurScale returns the downscale factor used for a blur of sigma.
func blurScale(sigma float64) int {
	k := int(sigma / blurScaleSigma)
	if k < 1 {
		return 1
	}
	return k
}

// glowMask returns mask blurred with a Gaussian of standard deviation
// sigma. Only the alpha channel of the result is meaningful. The result
// shares mask's bounds, which must start at the origin.
func glowMask(mask *image.Alpha, sigma float64) image.Image {
	if sigma <= 0 {
		return imaging.Clone(mask)
	}
	k := blurScale(sigma)
	if k == 1 {
		return imaging.Blur(mask, sigma)
	}

	b := mask.Bounds()
	small := imaging.Resize(mask, max(1, b.Dx()/k), max(1, b.Dy()/k), imaging.Box)
	small = imaging.Blur(small, sigma/float64(k))

	out := image.NewAlpha(b)
	xdraw.BiLinear.Scale(out, b, small, small.Bounds(), xdraw.Src, nil)
	return out
}
