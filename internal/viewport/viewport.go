// Package viewport maps between a square window of the complex plane
// centred on the origin and a pixel raster.
package viewport

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/cplane/internal/cnum"
)

var ErrInvalidViewport = errors.New("viewport: invalid dimensions")

// Viewport covers [-HalfExtent, HalfExtent] on both axes. Pixel rows grow
// downward while the imaginary axis grows upward.
type Viewport struct {
	HalfExtent    float64
	Width, Height int
}

func New(halfExtent float64, width, height int) (Viewport, error) {
	if !(halfExtent > 0) || math.IsInf(halfExtent, 0) {
		return Viewport{}, fmt.Errorf("%w: half extent %v", ErrInvalidViewport, halfExtent)
	}
	if width <= 0 || height <= 0 {
		return Viewport{}, fmt.Errorf("%w: size %dx%d", ErrInvalidViewport, width, height)
	}
	return Viewport{HalfExtent: halfExtent, Width: width, Height: height}, nil
}

// ToPixel returns sub-pixel surface coordinates for z.
func (v Viewport) ToPixel(z cnum.Complex) (x, y float64) {
	span := 2 * v.HalfExtent
	x = (z.Re + v.HalfExtent) / span * float64(v.Width)
	y = (-z.Im + v.HalfExtent) / span * float64(v.Height)
	return x, y
}

// ToPlane is the inverse of ToPixel.
func (v Viewport) ToPlane(x, y float64) cnum.Complex {
	span := 2 * v.HalfExtent
	re := x/float64(v.Width)*span - v.HalfExtent
	im := v.HalfExtent - y/float64(v.Height)*span
	return cnum.Complex{Re: re, Im: im}
}

// PixelIndex returns the raster cell containing z. ok is false when z is
// non-finite or falls outside the raster.
func (v Viewport) PixelIndex(z cnum.Complex) (px, py int, ok bool) {
	x, y := v.ToPixel(z)
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	x, y = math.Floor(x), math.Floor(y)
	if x < 0 || y < 0 || x >= float64(v.Width) || y >= float64(v.Height) {
		return 0, 0, false
	}
	return int(x), int(y), true
}

// Scale returns the number of pixels per plane unit along x.
func (v Viewport) Scale() float64 {
	return float64(v.Width) / (2 * v.HalfExtent)
}
