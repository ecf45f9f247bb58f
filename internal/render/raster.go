package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/san-kum/cplane/internal/transform"
	"github.com/san-kum/cplane/internal/viewport"
)

var ErrSizeMismatch = errors.New("render: surface size does not match viewport")

// RasterStrategy warps a source raster through a transform. Every source
// pixel is sent to the destination pixel containing its image; pixels
// whose image is non-finite or off-raster are dropped. Nothing fills the
// gaps, so expanding maps leave holes.
//
// With Morph set, each pixel travels only part of the way, to
// lerp(z, Transform(z), blend), using the frame's blend factor.
type RasterStrategy struct {
	Viewport  viewport.Viewport
	Palette   Palette
	Transform transform.Func
	Morph     bool
	Grid      GridStyle

	picture image.Image
	src     *image.RGBA
	dst     *image.RGBA
}

func NewRasterStrategy(vp viewport.Viewport, fn transform.Func) *RasterStrategy {
	return &RasterStrategy{
		Viewport:  vp,
		Palette:   DefaultPalette,
		Transform: fn,
		Grid:      DefaultGridStyle,
	}
}

// SetSource replaces the grid with img, scaled to the raster size. It may
// be called before or after Init.
func (r *RasterStrategy) SetSource(img image.Image) {
	r.picture = img
	if r.src != nil {
		r.loadPicture()
	}
}

func (r *RasterStrategy) Init(s Surface) error {
	if s.Width() != r.Viewport.Width || s.Height() != r.Viewport.Height {
		return fmt.Errorf("%w: surface %dx%d, viewport %dx%d", ErrSizeMismatch,
			s.Width(), s.Height(), r.Viewport.Width, r.Viewport.Height)
	}
	rect := image.Rect(0, 0, s.Width(), s.Height())
	r.src = image.NewRGBA(rect)
	r.dst = image.NewRGBA(rect)

	if r.picture != nil {
		r.loadPicture()
		return nil
	}
	DrawGrid(r.src, r.Viewport, r.Palette, r.Grid)
	return nil
}

func (r *RasterStrategy) loadPicture() {
	draw.ApproxBiLinear.Scale(r.src, r.src.Bounds(), r.picture, r.picture.Bounds(), draw.Src, nil)
}

// Source is the static raster being warped.
func (r *RasterStrategy) Source() *image.RGBA { return r.src }

// Destination is the raster produced by the last Render.
func (r *RasterStrategy) Destination() *image.RGBA { return r.dst }

func (r *RasterStrategy) Render(s Surface, f Frame) {
	if r.src == nil {
		return
	}
	r.Warp(f.Time, f.Blend)
	s.PutImage(r.dst)
}

// Warp rebuilds the destination raster for time t. blend is used only
// when Morph is set.
func (r *RasterStrategy) Warp(t, blend float64) {
	fill(r.dst, r.Palette.Background)

	fn := r.Transform
	if fn == nil {
		fn = transform.Identity
	}

	b := r.src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// sample at the pixel centre so the identity map is exact
			z := r.Viewport.ToPlane(float64(x)+0.5, float64(y)+0.5)
			w := fn(z, t)
			if r.Morph {
				w = transform.Morph(fn, z, t, blend)
			}
			nx, ny, ok := r.Viewport.PixelIndex(w)
			if !ok || !(image.Point{nx, ny}).In(r.dst.Rect) {
				continue
			}
			so := r.src.PixOffset(x, y)
			do := r.dst.PixOffset(nx, ny)
			copy(r.dst.Pix[do:do+4], r.src.Pix[so:so+4])
		}
	}
}

func fill(img *image.RGBA, c color.RGBA) {
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}
