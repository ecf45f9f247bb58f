package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/cplane/internal/cnum"
	"github.com/san-kum/cplane/internal/viewport"
)

// GridStyle sets the spacing of the three grid levels in plane units.
type GridStyle struct {
	Fine   float64
	Sub    float64
	Major  float64
	Tick   int
	Labels bool
}

var DefaultGridStyle = GridStyle{
	Fine:   0.1,
	Sub:    0.5,
	Major:  1,
	Tick:   4,
	Labels: true,
}

// Grid levels whose lines would be closer than this many pixels are not
// drawn.
const minLineGap = 3

// DrawGrid paints grid lines, axes, tick marks and unit labels into img.
// Coarser levels overwrite finer ones.
func DrawGrid(img *image.RGBA, vp viewport.Viewport, p Palette, g GridStyle) {
	fill(img, p.Background)

	b := img.Bounds()
	levels := []struct {
		spacing float64
		c       color.RGBA
	}{
		{g.Fine, p.Fine},
		{g.Sub, p.Sub},
		{g.Major, p.Major},
	}

	for _, lv := range levels {
		if !(lv.spacing > 0) || lv.spacing*vp.Scale() < minLineGap {
			continue
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			if crosses(vp.ToPlane(float64(x), 0).Re, vp.ToPlane(float64(x+1), 0).Re, lv.spacing) {
				vline(img, x, b.Min.Y, b.Max.Y, lv.c)
			}
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if crosses(vp.ToPlane(0, float64(y)).Im, vp.ToPlane(0, float64(y+1)).Im, lv.spacing) {
				hline(img, y, b.Min.X, b.Max.X, lv.c)
			}
		}
	}

	ox, oy, ok := vp.PixelIndex(cnum.Zero)
	if !ok {
		return
	}
	vline(img, ox, b.Min.Y, b.Max.Y, p.Axis)
	hline(img, oy, b.Min.X, b.Max.X, p.Axis)

	if !(g.Major > 0) {
		return
	}
	n := int(math.Floor(vp.HalfExtent / g.Major))
	for k := -n; k <= n; k++ {
		if k == 0 {
			continue
		}
		v := float64(k) * g.Major
		if x, _, ok := vp.PixelIndex(cnum.New(v, 0)); ok {
			vline(img, x, oy-g.Tick, oy+g.Tick+1, p.Axis)
			if g.Labels {
				label(img, x+2, oy+14, cnum.New(v, 0).String(), p.Axis)
			}
		}
		if _, y, ok := vp.PixelIndex(cnum.New(0, v)); ok {
			hline(img, y, ox-g.Tick, ox+g.Tick+1, p.Axis)
			if g.Labels {
				label(img, ox+g.Tick+2, y+4, cnum.New(0, v).String(), p.Axis)
			}
		}
	}
}

// crosses reports whether a multiple of spacing lies in [min(a,b), max(a,b)).
func crosses(a, b, spacing float64) bool {
	lo, hi := math.Min(a, b), math.Max(a, b)
	return math.Ceil(lo/spacing) < hi/spacing
}

func vline(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		img.SetRGBA(x, y, c)
	}
}

func hline(img *image.RGBA, y, x0, x1 int, c color.RGBA) {
	for x := x0; x < x1; x++ {
		img.SetRGBA(x, y, c)
	}
}

func label(img *image.RGBA, x, y int, s string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
