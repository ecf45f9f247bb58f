package render

import (
	"math"

	"github.com/san-kum/cplane/internal/cnum"
	"github.com/san-kum/cplane/internal/transform"
	"github.com/san-kum/cplane/internal/viewport"
)

// DefaultStep is the parameter increment between polyline samples.
const DefaultStep = 0.01

// Tessellator approximates images of straight segments with polylines.
type Tessellator struct {
	Viewport viewport.Viewport
	samples  int
}

func NewTessellator(vp viewport.Viewport, step float64) *Tessellator {
	if !(step > 0) || step > 1 {
		step = DefaultStep
	}
	n := int(math.Round(1 / step))
	if n < 1 {
		n = 1
	}
	return &Tessellator{Viewport: vp, samples: n}
}

// Samples is the number of segments per polyline.
func (ts *Tessellator) Samples() int { return ts.samples }

// Points samples the segment z0..z1 at s = i/n for i = 0..n and maps each
// sample through fn (identity when nil).
func (ts *Tessellator) Points(z0, z1 cnum.Complex, fn transform.Func, t float64) []cnum.Complex {
	if fn == nil {
		fn = transform.Identity
	}
	pts := make([]cnum.Complex, 0, ts.samples+1)
	for i := 0; i <= ts.samples; i++ {
		z := cnum.Lerp(z0, z1, float64(i)/float64(ts.samples))
		pts = append(pts, fn(z, t))
	}
	return pts
}

// MorphPoints is Points with every sample blended between z and fn(z);
// blend is clamped to [0, 1].
func (ts *Tessellator) MorphPoints(z0, z1 cnum.Complex, fn transform.Func, t, blend float64) []cnum.Complex {
	if fn == nil {
		fn = transform.Identity
	}
	pts := make([]cnum.Complex, 0, ts.samples+1)
	for i := 0; i <= ts.samples; i++ {
		z := cnum.Lerp(z0, z1, float64(i)/float64(ts.samples))
		pts = append(pts, transform.Morph(fn, z, t, blend))
	}
	return pts
}

func (ts *Tessellator) Line(s Surface, z0, z1 cnum.Complex, fn transform.Func, t float64) {
	ts.Stroke(s, ts.Points(z0, z1, fn, t))
}

func (ts *Tessellator) AnimatedLine(s Surface, z0, z1 cnum.Complex, fn transform.Func, t, blend float64) {
	ts.Stroke(s, ts.MorphPoints(z0, z1, fn, t, blend))
}

// Stroke draws pts as one path. A non-finite point ends the current
// sub-path and the next finite point starts a new one.
func (ts *Tessellator) Stroke(s Surface, pts []cnum.Complex) {
	s.BeginPath()
	pen := false
	for _, p := range pts {
		if !p.IsValid() {
			pen = false
			continue
		}
		x, y := ts.Viewport.ToPixel(p)
		if !finite(x) || !finite(y) {
			pen = false
			continue
		}
		if pen {
			s.LineTo(x, y)
		} else {
			s.MoveTo(x, y)
			pen = true
		}
	}
	s.Stroke()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
