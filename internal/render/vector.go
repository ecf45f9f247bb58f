package render

import (
	"image/color"
	"math"

	"github.com/san-kum/cplane/internal/cnum"
	"github.com/san-kum/cplane/internal/transform"
	"github.com/san-kum/cplane/internal/viewport"
)

// Palette holds the colours shared by both strategies.
type Palette struct {
	Background color.RGBA
	Fine       color.RGBA
	Sub        color.RGBA
	Major      color.RGBA
	Axis       color.RGBA
	Curve      color.RGBA
}

var DefaultPalette = Palette{
	Background: color.RGBA{0, 0, 0, 255},
	Fine:       color.RGBA{0, 255, 0, 255},
	Sub:        color.RGBA{0, 110, 0, 255},
	Major:      color.RGBA{255, 0, 0, 255},
	Axis:       color.RGBA{255, 255, 255, 255},
	Curve:      color.RGBA{0, 127, 255, 255},
}

// VectorStrategy draws a grid of lines, their images under GridMap, the
// axes, and one curve that morphs from a straight segment into its image
// under CurveMap as the blend factor goes from 0 to 1.
type VectorStrategy struct {
	Viewport viewport.Viewport
	Palette  Palette

	// FineExtent and FineSpacing place the fine grid over
	// [-FineExtent, FineExtent]; the unit grid covers the whole viewport.
	FineExtent  float64
	FineSpacing float64

	// GridMap is applied to every grid line; nil draws the horizontal
	// lines instead.
	GridMap transform.Func

	CurveMap  transform.Func
	CurveFrom cnum.Complex
	CurveTo   cnum.Complex

	tess *Tessellator
}

func NewVectorStrategy(vp viewport.Viewport, step float64) *VectorStrategy {
	return &VectorStrategy{
		Viewport:    vp,
		Palette:     DefaultPalette,
		FineExtent:  1,
		FineSpacing: 0.2,
		GridMap:     transform.Multiply(cnum.I),
		CurveMap:    transform.Power(cnum.I),
		CurveFrom:   cnum.Zero,
		CurveTo:     cnum.New(2*math.Pi, 0),
		tess:        NewTessellator(vp, step),
	}
}

func (v *VectorStrategy) Tessellator() *Tessellator { return v.tess }

func (v *VectorStrategy) Init(s Surface) error { return nil }

func (v *VectorStrategy) Render(s Surface, f Frame) {
	w, h := float64(s.Width()), float64(s.Height())
	s.Clear(v.Palette.Background)
	s.FillRect(0, 0, w, h, v.Palette.Background)

	s.SetLineWidth(1)
	s.SetStrokeColor(v.Palette.Fine)
	v.gridLines(s, v.FineExtent, v.FineSpacing, f.Time)

	s.SetStrokeColor(v.Palette.Major)
	v.gridLines(s, math.Floor(v.Viewport.HalfExtent), 1, f.Time)

	s.SetLineWidth(2)
	s.SetStrokeColor(v.Palette.Axis)
	he := v.Viewport.HalfExtent
	v.tess.Line(s, cnum.New(0, -he), cnum.New(0, he), nil, f.Time)
	v.tess.Line(s, cnum.New(-he, 0), cnum.New(he, 0), nil, f.Time)

	if v.CurveMap != nil {
		s.SetStrokeColor(v.Palette.Curve)
		v.tess.AnimatedLine(s, v.CurveFrom, v.CurveTo, v.CurveMap, f.Time, f.Blend)
	}
}

// gridLines draws the vertical lines x = k·spacing over [-extent, extent]
// and, for each, either its image under GridMap or the matching horizontal.
func (v *VectorStrategy) gridLines(s Surface, extent, spacing float64, t float64) {
	if !(spacing > 0) || !(extent > 0) {
		return
	}
	n := int(math.Round(2 * extent / spacing))
	for i := 0; i <= n; i++ {
		x := -extent + float64(i)*spacing
		z0, z1 := cnum.New(x, -extent), cnum.New(x, extent)

		v.tess.Line(s, z0, z1, nil, t)
		if v.GridMap != nil {
			v.tess.Line(s, z0, z1, v.GridMap, t)
		} else {
			v.tess.Line(s, cnum.New(-extent, x), cnum.New(extent, x), nil, t)
		}
	}
}
