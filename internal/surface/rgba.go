// Package surface provides drawing surfaces backed by in-memory rasters.
package surface

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/draw"
)

// RGBA is an antialiased drawing surface over an *image.RGBA.
type RGBA struct {
	img *image.RGBA
	gc  *draw2dimg.GraphicContext
}

func NewRGBA(width, height int) *RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &RGBA{img: img, gc: draw2dimg.NewGraphicContext(img)}
}

func (s *RGBA) Width() int  { return s.img.Bounds().Dx() }
func (s *RGBA) Height() int { return s.img.Bounds().Dy() }
func (s *RGBA) Ready() bool { return s.img != nil }

func (s *RGBA) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *RGBA) FillRect(x, y, w, h float64, c color.Color) {
	s.gc.SetFillColor(c)
	s.gc.BeginPath()
	draw2dkit.Rectangle(s.gc, x, y, x+w, y+h)
	s.gc.Fill()
}

func (s *RGBA) SetStrokeColor(c color.Color) { s.gc.SetStrokeColor(c) }
func (s *RGBA) SetLineWidth(w float64)       { s.gc.SetLineWidth(w) }
func (s *RGBA) BeginPath()                   { s.gc.BeginPath() }
func (s *RGBA) MoveTo(x, y float64)          { s.gc.MoveTo(x, y) }
func (s *RGBA) LineTo(x, y float64)          { s.gc.LineTo(x, y) }
func (s *RGBA) Stroke()                      { s.gc.Stroke() }

func (s *RGBA) Image() *image.RGBA { return s.img }

func (s *RGBA) PutImage(img *image.RGBA) {
	if img.Bounds() == s.img.Bounds() {
		copy(s.img.Pix, img.Pix)
		return
	}
	draw.Draw(s.img, s.img.Bounds(), img, img.Bounds().Min, draw.Src)
}
