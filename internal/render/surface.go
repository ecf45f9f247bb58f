package render

import (
	"image"
	"image/color"
)

// Surface is the drawing target of a strategy. Coordinates are pixels with
// the origin at the top-left corner.
type Surface interface {
	Width() int
	Height() int
	// Ready reports whether a frame can be drawn now.
	Ready() bool

	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)

	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()

	// Image returns the current contents as a raster.
	Image() *image.RGBA
	// PutImage replaces the contents with img.
	PutImage(img *image.RGBA)
}

// Frame carries the animation parameters of one render pass.
type Frame struct {
	Time  float64
	Blend float64
}

// Strategy renders complete frames onto a surface.
type Strategy interface {
	Init(s Surface) error
	Render(s Surface, f Frame)
}
