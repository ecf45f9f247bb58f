package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/san-kum/cplane/internal/cnum"
	"github.com/san-kum/cplane/internal/viewport"
	"github.com/san-kum/cplane/internal/viz"
)

// Braille dot-to-bit mapping
var pixelMap = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// CanvasToSVG draws every lit dot of a braille canvas as a circle in its
// cell colour. scale is the size of one dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width()) * scale
	height := float64(canvas.Height()) * scale
	bg := canvas.Background()

	var sb strings.Builder
	sb.WriteString(header(width, height))
	sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>`+"\n", hexColor(bg)))

	dotRadius := scale * 0.4
	for row := 0; row < canvas.Rows; row++ {
		for col := 0; col < canvas.Cols; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			fill := hexColor(canvas.Colors[row][col])

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					cx := baseX + float64(dx)*scale + scale/2
					cy := baseY + float64(dy)*scale + scale/2
					sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n", cx, cy, dotRadius, fill))
				}
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// PolylineSVG maps complex points through vp and joins them into one path.
// Non-finite points split the path.
func PolylineSVG(pts []cnum.Complex, vp viewport.Viewport, stroke color.Color) string {
	if len(pts) < 2 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(header(float64(vp.Width), float64(vp.Height)))
	sb.WriteString(`<rect width="100%" height="100%" fill="#0a0a0a"/>` + "\n")
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="`, hexColor(stroke)))

	pen := false
	for _, p := range pts {
		if !p.IsValid() {
			pen = false
			continue
		}
		x, y := vp.ToPixel(p)
		cmd := "L"
		if !pen {
			cmd = "M"
			pen = true
		}
		sb.WriteString(fmt.Sprintf("%s%.2f,%.2f ", cmd, x, y))
	}

	sb.WriteString(`"/>` + "\n</svg>")
	return sb.String()
}

// SVG is a surface that records draw calls as SVG elements.
type SVG struct {
	width, height int
	bg            color.RGBA
	stroke        color.RGBA
	lineWidth     float64

	body   strings.Builder
	path   strings.Builder
	raster *image.RGBA
	err    error
}

func NewSVG(width, height int) *SVG {
	s := &SVG{
		width:     width,
		height:    height,
		stroke:    color.RGBA{255, 255, 255, 255},
		lineWidth: 1,
	}
	s.Clear(color.Black)
	return s
}

func (s *SVG) Width() int  { return s.width }
func (s *SVG) Height() int { return s.height }
func (s *SVG) Ready() bool { return true }

func (s *SVG) Clear(c color.Color) {
	s.bg = color.RGBAModel.Convert(c).(color.RGBA)
	s.body.Reset()
	s.raster = nil
	s.err = nil
	s.body.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>`+"\n", hexColor(s.bg)))
}

func (s *SVG) FillRect(x, y, w, h float64, c color.Color) {
	s.body.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		x, y, w, h, hexColor(c)))
}

func (s *SVG) SetStrokeColor(c color.Color) { s.stroke = color.RGBAModel.Convert(c).(color.RGBA) }
func (s *SVG) SetLineWidth(w float64)       { s.lineWidth = w }

func (s *SVG) BeginPath() { s.path.Reset() }

func (s *SVG) MoveTo(x, y float64) { s.path.WriteString(fmt.Sprintf("M%.2f,%.2f ", x, y)) }
func (s *SVG) LineTo(x, y float64) { s.path.WriteString(fmt.Sprintf("L%.2f,%.2f ", x, y)) }

func (s *SVG) Stroke() {
	if s.path.Len() == 0 {
		return
	}
	s.body.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%g" d="%s"/>`+"\n",
		hexColor(s.stroke), s.lineWidth, strings.TrimSpace(s.path.String())))
	s.path.Reset()
}

// Image returns the last raster put on the surface, or a blank raster in
// the background colour. Vector elements are not rasterised.
func (s *SVG) Image() *image.RGBA {
	if s.raster != nil {
		return s.raster
	}
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = s.bg.R, s.bg.G, s.bg.B, s.bg.A
	}
	return img
}

// PutImage replaces the document body with img embedded as a PNG. An
// encoding failure is kept and reported by WriteTo.
func (s *SVG) PutImage(img *image.RGBA) {
	s.raster = image.NewRGBA(img.Bounds())
	copy(s.raster.Pix, img.Pix)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		s.err = fmt.Errorf("embed raster: %w", err)
		return
	}
	s.err = nil
	s.body.Reset()
	b := img.Bounds()
	s.body.WriteString(fmt.Sprintf(`<image x="0" y="0" width="%d" height="%d" href="data:image/png;base64,%s"/>`+"\n",
		b.Dx(), b.Dy(), base64.StdEncoding.EncodeToString(buf.Bytes())))
}

func (s *SVG) String() string {
	return header(float64(s.width), float64(s.height)) + s.body.String() + "</svg>"
}

// WriteTo writes the document, or fails with the error of the last
// PutImage.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func header(w, h float64) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, w, h, w, h)
}

func hexColor(c color.Color) string {
	p := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}
