package viz

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille surface. Each terminal cell holds 2x4 dots and one
// foreground colour, the colour of the last dot set in it. Surface
// coordinates address dots, so the canvas is Cols*2 by Rows*4 pixels.
type Canvas struct {
	Cols, Rows int
	Grid       [][]rune
	Colors     [][]color.RGBA

	bg     color.RGBA
	stroke color.RGBA
	pen    [2]float64
	path   [][4]float64
	ready  bool
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{
		Cols:   cols,
		Rows:   rows,
		Grid:   make([][]rune, rows),
		Colors: make([][]color.RGBA, rows),
		bg:     color.RGBA{0, 0, 0, 255},
		stroke: color.RGBA{255, 255, 255, 255},
		ready:  true,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, cols)
		c.Colors[i] = make([]color.RGBA, cols)
	}
	c.Clear(c.bg)
	return c
}

func (c *Canvas) Width() int  { return c.Cols * 2 }
func (c *Canvas) Height() int { return c.Rows * 4 }

func (c *Canvas) Ready() bool { return c.ready }

// SetReady gates rendering. Frames requested while the gate is closed are
// skipped.
func (c *Canvas) SetReady(ready bool) { c.ready = ready }

func (c *Canvas) Background() color.RGBA { return c.bg }

// Set sets the dot at (x, y) in colour col.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= c.Cols || cy >= c.Rows {
		return
	}
	c.Grid[cy][cx] |= rune(pixelMap[y%4][x%2])
	c.Colors[cy][cx] = col
}

// Unset clears a dot.
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= c.Cols || cy >= c.Rows {
		return
	}
	c.Grid[cy][cx] &^= rune(pixelMap[y%4][x%2])
}

// IsSet reports whether the dot at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear blanks every cell and records bg as the background colour.
func (c *Canvas) Clear(bg color.Color) {
	c.bg = toRGBA(bg)
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = c.bg
		}
	}
}

// FillRect clears the covered dots when col is the background colour and
// lights them otherwise.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	rgba := toRGBA(col)
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for py := max(y0, 0); py < min(y1, c.Height()); py++ {
		for px := max(x0, 0); px < min(x1, c.Width()); px++ {
			if rgba == c.bg {
				c.Unset(px, py)
			} else {
				c.Set(px, py, rgba)
			}
		}
	}
}

func (c *Canvas) SetStrokeColor(col color.Color) { c.stroke = toRGBA(col) }

// SetLineWidth is a no-op; every stroke is one dot wide.
func (c *Canvas) SetLineWidth(float64) {}

func (c *Canvas) BeginPath() { c.path = c.path[:0] }

func (c *Canvas) MoveTo(x, y float64) { c.pen = [2]float64{x, y} }

func (c *Canvas) LineTo(x, y float64) {
	c.path = append(c.path, [4]float64{c.pen[0], c.pen[1], x, y})
	c.pen = [2]float64{x, y}
}

func (c *Canvas) Stroke() {
	for _, s := range c.path {
		x0, y0, x1, y1, ok := clip(s, float64(c.Width()), float64(c.Height()))
		if !ok {
			continue
		}
		c.DrawLine(dot(x0), dot(y0), dot(x1), dot(y1), c.stroke)
	}
	c.path = c.path[:0]
}

// clip trims segment s to [0, w) x [0, h) (Liang-Barsky). ok is false when
// nothing of the segment is visible.
func clip(s [4]float64, w, h float64) (x0, y0, x1, y1 float64, ok bool) {
	x0, y0, x1, y1 = s[0], s[1], s[2], s[3]
	dx, dy := x1-x0, y1-y0
	lo, hi := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, w - 1e-9 - x0},
		{-dy, y0},
		{dy, h - 1e-9 - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			lo = math.Max(lo, r)
		} else {
			hi = math.Min(hi, r)
		}
		if lo > hi {
			return 0, 0, 0, 0, false
		}
	}
	return x0 + lo*dx, y0 + lo*dy, x0 + hi*dx, y0 + hi*dy, true
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col color.RGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// PutImage lights every dot whose pixel differs from the background and
// colours each cell with its brightest lit pixel. img is sampled
// nearest-neighbour when its size differs from the canvas.
func (c *Canvas) PutImage(img *image.RGBA) {
	b := img.Bounds()
	if b.Empty() {
		return
	}
	w, h := c.Width(), c.Height()
	best := make([]float64, c.Cols*c.Rows)
	for y := 0; y < h; y++ {
		sy := b.Min.Y + y*b.Dy()/h
		for x := 0; x < w; x++ {
			sx := b.Min.X + x*b.Dx()/w
			p := img.RGBAAt(sx, sy)
			if p == c.bg {
				c.Unset(x, y)
				continue
			}
			cell := (y/4)*c.Cols + x/2
			c.Grid[y/4][x/2] |= rune(pixelMap[y%4][x%2])
			if l := luma(p); l >= best[cell] {
				best[cell] = l
				c.Colors[y/4][x/2] = p
			}
		}
	}
}

// Image rasterises the canvas at CellWidth x CellHeight pixels per cell,
// drawing each lit dot as a solid block.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Cols*CellWidth, c.Rows*CellHeight))
	dotW, dotH := CellWidth/2, CellHeight/4
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.bg.R, c.bg.G, c.bg.B, 255
	}
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			pattern := int(c.Grid[row][col] - blank)
			if pattern == 0 {
				continue
			}
			fg := c.Colors[row][col]
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					x0, y0 := col*CellWidth+dx*dotW, row*CellHeight+dy*dotH
					for py := y0; py < y0+dotH; py++ {
						for px := x0; px < x0+dotW; px++ {
							img.SetRGBA(px, py, fg)
						}
					}
				}
			}
		}
	}
	return img
}

// Pixel size of one cell in Image.
const (
	CellWidth  = 8
	CellHeight = 16
)

// String renders the canvas with one foreground style per run of equally
// coloured cells.
func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Colors[i][j] == c.Colors[i][start] {
				continue
			}
			style := lipgloss.NewStyle().Foreground(hex(c.Colors[i][start]))
			b.WriteString(style.Render(string(row[start:j])))
			start = j
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Plain renders the canvas without colour.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func dot(v float64) int { return int(math.Floor(v)) }

func toRGBA(col color.Color) color.RGBA {
	return color.RGBAModel.Convert(col).(color.RGBA)
}

func luma(p color.RGBA) float64 {
	return 0.299*float64(p.R) + 0.587*float64(p.G) + 0.114*float64(p.B)
}

func hex(p color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
