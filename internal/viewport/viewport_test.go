package viewport

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/cplane/internal/cnum"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		h    float64
		w, y int
		ok   bool
	}{
		{"valid", 3, 600, 600, true},
		{"zero extent", 0, 600, 600, false},
		{"negative extent", -1, 600, 600, false},
		{"nan extent", math.NaN(), 600, 600, false},
		{"inf extent", math.Inf(1), 600, 600, false},
		{"zero width", 3, 0, 600, false},
		{"negative height", 3, 600, -4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.h, tt.w, tt.y)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidViewport) {
				t.Errorf("expected ErrInvalidViewport, got %v", err)
			}
		})
	}
}

func TestScale(t *testing.T) {
	vp, err := New(3, 600, 300)
	if err != nil {
		t.Fatal(err)
	}
	if got := vp.Scale(); got != 100 {
		t.Errorf("scale = %v, want 100", got)
	}
}

func TestToPixelCorners(t *testing.T) {
	v := Viewport{HalfExtent: 3, Width: 600, Height: 400}

	tests := []struct {
		z    cnum.Complex
		x, y float64
	}{
		{cnum.New(0, 0), 300, 200},
		{cnum.New(-3, 3), 0, 0},
		{cnum.New(3, -3), 600, 400},
		{cnum.New(1.5, 1.5), 450, 100},
	}
	for _, tt := range tests {
		x, y := v.ToPixel(tt.z)
		if math.Abs(x-tt.x) > 1e-9 || math.Abs(y-tt.y) > 1e-9 {
			t.Errorf("ToPixel(%v) = (%v, %v), want (%v, %v)", tt.z, x, y, tt.x, tt.y)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []Viewport{
		{HalfExtent: 3, Width: 600, Height: 600},
		{HalfExtent: 1.25, Width: 317, Height: 211},
		{HalfExtent: 10, Width: 160, Height: 96},
	} {
		for y := 0; y < v.Height; y += 7 {
			for x := 0; x < v.Width; x += 5 {
				px, py := v.ToPixel(v.ToPlane(float64(x), float64(y)))
				if math.Abs(px-float64(x)) > 0.5 || math.Abs(py-float64(y)) > 0.5 {
					t.Fatalf("%+v: round trip (%d, %d) -> (%v, %v)", v, x, y, px, py)
				}

				ix, iy, ok := v.PixelIndex(v.ToPlane(float64(x)+0.5, float64(y)+0.5))
				if !ok || ix != x || iy != y {
					t.Fatalf("%+v: PixelIndex of centre (%d, %d) = (%d, %d, %v)", v, x, y, ix, iy, ok)
				}
			}
		}
	}
}

func TestPixelIndexRejects(t *testing.T) {
	v := Viewport{HalfExtent: 1, Width: 100, Height: 100}

	tests := []struct {
		name string
		z    cnum.Complex
	}{
		{"nan", cnum.New(math.NaN(), 0)},
		{"+inf", cnum.New(math.Inf(1), 0)},
		{"-inf imag", cnum.New(0, math.Inf(-1))},
		{"right edge", cnum.New(1, 0)},
		{"far left", cnum.New(-5, 0)},
		{"above", cnum.New(0, 1.5)},
	}
	for _, tt := range tests {
		if x, y, ok := v.PixelIndex(tt.z); ok {
			t.Errorf("%s: PixelIndex(%v) = (%d, %d), want rejected", tt.name, tt.z, x, y)
		}
	}
}
