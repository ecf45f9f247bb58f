package cnum

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Complex struct {
	Re float64 `yaml:"re" json:"re"`
	Im float64 `yaml:"im" json:"im"`
}

var (
	Zero = Complex{}
	One  = Complex{Re: 1}
	I    = Complex{Im: 1}
)

func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// FromPolar builds r·(cos θ + i sin θ).
func FromPolar(r, theta float64) Complex {
	sin, cos := math.Sincos(theta)
	return Complex{Re: r * cos, Im: r * sin}
}

func FromComplex128(c complex128) Complex {
	return Complex{Re: real(c), Im: imag(c)}
}

func (z Complex) Complex128() complex128 {
	return complex(z.Re, z.Im)
}

func (z Complex) IsValid() bool {
	return !math.IsNaN(z.Re) && !math.IsNaN(z.Im) &&
		!math.IsInf(z.Re, 0) && !math.IsInf(z.Im, 0)
}

func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

func (z Complex) Sub(w Complex) Complex {
	return Complex{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

func (z Complex) Neg() Complex {
	return Complex{Re: -z.Re, Im: -z.Im}
}

func (z Complex) Scale(s float64) Complex {
	return Complex{Re: z.Re * s, Im: z.Im * s}
}

// Mul returns (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (z Complex) Mul(w Complex) Complex {
	a, b := z.Re, z.Im
	c, d := w.Re, w.Im
	return Complex{Re: a*c - b*d, Im: a*d + c*b}
}

func (z Complex) Conj() Complex {
	return Complex{Re: z.Re, Im: -z.Im}
}

// normSq is real(z * conj(z)), kept on the Mul path so Modulus and Div
// round the same way as multiplication.
func (z Complex) normSq() float64 {
	return z.Mul(z.Conj()).Re
}

func (z Complex) Modulus() float64 {
	return math.Sqrt(z.normSq())
}

// Arg returns the angle of z in (-π, π].
func (z Complex) Arg() float64 {
	return math.Atan2(z.Im, z.Re)
}

// Div returns z/w. A zero divisor yields NaN or Inf components.
func (z Complex) Div(w Complex) Complex {
	n := z.Mul(w.Conj())
	d := w.normSq()
	return Complex{Re: n.Re / d, Im: n.Im / d}
}

// Pow returns z^w computed in polar form. With w = c+di:
//
//	|z^w| = |z|^c · e^(-d·arg z)
//	arg(z^w) = c·arg z + d·ln|z|
//
// A zero base makes ln|z| infinite and the result carries NaN components,
// including 0^(c+0i).
func (z Complex) Pow(w Complex) Complex {
	c, d := w.Re, w.Im
	r := z.Modulus()
	theta := z.Arg()

	m := math.Pow(r, c) * math.Exp(-d*theta)
	angle := c*theta + d*math.Log(r)

	return FromPolar(m, angle)
}

// PowReal raises z to a real exponent without going through the logarithm,
// so a zero base stays well defined for n > 0.
func (z Complex) PowReal(n float64) Complex {
	return FromPolar(math.Pow(z.Modulus(), n), z.Arg()*n)
}

// Exp returns z0^z1.
func Exp(z0, z1 Complex) Complex {
	return z0.Pow(z1)
}

// Lerp returns z0 + t·(z1-z0). t is not clamped.
func Lerp(z0, z1 Complex, t float64) Complex {
	return z0.Add(z1.Sub(z0).Mul(Complex{Re: t}))
}

func round3(x float64) float64 {
	r := math.Round(x*1000) / 1000
	if r == 0 {
		// drop negative zero
		return 0
	}
	return r
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func (z Complex) String() string {
	a, b := round3(z.Re), round3(z.Im)

	switch {
	case b == 0:
		return formatFloat(a)
	case a == 0:
		return formatFloat(b) + "i"
	case b < 0:
		return fmt.Sprintf("%s - %si", formatFloat(a), formatFloat(-b))
	default:
		return fmt.Sprintf("%s + %si", formatFloat(a), formatFloat(b))
	}
}

// Parse reads "re,im" or a bare real number.
func Parse(s string) (Complex, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) > 2 {
		return Zero, fmt.Errorf("cnum: cannot parse %q: want re,im", s)
	}

	re, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Zero, fmt.Errorf("cnum: cannot parse %q: %w", s, err)
	}
	if len(parts) == 1 {
		return Complex{Re: re}, nil
	}

	im, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Zero, fmt.Errorf("cnum: cannot parse %q: %w", s, err)
	}
	return Complex{Re: re, Im: im}, nil
}
