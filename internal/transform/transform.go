// Package transform defines pure maps of the complex plane and a registry
// that builds them by name.
package transform

import (
	"math"

	"github.com/san-kum/cplane/internal/cnum"
)

// Func maps z to its image. t is the animation time; maps that do not
// animate ignore it.
type Func func(z cnum.Complex, t float64) cnum.Complex

func Identity(z cnum.Complex, _ float64) cnum.Complex { return z }

// Static lifts a time-independent map into a Func.
func Static(fn func(cnum.Complex) cnum.Complex) Func {
	return func(z cnum.Complex, _ float64) cnum.Complex { return fn(z) }
}

// Multiply returns z ↦ c·z.
func Multiply(c cnum.Complex) Func {
	return func(z cnum.Complex, _ float64) cnum.Complex { return z.Mul(c) }
}

// Power returns z ↦ z^w.
func Power(w cnum.Complex) Func {
	return func(z cnum.Complex, _ float64) cnum.Complex { return z.Pow(w) }
}

// Exp returns e^z.
func Exp(z cnum.Complex) cnum.Complex {
	return cnum.New(math.E, 0).Pow(z)
}

// Mobius returns z ↦ (az+b)/(cz+d). The pole at z = -d/c maps to NaN/Inf.
func Mobius(a, b, c, d cnum.Complex) Func {
	return func(z cnum.Complex, _ float64) cnum.Complex {
		return z.Mul(a).Add(b).Div(z.Mul(c).Add(d))
	}
}

// Compose applies fns left to right.
func Compose(fns ...Func) Func {
	return func(z cnum.Complex, t float64) cnum.Complex {
		for _, fn := range fns {
			z = fn(z, t)
		}
		return z
	}
}

// Clamp01 limits a blend factor to [0, 1].
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(t, 1))
}

// Morph returns lerp(z, fn(z, t), clamp(blend, 0, 1)). At blend 0 it is z
// itself, even where fn(z) is not finite.
func Morph(fn Func, z cnum.Complex, t, blend float64) cnum.Complex {
	blend = Clamp01(blend)
	if blend == 0 {
		return z
	}
	return cnum.Lerp(z, fn(z, t), blend)
}
