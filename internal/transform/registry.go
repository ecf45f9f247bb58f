package transform

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/cplane/internal/cnum"
)

var ErrUnknown = errors.New("transform: unknown transform")

// Params carries the coefficients a named transform may use.
type Params struct {
	Exponent cnum.Complex `yaml:"exponent"`
	A        cnum.Complex `yaml:"a"`
	B        cnum.Complex `yaml:"b"`
	C        cnum.Complex `yaml:"c"`
	D        cnum.Complex `yaml:"d"`
}

type Registry struct {
	builders map[string]func(Params) Func
}

func NewRegistry() *Registry {
	r := &Registry{builders: make(map[string]func(Params) Func)}

	r.Register("identity", func(Params) Func { return Identity })
	r.Register("rotate", func(Params) Func { return Multiply(cnum.I) })
	r.Register("square", func(Params) Func {
		return Static(func(z cnum.Complex) cnum.Complex { return z.Mul(z) })
	})
	r.Register("power", func(p Params) Func { return Power(p.Exponent) })
	r.Register("mobius", func(p Params) Func { return Mobius(p.A, p.B, p.C, p.D) })
	r.Register("exp", func(Params) Func { return Static(Exp) })
	r.Register("cis", func(Params) Func {
		return Static(func(z cnum.Complex) cnum.Complex { return Exp(z.Mul(cnum.I)) })
	})
	r.Register("inverse", func(Params) Func {
		return Static(func(z cnum.Complex) cnum.Complex { return cnum.One.Div(z) })
	})

	return r
}

// Register adds or replaces a named transform.
func (r *Registry) Register(name string, build func(Params) Func) {
	r.builders[name] = build
}

func (r *Registry) Get(name string, p Params) (Func, error) {
	build, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return build(p), nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
