package engine

import (
	"fmt"
	"time"

	"github.com/san-kum/cplane/internal/anim"
	"github.com/san-kum/cplane/internal/cnum"
	"github.com/san-kum/cplane/internal/config"
	"github.com/san-kum/cplane/internal/render"
	"github.com/san-kum/cplane/internal/surface"
	"github.com/san-kum/cplane/internal/transform"
	"github.com/san-kum/cplane/internal/viewport"
)

// Build assembles a context from a validated configuration. The viewport
// takes the surface's dimensions, which may differ from cfg.Width and
// cfg.Height for terminal surfaces.
func Build(cfg *config.Config, s render.Surface, reg *transform.Registry, opts ...Option) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrNoSurface
	}

	vp, err := viewport.New(cfg.HalfExtent, s.Width(), s.Height())
	if err != nil {
		return nil, err
	}

	fn, err := reg.Get(cfg.Transform, cfg.Params)
	if err != nil {
		return nil, err
	}

	strategy, err := buildStrategy(cfg, vp, fn, reg)
	if err != nil {
		return nil, err
	}

	a := cfg.Animation
	driver := anim.NewDriver(a.Start, a.Rate, a.Lower, a.Upper)

	base := []Option{WithInterval(time.Second / time.Duration(cfg.FPS))}
	if a.Smooth {
		base = append(base, WithSmoother(anim.NewSmoother(cfg.FPS, 6.0, 1.0)))
	}
	return New(s, strategy, driver, append(base, opts...)...)
}

func buildStrategy(cfg *config.Config, vp viewport.Viewport, fn transform.Func, reg *transform.Registry) (render.Strategy, error) {
	switch cfg.Mode {
	case config.ModeRaster:
		r := render.NewRasterStrategy(vp, fn)
		r.Morph = true
		r.Palette = render.GetPalette(cfg.Theme)
		if cfg.Image != "" {
			img, err := surface.LoadImage(cfg.Image)
			if err != nil {
				return nil, fmt.Errorf("load source image: %w", err)
			}
			r.SetSource(img)
		}
		return r, nil

	default:
		v := render.NewVectorStrategy(vp, cfg.Step)
		v.Palette = render.GetPalette(cfg.Theme)
		v.CurveMap = fn
		v.CurveFrom = cnum.New(cfg.Curve.FromRe, cfg.Curve.FromIm)
		v.CurveTo = cnum.New(cfg.Curve.ToRe, cfg.Curve.ToIm)
		v.GridMap = nil
		if cfg.GridTransform != "" {
			g, err := reg.Get(cfg.GridTransform, cfg.Params)
			if err != nil {
				return nil, err
			}
			v.GridMap = g
		}
		return v, nil
	}
}
