package config

import (
	"math"
	"sort"

	"github.com/san-kum/cplane/internal/cnum"
	"github.com/san-kum/cplane/internal/transform"
)

var (
	transformI = cnum.I
	twoPi      = 2 * math.Pi
)

func preset(mutate func(c *Config)) *Config {
	c := DefaultConfig()
	mutate(c)
	return c
}

// Presets are named scenes; "exp" is the default scene.
var Presets = map[string]*Config{
	"exp": DefaultConfig(),
	"cis": preset(func(c *Config) {
		c.Transform = "cis"
		c.Curve = CurveConfig{ToRe: twoPi}
	}),
	"spiral": preset(func(c *Config) {
		c.Transform = "power"
		c.Params.Exponent = cnum.New(1, 1)
		c.Curve = CurveConfig{FromRe: 0.05, ToRe: 2}
	}),
	"rotate": preset(func(c *Config) {
		c.Transform = "rotate"
		c.GridTransform = ""
		c.Curve = CurveConfig{FromRe: -2, FromIm: -2, ToRe: 2, ToIm: 2}
	}),
	"mobius": preset(func(c *Config) {
		c.Transform = "mobius"
		c.Params = transform.Params{
			A: cnum.One, B: cnum.New(0, 0.5),
			C: cnum.New(0.3, 0), D: cnum.One,
		}
		c.Curve = CurveConfig{FromRe: -2.5, FromIm: 1, ToRe: 2.5, ToIm: 1}
	}),
	"warp": preset(func(c *Config) {
		c.Mode = ModeRaster
		c.Transform = "power"
		c.Params.Exponent = cnum.New(1, 0.3)
		c.Width, c.Height = 320, 320
	}),
	"square": preset(func(c *Config) {
		c.Mode = ModeRaster
		c.Transform = "square"
		c.HalfExtent = 2
		c.Width, c.Height = 320, 320
	}),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
