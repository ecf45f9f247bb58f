package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/cplane/internal/anim"
	"github.com/san-kum/cplane/internal/transform"
)

const (
	DefaultWidth      = 600
	DefaultHeight     = 600
	DefaultHalfExtent = 3.0
	DefaultStep       = 0.01
	DefaultFPS        = 30
	DefaultFrames     = 120
	MaxFPS            = 1000
)

const (
	ModeVector = "vector"
	ModeRaster = "raster"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Mode       string  `yaml:"mode"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	HalfExtent float64 `yaml:"half_extent"`
	Step       float64 `yaml:"step"`
	FPS        int     `yaml:"fps"`

	Transform string           `yaml:"transform"`
	Params    transform.Params `yaml:"params"`
	// GridTransform is applied to the vector grid lines; empty draws the
	// plain grid.
	GridTransform string `yaml:"grid_transform"`

	Animation AnimationConfig `yaml:"animation"`
	Curve     CurveConfig     `yaml:"curve"`

	// Image replaces the raster grid with a picture.
	Image string `yaml:"image"`

	Output OutputConfig `yaml:"output"`
	Theme  string       `yaml:"theme"`
}

type AnimationConfig struct {
	Start  float64 `yaml:"start"`
	Rate   float64 `yaml:"rate"`
	Lower  float64 `yaml:"lower"`
	Upper  float64 `yaml:"upper"`
	Smooth bool    `yaml:"smooth"`
}

type CurveConfig struct {
	FromRe float64 `yaml:"from_re"`
	FromIm float64 `yaml:"from_im"`
	ToRe   float64 `yaml:"to_re"`
	ToIm   float64 `yaml:"to_im"`
}

type OutputConfig struct {
	Path   string `yaml:"path"`
	Frames int    `yaml:"frames"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:          ModeVector,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		HalfExtent:    DefaultHalfExtent,
		Step:          DefaultStep,
		FPS:           DefaultFPS,
		Transform:     "power",
		Params:        transform.Params{Exponent: transformI},
		GridTransform: "rotate",
		Animation: AnimationConfig{
			Start: anim.DefaultStart,
			Rate:  anim.DefaultRate,
			Lower: anim.DefaultLower,
			Upper: anim.DefaultUpper,
		},
		Curve: CurveConfig{ToRe: twoPi},
		Output: OutputConfig{
			Path:   "cplane.gif",
			Frames: DefaultFrames,
		},
		Theme: "retro",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Mode != ModeVector && c.Mode != ModeRaster:
		return fmt.Errorf("%w: mode %q", ErrInvalidConfig, c.Mode)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case !(c.HalfExtent > 0):
		return fmt.Errorf("%w: half_extent %v", ErrInvalidConfig, c.HalfExtent)
	case !(c.Step > 0) || c.Step > 1:
		return fmt.Errorf("%w: step %v", ErrInvalidConfig, c.Step)
	case c.FPS <= 0 || c.FPS > MaxFPS:
		return fmt.Errorf("%w: fps %d not in [1, %d]", ErrInvalidConfig, c.FPS, MaxFPS)
	case !finite(c.Animation.Start, c.Animation.Rate, c.Animation.Lower, c.Animation.Upper):
		return fmt.Errorf("%w: animation values must be finite", ErrInvalidConfig)
	case !(c.Animation.Rate > 0):
		return fmt.Errorf("%w: animation rate %v", ErrInvalidConfig, c.Animation.Rate)
	case !(c.Animation.Lower < c.Animation.Upper):
		return fmt.Errorf("%w: animation bounds [%v, %v]", ErrInvalidConfig, c.Animation.Lower, c.Animation.Upper)
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
