// Package anim owns the animation time parameter.
//
// [Driver] advances time by a fixed rate every tick and reverses direction
// at its bounds, giving a ping-pong oscillation. [Smoother] optionally eases
// the derived blend factor with a critically damped spring.
package anim

import "github.com/charmbracelet/harmonica"

const (
	DefaultStart = -1.0
	DefaultRate  = 0.05
	DefaultLower = -1.0
	DefaultUpper = 2.0
)

type Driver struct {
	Time  float64
	Sign  float64
	Rate  float64
	Lower float64
	Upper float64
}

func NewDriver(start, rate, lower, upper float64) *Driver {
	return &Driver{Time: start, Sign: 1, Rate: rate, Lower: lower, Upper: upper}
}

func DefaultDriver() *Driver {
	return NewDriver(DefaultStart, DefaultRate, DefaultLower, DefaultUpper)
}

// Tick advances time one step. Time stays within
// [Lower-Rate, Upper+Rate].
func (d *Driver) Tick() {
	d.Time += d.Rate * d.Sign
	if d.Time >= d.Upper {
		d.Sign = -1
	}
	if d.Time < d.Lower {
		d.Sign = 1
	}
}

// Blend is the morph factor derived from time, clamped to [0, 1].
func (d *Driver) Blend() float64 {
	switch {
	case d.Time < 0:
		return 0
	case d.Time > 1:
		return 1
	default:
		return d.Time
	}
}

// Reset restores the start time and forward direction.
func (d *Driver) Reset(start float64) {
	d.Time = start
	d.Sign = 1
}

// Smoother follows a target value with a spring so the morph eases in and
// out instead of moving linearly.
type Smoother struct {
	spring   harmonica.Spring
	pos, vel float64
}

func NewSmoother(fps int, frequency, damping float64) *Smoother {
	return &Smoother{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Step moves one frame toward target and returns the new position.
func (s *Smoother) Step(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

func (s *Smoother) Value() float64 { return s.pos }
