package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/cplane/internal/anim"
	"github.com/san-kum/cplane/internal/render"
)

type Context struct {
	Surface  render.Surface
	Strategy render.Strategy
	Driver   *anim.Driver
	Smoother *anim.Smoother
	Interval time.Duration
	Logger   *log.Logger

	start   float64
	frames  int
	skipped int
	last    render.Frame
}

// MinInterval is the shortest tick period Run accepts.
const MinInterval = time.Millisecond

type Option func(*Context)

func WithSmoother(s *anim.Smoother) Option {
	return func(c *Context) { c.Smoother = s }
}

func WithInterval(d time.Duration) Option {
	return func(c *Context) { c.Interval = d }
}

func WithLogger(l *log.Logger) Option {
	return func(c *Context) { c.Logger = l }
}

// New initializes the strategy against the surface.
func New(s render.Surface, st render.Strategy, d *anim.Driver, opts ...Option) (*Context, error) {
	if s == nil {
		return nil, ErrNoSurface
	}
	if st == nil {
		return nil, ErrNoStrategy
	}
	if d == nil {
		d = anim.DefaultDriver()
	}

	c := &Context{
		Surface:  s,
		Strategy: st,
		Driver:   d,
		Interval: time.Second / 30,
		Logger:   log.New(io.Discard),
		start:    d.Time,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Interval = max(c.Interval, MinInterval)

	if err := st.Init(s); err != nil {
		return nil, fmt.Errorf("init strategy: %w", err)
	}
	return c, nil
}

// Frame renders one pass with the current time and then advances the
// driver. It reports false, leaving time untouched, when the surface is
// not ready.
func (c *Context) Frame() (render.Frame, bool) {
	if !c.Surface.Ready() {
		c.skipped++
		c.Logger.Debug("skipped frame", "reason", "surface not ready", "skipped", c.skipped)
		return render.Frame{}, false
	}

	f := render.Frame{Time: c.Driver.Time, Blend: c.Driver.Blend()}
	if c.Smoother != nil {
		f.Blend = c.Smoother.Step(f.Blend)
	}

	c.Strategy.Render(c.Surface, f)
	c.Driver.Tick()

	c.frames++
	c.last = f
	return f, true
}

// Restart rewinds the driver to the time it had when the context was
// created. Frame counters are kept.
func (c *Context) Restart() {
	c.Driver.Reset(c.start)
	c.Logger.Debug("restarted", "time", c.start)
}

// Last returns the parameters of the most recent frame.
func (c *Context) Last() render.Frame { return c.last }

func (c *Context) Stats() (frames, skipped int) { return c.frames, c.skipped }

// FrameFunc is called after each rendered frame with its index.
type FrameFunc func(n int, f render.Frame) error

// Run renders one frame per Interval until limit frames have been drawn
// (limit <= 0 runs until ctx is done). Ticks that arrive while a frame is
// being drawn are dropped by the ticker.
func (c *Context) Run(ctx context.Context, limit int, fn FrameFunc) error {
	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	c.Logger.Info("running", "interval", c.Interval, "limit", limit)
	for n := 0; limit <= 0 || n < limit; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			f, ok := c.Frame()
			if !ok {
				continue
			}
			if fn != nil {
				if err := fn(n, f); err != nil {
					if errors.Is(err, ErrStop) {
						return nil
					}
					return err
				}
			}
			n++
		}
	}
	c.Logger.Info("done", "frames", c.frames, "skipped", c.skipped)
	return nil
}
