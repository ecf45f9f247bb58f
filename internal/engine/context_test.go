package engine_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cplane/internal/anim"
	"github.com/san-kum/cplane/internal/config"
	"github.com/san-kum/cplane/internal/engine"
	"github.com/san-kum/cplane/internal/render"
	"github.com/san-kum/cplane/internal/surface"
	"github.com/san-kum/cplane/internal/transform"
)

// gatedSurface reports not ready until opened.
type gatedSurface struct {
	*surface.RGBA
	open bool
}

func (g *gatedSurface) Ready() bool { return g.open }

var _ = Describe("Context", func() {
	var (
		cfg *config.Config
		reg *transform.Registry
		s   *surface.RGBA
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Width, cfg.Height = 120, 120
		reg = transform.NewRegistry()
		s = surface.NewRGBA(cfg.Width, cfg.Height)
	})

	Describe("Build", func() {
		It("rejects an invalid configuration", func() {
			cfg.HalfExtent = 0
			_, err := engine.Build(cfg, s, reg)
			Expect(errors.Is(err, config.ErrInvalidConfig)).To(BeTrue())
		})

		It("rejects an unknown transform", func() {
			cfg.Transform = "warp-drive"
			_, err := engine.Build(cfg, s, reg)
			Expect(errors.Is(err, transform.ErrUnknown)).To(BeTrue())
		})

		It("requires a surface", func() {
			_, err := engine.Build(cfg, nil, reg)
			Expect(err).To(MatchError(engine.ErrNoSurface))
		})

		It("reports a missing source image", func() {
			cfg.Mode = config.ModeRaster
			cfg.Image = "does-not-exist.png"
			_, err := engine.Build(cfg, s, reg)
			Expect(err).To(HaveOccurred())
		})

		It("picks the strategy from the mode", func() {
			c, err := engine.Build(cfg, s, reg)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Strategy).To(BeAssignableToTypeOf(&render.VectorStrategy{}))

			cfg.Mode = config.ModeRaster
			c, err = engine.Build(cfg, s, reg)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Strategy).To(BeAssignableToTypeOf(&render.RasterStrategy{}))
		})

		It("colours the scene from the theme", func() {
			cfg.Theme = "ocean"
			c, err := engine.Build(cfg, s, reg)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Strategy.(*render.VectorStrategy).Palette).To(Equal(render.Palettes["ocean"]))

			c.Frame()
			Expect(s.Image().RGBAAt(5, 5)).To(Equal(render.Palettes["ocean"].Background))
		})
	})

	Describe("Frame", func() {
		It("renders with the current time and then ticks", func() {
			c, err := engine.Build(cfg, s, reg)
			Expect(err).NotTo(HaveOccurred())

			f, ok := c.Frame()
			Expect(ok).To(BeTrue())
			Expect(f.Time).To(Equal(-1.0))
			Expect(f.Blend).To(Equal(0.0))
			Expect(c.Driver.Time).To(BeNumerically("~", -0.95, 1e-12))

			frames, skipped := c.Stats()
			Expect(frames).To(Equal(1))
			Expect(skipped).To(Equal(0))
		})

		It("restarts from the configured start time", func() {
			cfg.Animation.Start = 0.5
			c, err := engine.Build(cfg, s, reg)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 40; i++ {
				c.Frame()
			}
			Expect(c.Driver.Time).NotTo(Equal(0.5))

			c.Restart()
			Expect(c.Driver.Time).To(Equal(0.5))
			Expect(c.Driver.Sign).To(Equal(1.0))

			f, ok := c.Frame()
			Expect(ok).To(BeTrue())
			Expect(f.Time).To(Equal(0.5))
		})

		It("skips the tick while the surface is not ready", func() {
			g := &gatedSurface{RGBA: s}
			c, err := engine.Build(cfg, g, reg)
			Expect(err).NotTo(HaveOccurred())

			_, ok := c.Frame()
			Expect(ok).To(BeFalse())
			Expect(c.Driver.Time).To(Equal(-1.0))

			g.open = true
			_, ok = c.Frame()
			Expect(ok).To(BeTrue())

			frames, skipped := c.Stats()
			Expect(frames).To(Equal(1))
			Expect(skipped).To(Equal(1))
		})

		It("eases the blend factor when smoothing is enabled", func() {
			cfg.Animation.Start = 1
			cfg.Animation.Smooth = true
			c, err := engine.Build(cfg, s, reg)
			Expect(err).NotTo(HaveOccurred())

			f, _ := c.Frame()
			Expect(f.Blend).To(BeNumerically(">", 0))
			Expect(f.Blend).To(BeNumerically("<", 1))
		})

		It("warps raster frames with the eased blend factor", func() {
			cfg.Mode = config.ModeRaster
			cfg.Transform = "square"
			cfg.Animation.Start = 1

			plain, err := engine.Build(cfg, s, reg)
			Expect(err).NotTo(HaveOccurred())
			plain.Frame()
			sharp := append([]uint8(nil), s.Image().Pix...)

			cfg.Animation.Smooth = true
			eased := surface.NewRGBA(cfg.Width, cfg.Height)
			c, err := engine.Build(cfg, eased, reg)
			Expect(err).NotTo(HaveOccurred())
			f, _ := c.Frame()
			Expect(f.Blend).To(BeNumerically("<", 0.5))
			Expect(eased.Image().Pix).NotTo(Equal(sharp))
		})

		It("keeps the driver within its bounds over many frames", func() {
			c, err := engine.New(s, render.NewVectorStrategy(mustViewport(120), 0.1), anim.DefaultDriver())
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 300; i++ {
				c.Frame()
				Expect(c.Driver.Time).To(BeNumerically(">=", -1.05-1e-9))
				Expect(c.Driver.Time).To(BeNumerically("<=", 2.05+1e-9))
			}
		})

		It("reproduces the grid under the identity map in raster mode", func() {
			cfg.Mode = config.ModeRaster
			cfg.Transform = "identity"
			c, err := engine.Build(cfg, s, reg)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 3; i++ {
				c.Frame()
			}
			r := c.Strategy.(*render.RasterStrategy)
			Expect(s.Image().Pix).To(Equal(r.Source().Pix))
		})
	})

	Describe("Run", func() {
		It("stops after the frame limit", func() {
			c, err := engine.Build(cfg, s, reg, engine.WithInterval(time.Millisecond))
			Expect(err).NotTo(HaveOccurred())

			var seen []int
			err = c.Run(context.Background(), 5, func(n int, _ render.Frame) error {
				seen = append(seen, n)
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(seen).To(Equal([]int{0, 1, 2, 3, 4}))
		})

		It("ends cleanly on ErrStop", func() {
			c, err := engine.Build(cfg, s, reg, engine.WithInterval(time.Millisecond))
			Expect(err).NotTo(HaveOccurred())

			err = c.Run(context.Background(), 0, func(n int, _ render.Frame) error {
				if n == 2 {
					return engine.ErrStop
				}
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			frames, _ := c.Stats()
			Expect(frames).To(Equal(3))
		})

		It("clamps a zero interval to the minimum", func() {
			c, err := engine.Build(cfg, s, reg, engine.WithInterval(0))
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Interval).To(Equal(engine.MinInterval))

			err = c.Run(context.Background(), 2, nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns the context error on cancellation", func() {
			c, err := engine.Build(cfg, s, reg, engine.WithInterval(time.Millisecond))
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()
			err = c.Run(ctx, 0, nil)
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})
	})
})
