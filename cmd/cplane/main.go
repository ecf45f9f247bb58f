package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/cplane/internal/cnum"
	"github.com/san-kum/cplane/internal/config"
	"github.com/san-kum/cplane/internal/engine"
	"github.com/san-kum/cplane/internal/export"
	"github.com/san-kum/cplane/internal/gui"
	"github.com/san-kum/cplane/internal/render"
	"github.com/san-kum/cplane/internal/surface"
	"github.com/san-kum/cplane/internal/transform"
	"github.com/san-kum/cplane/internal/viz"
)

var (
	configFile string
	verbose    bool

	// scene overrides
	mode       string
	width      int
	height     int
	halfExtent float64
	step       float64
	frameRate  int
	transformN string
	exponent   string
	theme      string
	imagePath  string
	smooth     bool

	// live
	cols       int
	rows       int
	recordPath string
	maxFrames  int

	// render
	outPath   string
	curvePath string
	frames    int
	realtime  bool
	plot      bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "cplane",
})

func main() {
	rootCmd := &cobra.Command{
		Use:           "cplane",
		Short:         "complex plane transformation visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		Args: cobra.MaximumNArgs(1),
		RunE: runLive,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addSceneFlags(rootCmd)
	addLiveFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "animate in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)
	addLiveFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui [preset]",
		Short: "animate in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	addSceneFlags(guiCmd)

	renderCmd := &cobra.Command{
		Use:   "render [preset]",
		Short: "render frames to a gif, png or svg file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	addSceneFlags(renderCmd)
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (.gif, .png, .svg)")
	renderCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to render")
	renderCmd.Flags().BoolVar(&realtime, "realtime", false, "pace frames at the configured fps")
	renderCmd.Flags().BoolVar(&plot, "plot", false, "plot time and blend after rendering")
	renderCmd.Flags().StringVar(&curvePath, "curve-svg", "", "also write the final curve as an svg path (vector mode)")
	renderCmd.Flags().IntVar(&maxFrames, "max-frames", 0, "cap the frames kept in a gif (0 keeps all)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMODE\tTRANSFORM\tEXTENT")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%g\n", name, p.Mode, p.Transform, p.HalfExtent)
			}
			w.Flush()
		},
	}

	transformsCmd := &cobra.Command{
		Use:   "transforms",
		Short: "list registered transforms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range transform.NewRegistry().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	evalCmd := &cobra.Command{
		Use:   "eval <op> <a> [b]",
		Short: "evaluate a complex operation (add sub mul div pow conj neg mod arg)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := evaluate(args[0], args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, guiCmd, renderCmd, presetsCmd, transformsCmd, evalCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&mode, "mode", config.ModeVector, "render mode (vector, raster)")
	f.IntVar(&width, "width", config.DefaultWidth, "surface width in pixels")
	f.IntVar(&height, "height", config.DefaultHeight, "surface height in pixels")
	f.Float64Var(&halfExtent, "extent", config.DefaultHalfExtent, "half extent of the visible plane")
	f.Float64Var(&step, "step", config.DefaultStep, "tessellation step")
	f.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	f.StringVar(&transformN, "transform", "", "transform name")
	f.StringVar(&exponent, "exponent", "", "exponent for the power transform, as re,im")
	f.StringVar(&theme, "theme", "", "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	f.StringVar(&imagePath, "image", "", "source image for raster mode")
	f.BoolVar(&smooth, "smooth", false, "ease the blend factor with a spring")
}

func addLiveFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&cols, "cols", 60, "canvas columns")
	cmd.Flags().IntVar(&rows, "rows", 30, "canvas rows")
	cmd.Flags().StringVar(&recordPath, "record", "", "record frames to a .gif, or the last frame to an .svg")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 0, "cap the frames kept in a recording (0 keeps all)")
}

// resolveConfig starts from the named preset (default "exp"), replaces it
// with --config when given and applies the flags set on the command line.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, string, error) {
	name := "exp"
	if len(args) > 0 {
		name = args[0]
	}
	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		name = strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile))
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("extent") {
		cfg.HalfExtent = halfExtent
	}
	if flags.Changed("step") {
		cfg.Step = step
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("transform") {
		cfg.Transform = transformN
	}
	if flags.Changed("exponent") {
		w, err := cnum.Parse(exponent)
		if err != nil {
			return nil, "", fmt.Errorf("exponent: %w", err)
		}
		cfg.Params.Exponent = w
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("image") {
		cfg.Image = imagePath
	}
	if flags.Changed("smooth") {
		cfg.Animation.Smooth = smooth
	}
	if flags.Changed("frames") {
		cfg.Output.Frames = frames
	}
	if flags.Changed("out") {
		cfg.Output.Path = outPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	if cfg.Theme != "" && !slices.Contains(render.PaletteNames(), cfg.Theme) {
		logger.Warn("unknown theme, using retro", "theme", cfg.Theme)
	}
	return cfg, name, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	if recordPath != "" {
		if err := checkRecordFormat(recordPath); err != nil {
			return err
		}
	}

	canvas := viz.NewCanvas(cols, rows)
	ctx, err := engine.Build(cfg, canvas, transform.NewRegistry())
	if err != nil {
		return err
	}

	opts := []viz.ModelOption{viz.WithTheme(cfg.Theme)}
	var rec *export.Recorder
	if recordPath != "" && !isSVG(recordPath) {
		rec = newRecorder(cfg.FPS, maxFrames)
		opts = append(opts, viz.WithCapture(func(img *image.RGBA) error { return rec.Add(img) }))
	}

	p := tea.NewProgram(viz.NewModel(ctx, canvas, name, opts...), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(viz.Model); ok && m.Err() != nil {
		return m.Err()
	}

	if recordPath != "" {
		return saveRecording(recordPath, canvas, rec)
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	s := surface.NewRGBA(cfg.Width, cfg.Height)
	ctx, err := engine.Build(cfg, s, transform.NewRegistry(), engine.WithLogger(logger))
	if err != nil {
		return err
	}
	gui.NewApp(ctx, s, "cplane - "+name, cfg.FPS).Run()
	frames, skipped := ctx.Stats()
	logger.Debug("window closed", "frames", frames, "skipped", skipped)
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	out := cfg.Output.Path
	if out == "" {
		out = name + ".gif"
	}
	if curvePath != "" && cfg.Mode != config.ModeVector {
		return fmt.Errorf("--curve-svg needs %s mode, got %s", config.ModeVector, cfg.Mode)
	}

	var (
		target render.Surface
		save   func() error
		rec    *export.Recorder
	)
	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".gif":
		s := surface.NewRGBA(cfg.Width, cfg.Height)
		rec = newRecorder(cfg.FPS, maxFrames)
		target = s
		save = func() error { return rec.Save(out) }
	case ".png":
		s := surface.NewRGBA(cfg.Width, cfg.Height)
		target = s
		save = func() error { return export.SavePNG(out, s.Image()) }
	case ".svg":
		s := export.NewSVG(cfg.Width, cfg.Height)
		target = s
		save = func() error { return writeFile(out, s) }
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	ctx, err := engine.Build(cfg, target, transform.NewRegistry(), engine.WithLogger(logger))
	if err != nil {
		return err
	}

	times := make([]float64, 0, cfg.Output.Frames)
	blends := make([]float64, 0, cfg.Output.Frames)
	onFrame := func(n int, f render.Frame) error {
		times = append(times, f.Time)
		blends = append(blends, f.Blend)
		if rec != nil {
			return rec.Add(target.Image())
		}
		return nil
	}

	logger.Info("rendering", "preset", name, "mode", cfg.Mode, "frames", cfg.Output.Frames, "out", out)
	if realtime {
		sig, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := ctx.Run(sig, cfg.Output.Frames, onFrame); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	} else {
		for n := 0; n < cfg.Output.Frames; n++ {
			f, ok := ctx.Frame()
			if !ok {
				continue
			}
			if err := onFrame(n, f); err != nil {
				return err
			}
		}
	}

	if err := save(); err != nil {
		return err
	}
	logger.Info("saved", "path", out, "frames", len(times))

	if curvePath != "" {
		if err := saveCurveSVG(curvePath, ctx.Strategy, ctx.Last()); err != nil {
			return err
		}
		logger.Info("saved curve", "path", curvePath)
	}

	if plot && len(times) > 1 {
		graph := asciigraph.PlotMany([][]float64{times, blends},
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.SeriesColors(asciigraph.Green, asciigraph.Blue),
			asciigraph.Caption("time (green) / blend (blue)"))
		fmt.Fprintln(cmd.OutOrStdout(), graph)
	}
	return nil
}
