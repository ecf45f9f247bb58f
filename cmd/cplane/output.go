package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/cplane/internal/export"
	"github.com/san-kum/cplane/internal/render"
	"github.com/san-kum/cplane/internal/viz"
)

// Size of one braille dot in a live svg snapshot.
const svgDotScale = 4.0

func newRecorder(fps, limit int) *export.Recorder {
	rec := export.NewRecorder(fps)
	rec.Limit = limit
	return rec
}

func isSVG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

func checkRecordFormat(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".gif", ".svg":
		return nil
	default:
		return fmt.Errorf("unsupported recording format %q", ext)
	}
}

// saveRecording writes the last canvas of a live session as an svg, or the
// recorded frames as a gif.
func saveRecording(path string, canvas *viz.Canvas, rec *export.Recorder) error {
	if isSVG(path) {
		if err := writeFile(path, strings.NewReader(export.CanvasToSVG(canvas, svgDotScale))); err != nil {
			return err
		}
		logger.Info("saved snapshot", "path", path)
		return nil
	}
	if rec == nil {
		return errors.New("no frames recorded")
	}
	if err := rec.Save(path); err != nil {
		return err
	}
	logger.Info("saved recording", "path", path, "frames", rec.Len())
	return nil
}

// saveCurveSVG writes the animated curve of a vector scene, as drawn in
// frame f, as a single svg path.
func saveCurveSVG(path string, st render.Strategy, f render.Frame) error {
	vs, ok := st.(*render.VectorStrategy)
	if !ok || vs.CurveMap == nil {
		return errors.New("scene has no curve")
	}
	pts := vs.Tessellator().MorphPoints(vs.CurveFrom, vs.CurveTo, vs.CurveMap, f.Time, f.Blend)
	doc := export.PolylineSVG(pts, vs.Viewport, vs.Palette.Curve)
	if doc == "" {
		return errors.New("curve has fewer than two points")
	}
	return writeFile(path, strings.NewReader(doc))
}

func writeFile(path string, src io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := src.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
