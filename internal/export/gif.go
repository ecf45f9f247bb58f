package export

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"os"

	"golang.org/x/image/draw"
)

var ErrNoFrames = errors.New("no frames recorded")

// Recorder collects frames for an animated GIF. Frames are quantised to the
// Plan 9 palette with Floyd-Steinberg dithering as they arrive.
type Recorder struct {
	// Delay between frames in hundredths of a second.
	Delay int
	// Limit caps the number of frames kept; zero keeps all.
	Limit int

	frames []*image.Paletted
}

// NewRecorder returns a recorder whose frame delay matches fps.
func NewRecorder(fps int) *Recorder {
	delay := 100 / max(fps, 1)
	return &Recorder{Delay: max(delay, 2)}
}

func (r *Recorder) Add(img image.Image) error {
	if r.Limit > 0 && len(r.frames) >= r.Limit {
		return nil
	}
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	r.frames = append(r.frames, p)
	return nil
}

func (r *Recorder) Len() int { return len(r.frames) }

func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.Delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (r *Recorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
