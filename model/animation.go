package model

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var ErrNoFrames = errors.New("animation has no frames")

var framePalette = color.Palette{colorDead, colorAlive}

// Animation accumulates rendered generations for a GIF file
type Animation struct {
	// Delay between frames in hundredths of a second
	Delay  int
	frames []*image.RGBA
}

// NewAnimation creates an empty animation with the given per-frame delay
func NewAnimation(delay int) *Animation {
	return &Animation{Delay: delay}
}

// Add appends a frame
func (a *Animation) Add(frame *image.RGBA) {
	a.frames = append(a.frames, frame)
}

// Len returns the number of frames collected
func (a *Animation) Len() int {
	return len(a.frames)
}

// Save writes the animation to path. A partially written file is left in place on error.
func (a *Animation) Save(path string) (err error) {
	if len(a.frames) == 0 {
		return errors.Wrapf(ErrNoFrames, "[Save] nothing to write to %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[Save] failed to create file: %+v", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "[Save] failed to close file: %+v", path)
		}
	}()

	return a.Encode(f)
}

// Encode writes the animation as a GIF to w
func (a *Animation) Encode(w io.Writer) error {
	if len(a.frames) == 0 {
		return ErrNoFrames
	}

	bounds := a.frames[0].Bounds()
	for i, frame := range a.frames {
		if frame.Bounds() != bounds {
			return errors.Errorf("[Encode] frame %d is %v, expected %v", i, frame.Bounds(), bounds)
		}
	}

	paletted, err := a.palettise()
	if err != nil {
		return err
	}

	delays := make([]int, len(paletted))
	for i := range delays {
		delays[i] = a.Delay
	}

	if err = gif.EncodeAll(w, &gif.GIF{Image: paletted, Delay: delays}); err != nil {
		return errors.Wrap(err, "[Encode] failed to encode gif")
	}
	return nil
}

// palettise converts every frame to the two-colour palette in parallel
func (a *Animation) palettise() ([]*image.Paletted, error) {
	var (
		eg  errgroup.Group
		out = make([]*image.Paletted, len(a.frames))
	)
	eg.SetLimit(runtime.NumCPU())

	for i, frame := range a.frames {
		eg.Go(func() error {
			p := image.NewPaletted(frame.Bounds(), framePalette)
			draw.Draw(p, p.Bounds(), frame, frame.Bounds().Min, draw.Src)
			out[i] = p
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[palettise] failed to convert frames")
	}
	return out, nil
}
