package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"

	"github.com/san-kum/asciistage/internal/render"
)

// Recorder collects frames for an animated GIF.
type Recorder struct {
	frames []*image.Paletted
	delay  int
}

// NewRecorder sets the per-frame delay from fps, in hundredths of a second.
func NewRecorder(fps int) *Recorder {
	delay := 2
	if fps > 0 {
		delay = max(2, 100/fps)
	}
	return &Recorder{frames: make([]*image.Paletted, 0), delay: delay}
}

func (r *Recorder) Len() int   { return len(r.frames) }
func (r *Recorder) Delay() int { return r.delay }

// Capture quantises img to the Plan 9 palette with dithering.
func (r *Recorder) Capture(img image.Image) {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	r.frames = append(r.frames, p)
}

// CaptureTerm rasterises a terminal surface and captures it.
func (r *Recorder) CaptureTerm(s *render.TermSurface) {
	r.Capture(RasterizeTerm(s).Image())
}

func (r *Recorder) Reset() { r.frames = r.frames[:0] }

func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return render.ErrEmptyRecording
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return render.ErrEmptyRecording
	}
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

// RasterizeTerm paints every cell of a terminal surface onto an image
// surface of the same layout size.
func RasterizeTerm(s *render.TermSurface) *render.ImageSurface {
	w, h := s.Size()
	img := render.NewImageSurface(w, h, 1, nil)
	img.Fill(s.Background())
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			r, fg := s.At(col, row)
			if r == 0 || r == ' ' {
				continue
			}
			img.Text(float64(col)*s.CellW, float64(row)*s.CellH, string(r), render.TextStyle{Color: fg, Size: s.CellH})
		}
	}
	return img
}
