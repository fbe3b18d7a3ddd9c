package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/san-kum/asciistage/internal/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// MaxDPR caps the device pixel ratio of image surfaces.
const MaxDPR = 2.0

// ClampDPR limits ratio to (0, MaxDPR], treating non-positive values as 1.
func ClampDPR(ratio float64) float64 {
	if ratio <= 0 || math.IsNaN(ratio) {
		return 1
	}
	return math.Min(ratio, MaxDPR)
}

// ImageSurface draws into an RGBA image sized w*dpr x h*dpr. Callers work
// in layout units and the surface scales by dpr.
type ImageSurface struct {
	img   *image.RGBA
	w, h  float64
	dpr   float64
	faces fonts.FaceSource
}

func NewImageSurface(w, h, dpr float64, faces fonts.FaceSource) *ImageSurface {
	dpr = ClampDPR(dpr)
	if faces == nil {
		faces = fonts.Basic{}
	}
	pw, ph := int(math.Floor(w*dpr)), int(math.Floor(h*dpr))
	return &ImageSurface{
		img:   image.NewRGBA(image.Rect(0, 0, max(pw, 1), max(ph, 1))),
		w:     w,
		h:     h,
		dpr:   dpr,
		faces: faces,
	}
}

func (s *ImageSurface) Size() (float64, float64) { return s.w, s.h }
func (s *ImageSurface) DPR() float64             { return s.dpr }
func (s *ImageSurface) Image() *image.RGBA       { return s.img }

// SetFaces swaps the font source, typically once fonts have loaded.
func (s *ImageSurface) SetFaces(faces fonts.FaceSource) {
	if faces != nil {
		s.faces = faces
	}
}

func (s *ImageSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (s *ImageSurface) Fill(hex string) {
	r, g, b := parseColor(hex).RGB255()
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(color.RGBA{r, g, b, 255}), image.Point{}, draw.Src)
}

func (s *ImageSurface) Text(x, y float64, text string, st TextStyle) {
	size := st.Size
	if size <= 0 {
		size = 12
	}
	face := s.faces.Face(size * s.dpr)
	m := face.Metrics()

	py := fixed.Int26_6(y * s.dpr * 64)
	switch st.Baseline {
	case BaselineMiddle:
		py += (m.Ascent - m.Descent) / 2
	default:
		py += m.Ascent
	}

	r, g, b := parseColor(st.Color).RGB255()
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(color.NRGBA{r, g, b, uint8(math.Round(st.opacity() * 255))}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * s.dpr * 64), Y: py},
	}
	d.DrawString(text)
}
