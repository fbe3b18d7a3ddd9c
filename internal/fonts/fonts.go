package fonts

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// monoAdvance is the advance of one terminal column as a share of the font
// size, used until real metrics are available.
const monoAdvance = 0.6

// Measurer reports the horizontal advance of a rune at a font size.
type Measurer interface {
	Advance(r rune, size float64) float64
}

// Width sums the advances of every rune in s.
func Width(m Measurer, s string, size float64) float64 {
	w := 0.0
	for _, r := range s {
		w += m.Advance(r, size)
	}
	return w
}

// CellMeasurer approximates metrics from terminal column widths.
type CellMeasurer struct{}

func (CellMeasurer) Advance(r rune, size float64) float64 {
	return float64(runewidth.RuneWidth(r)) * size * monoAdvance
}

// GridMeasurer measures in whole terminal columns of CellW layout units,
// whatever the font size, so text lines up with a cell grid.
type GridMeasurer struct {
	CellW float64
}

func (g GridMeasurer) Advance(r rune, _ float64) float64 {
	return float64(runewidth.RuneWidth(r)) * g.CellW
}

// FaceSource hands out font faces by pixel size.
type FaceSource interface {
	Face(size float64) font.Face
}

// Basic is the built-in bitmap face, available before any font has loaded.
type Basic struct{}

func (Basic) Face(float64) font.Face { return basicfont.Face7x13 }

// Faces caches opentype faces of one parsed font, keyed by rounded size.
// Not safe for concurrent use.
type Faces struct {
	font  *opentype.Font
	cache map[int]font.Face
}

// LoadMono parses the embedded Go Mono font.
func LoadMono() (*Faces, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse go mono: %w", err)
	}
	return &Faces{font: f, cache: make(map[int]font.Face)}, nil
}

func (f *Faces) Face(size float64) font.Face {
	key := int(math.Round(size))
	if key < 1 {
		key = 1
	}
	if face, ok := f.cache[key]; ok {
		return face
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(key),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	f.cache[key] = face
	return face
}

// Advance uses the face metrics and falls back to column widths for runes
// the font lacks.
func (f *Faces) Advance(r rune, size float64) float64 {
	adv, ok := f.Face(size).GlyphAdvance(r)
	if !ok {
		return CellMeasurer{}.Advance(r, size)
	}
	return float64(adv) / 64
}
