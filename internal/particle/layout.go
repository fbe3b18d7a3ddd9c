package particle

import "github.com/san-kum/asciistage/internal/fonts"

// PlacedGlyph is a rune with its x offset from the start of the line.
type PlacedGlyph struct {
	Rune   rune
	Offset float64
}

// Layout is the measured shape of a text line.
type Layout struct {
	Glyphs []PlacedGlyph
	Width  float64
	Height float64
}

// LayoutText measures text rune by rune at size.
func LayoutText(text string, size float64, m fonts.Measurer) Layout {
	l := Layout{Height: size}
	for _, r := range text {
		l.Glyphs = append(l.Glyphs, PlacedGlyph{Rune: r, Offset: l.Width})
		l.Width += m.Advance(r, size)
	}
	return l
}

// FitSize shrinks size until text fits maxWidth, trying at most iters
// times. The last size is returned even if the text still overflows.
func FitSize(text string, size, maxWidth, minSize float64, iters int, m fonts.Measurer) float64 {
	if maxWidth <= 0 {
		return size
	}
	for i := 0; i < iters; i++ {
		w := fonts.Width(m, text, size)
		if w <= maxWidth || w == 0 {
			break
		}
		next := size * maxWidth / w
		if next < minSize {
			next = minSize
		}
		if next == size {
			break
		}
		size = next
	}
	return size
}
