package render

import (
	"math/rand"

	"github.com/san-kum/asciistage/internal/particle"
)

const heroBackground = "#090a0e"

// Hero renders the glyph-wash particle field.
type Hero struct {
	field *particle.WashField
}

func NewHero(opts particle.WashOptions, rng *rand.Rand) *Hero {
	return &Hero{field: particle.NewWashField(opts, rng)}
}

func (h *Hero) Field() *particle.WashField { return h.field }

func (h *Hero) Resize(w, hgt float64)   { h.field.Resize(w, hgt) }
func (h *Hero) SetPointer(x, y float64) { h.field.SetPointer(x, y) }
func (h *Hero) ClearPointer()           { h.field.ClearPointer() }

// Draw moves the field one step per frame regardless of dt.
func (h *Hero) Draw(s Surface, _, _ float64) {
	s.Clear()
	s.Fill(heroBackground)
	h.field.Step()
	for _, p := range h.field.Particles {
		s.Text(p.X, p.Y, string(p.Rune), TextStyle{
			Color:    p.Color,
			Alpha:    p.Alpha,
			Size:     p.Size,
			Baseline: BaselineMiddle,
		})
	}
}
