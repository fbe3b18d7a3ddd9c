package sim

import (
	"math"

	"github.com/san-kum/asciistage/internal/render"
)

// PointerSweep moves the pointer along a figure-eight over the surface so
// headless runs exercise the repulsion field.
type PointerSweep struct {
	Period float64
}

func (s PointerSweep) OnFrame(p *render.Player, _ int, t float64) {
	period := s.Period
	if period <= 0 {
		period = 4
	}
	w, h := p.Surface().Size()
	phase := 2 * math.Pi * t / period
	p.SetPointer(w/2+w*0.35*math.Cos(phase), h/2+h*0.3*math.Sin(2*phase))
}

// HoverAfter turns hover on once the virtual clock reaches At seconds.
type HoverAfter struct {
	At float64
}

func (h HoverAfter) OnFrame(p *render.Player, _ int, t float64) {
	p.SetHover(t >= h.At)
}
