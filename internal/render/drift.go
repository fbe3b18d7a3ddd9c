package render

import (
	"math/rand"

	"github.com/san-kum/asciistage/internal/fonts"
	"github.com/san-kum/asciistage/internal/logging"
	"github.com/san-kum/asciistage/internal/particle"
)

const driftBackground = "#0b0c10"

// Drift renders Brownian text lines.
type Drift struct {
	field       *particle.DriftField
	measurer    fonts.Measurer
	cells       fonts.Measurer
	fontsLoaded bool
}

// NewDrift starts with column-width metrics until FontsReady is called.
func NewDrift(opts particle.DriftOptions, rng *rand.Rand) *Drift {
	return &Drift{
		field:    particle.NewDriftField(opts, rng),
		measurer: fonts.CellMeasurer{},
	}
}

func (d *Drift) Field() *particle.DriftField { return d.field }

// SetCellMetrics switches layout to whole cells while the surface is a
// cell grid. Font metrics are ignored there.
func (d *Drift) SetCellMetrics(m fonts.Measurer) { d.cells = m }

func (d *Drift) metrics() fonts.Measurer {
	if d.cells != nil {
		return d.cells
	}
	return d.measurer
}

func (d *Drift) Resize(w, h float64) {
	d.field.Rebuild(w, h, d.metrics())
}

// FontsReady re-lays-out the lines with real metrics. Only the first call
// has an effect.
func (d *Drift) FontsReady(m fonts.Measurer) {
	if d.fontsLoaded || m == nil {
		return
	}
	d.fontsLoaded = true
	d.measurer = m
	if d.cells != nil {
		return
	}
	d.field.Relayout(m)
	logging.Logger().Debug("drift relayout with loaded fonts", "lines", len(d.field.Lines))
}

func (d *Drift) Draw(s Surface, dt, _ float64) {
	s.Clear()
	s.Fill(driftBackground)
	d.field.Step(dt)
	for _, l := range d.field.Lines {
		st := TextStyle{Color: l.Phrase.Color, Alpha: l.Phrase.Alpha, Size: l.Size}
		if d.cells != nil {
			s.Text(l.X, l.Y, l.Phrase.Text, st)
			continue
		}
		for _, g := range l.Glyphs {
			s.Text(l.X+g.Offset, l.Y, string(g.Rune), st)
		}
	}
}
