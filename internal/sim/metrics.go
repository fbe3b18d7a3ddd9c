package sim

import (
	"math"

	"github.com/san-kum/asciistage/internal/render"
)

// Progress tracks the vignette's scalar stage progress.
type Progress struct{ value float64 }

func NewProgress() *Progress       { return &Progress{} }
func (p *Progress) Name() string   { return "progress" }
func (p *Progress) Value() float64 { return p.value }
func (p *Progress) Reset()         { p.value = 0 }
func (p *Progress) Observe(r render.Renderer, _ float64) {
	if v, ok := r.(*render.Vignette); ok {
		p.value = v.Animator().Progress()
	}
}

// MeanSpeed is the average wash glyph speed in px per frame.
type MeanSpeed struct{ value float64 }

func NewMeanSpeed() *MeanSpeed      { return &MeanSpeed{} }
func (m *MeanSpeed) Name() string   { return "mean_speed" }
func (m *MeanSpeed) Value() float64 { return m.value }
func (m *MeanSpeed) Reset()         { m.value = 0 }
func (m *MeanSpeed) Observe(r render.Renderer, _ float64) {
	h, ok := r.(*render.Hero)
	if !ok {
		return
	}
	ps := h.Field().Particles
	if len(ps) == 0 {
		m.value = 0
		return
	}
	sum := 0.0
	for _, p := range ps {
		sum += math.Hypot(p.VX, p.VY)
	}
	m.value = sum / float64(len(ps))
}

// VelocityVariance is the variance of every drift line velocity component.
type VelocityVariance struct{ value float64 }

func NewVelocityVariance() *VelocityVariance { return &VelocityVariance{} }
func (v *VelocityVariance) Name() string     { return "velocity_variance" }
func (v *VelocityVariance) Value() float64   { return v.value }
func (v *VelocityVariance) Reset()           { v.value = 0 }
func (v *VelocityVariance) Observe(r render.Renderer, _ float64) {
	d, ok := r.(*render.Drift)
	if !ok {
		return
	}
	lines := d.Field().Lines
	if len(lines) == 0 {
		v.value = 0
		return
	}
	var sum, sq float64
	for _, l := range lines {
		sum += l.VX + l.VY
		sq += l.VX*l.VX + l.VY*l.VY
	}
	n := float64(2 * len(lines))
	mean := sum / n
	v.value = sq/n - mean*mean
}

// MetricsFor returns the metrics that apply to a renderer.
func MetricsFor(r render.Renderer) []Metric {
	switch r.(type) {
	case *render.Vignette:
		return []Metric{NewProgress()}
	case *render.Hero:
		return []Metric{NewMeanSpeed()}
	case *render.Drift:
		return []Metric{NewVelocityVariance()}
	}
	return nil
}
