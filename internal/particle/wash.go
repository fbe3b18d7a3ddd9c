package particle

import (
	"math"
	"math/rand"
)

// PointerAway is the sentinel pointer coordinate used while no pointer is
// over the surface.
const PointerAway = -9999.0

type WashOptions struct {
	Density     float64 // surface area per particle
	MinCount    int
	MaxCount    int
	Radius      float64 // pointer repulsion radius
	Push        float64
	Pad         float64
	Spread      float64 // full width of the initial velocity range
	AccentRatio float64
	AccentChars string
	BaseChars   string
	AccentColor string
	BaseColor   string
	MinSize     float64
	SizeJitter  float64
	MinAlpha    float64
	AlphaJitter float64
}

func DefaultWashOptions() WashOptions {
	return WashOptions{
		Density:     9500,
		MinCount:    90,
		MaxCount:    220,
		Radius:      120,
		Push:        1.6,
		Pad:         8,
		Spread:      0.28,
		AccentRatio: 0.28,
		AccentChars: "ATJ",
		BaseChars:   "160/90",
		AccentColor: "#EA3365",
		BaseColor:   "#90919b",
		MinSize:     10,
		SizeJitter:  4,
		MinAlpha:    0.18,
		AlphaJitter: 0.35,
	}
}

// Glyph is a single drifting character.
type Glyph struct {
	X, Y   float64
	VX, VY float64
	Rune   rune
	Size   float64
	Alpha  float64
	Color  string
}

// WashField moves glyphs at constant velocity with elastic reflection past
// a padded boundary and pushes them away from the pointer.
type WashField struct {
	opts      WashOptions
	rng       *rand.Rand
	W, H      float64
	Particles []Glyph
	px, py    float64
}

func NewWashField(opts WashOptions, rng *rand.Rand) *WashField {
	return &WashField{opts: opts, rng: rng, px: PointerAway, py: PointerAway}
}

// Count is the particle count for a w x h surface.
func (f *WashField) Count(w, h float64) int {
	n := int(math.Floor(w * h / f.opts.Density))
	if n < f.opts.MinCount {
		n = f.opts.MinCount
	}
	if n > f.opts.MaxCount {
		n = f.opts.MaxCount
	}
	return n
}

// Resize discards every particle and spawns a fresh batch for the new size.
func (f *WashField) Resize(w, h float64) {
	f.W, f.H = w, h
	n := f.Count(w, h)
	f.Particles = f.Particles[:0]
	for i := 0; i < n; i++ {
		f.Particles = append(f.Particles, f.spawn())
	}
}

func (f *WashField) spawn() Glyph {
	accent := f.rng.Float64() < f.opts.AccentRatio
	chars, color := f.opts.BaseChars, f.opts.BaseColor
	if accent {
		chars, color = f.opts.AccentChars, f.opts.AccentColor
	}
	g := Glyph{
		X:     f.rng.Float64() * f.W,
		Y:     f.rng.Float64() * f.H,
		VX:    (f.rng.Float64() - 0.5) * f.opts.Spread,
		VY:    (f.rng.Float64() - 0.5) * f.opts.Spread,
		Rune:  '.',
		Size:  f.opts.MinSize + f.rng.Float64()*f.opts.SizeJitter,
		Alpha: f.opts.MinAlpha + f.rng.Float64()*f.opts.AlphaJitter,
		Color: color,
	}
	if runes := []rune(chars); len(runes) > 0 {
		g.Rune = runes[f.rng.Intn(len(runes))]
	}
	return g
}

func (f *WashField) SetPointer(x, y float64) { f.px, f.py = x, y }
func (f *WashField) ClearPointer()           { f.px, f.py = PointerAway, PointerAway }

func (f *WashField) Pointer() (float64, float64) { return f.px, f.py }

// Step advances every particle by one frame.
func (f *WashField) Step() {
	r2 := f.opts.Radius * f.opts.Radius
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.X < -f.opts.Pad || p.X > f.W+f.opts.Pad {
			p.VX = -p.VX
		}
		if p.Y < -f.opts.Pad || p.Y > f.H+f.opts.Pad {
			p.VY = -p.VY
		}

		dx, dy := p.X-f.px, p.Y-f.py
		d2 := dx*dx + dy*dy
		if d2 < r2 {
			force := Force(d2, f.opts.Radius)
			p.X += dx / f.opts.Radius * force * f.opts.Push
			p.Y += dy / f.opts.Radius * force * f.opts.Push
		}
	}
}

// Force is the repulsion magnitude at squared distance d2 from the pointer:
// 1 at the pointer, falling to 0 at radius and beyond.
func Force(d2, radius float64) float64 {
	r2 := radius * radius
	if d2 >= r2 {
		return 0
	}
	if d2 < 0 {
		d2 = 0
	}
	return (r2 - d2) / r2
}
