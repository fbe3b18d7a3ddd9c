package particle

import (
	"math"
	"math/rand"

	"github.com/san-kum/asciistage/internal/fonts"
)

// Phrase is the literal content of one text line.
type Phrase struct {
	Text  string
	Color string
	Size  float64
	Alpha float64
}

type DriftOptions struct {
	Phrases []Phrase
	Pad     float64
	// Sigma scales the random velocity increment per sqrt(second).
	Sigma    float64
	MaxSpeed float64
	MinSpeed float64
	// Damping multiplies the velocity once per frame.
	Damping     float64
	MaxWidth    float64 // share of the surface width the first phrase may use
	ShrinkIters int
	MinSize     float64
}

func DefaultDriftOptions() DriftOptions {
	return DriftOptions{
		Phrases: []Phrase{
			{Text: "Raw message -> clear message -> memorable message.", Color: "#f4f1ea", Size: 22, Alpha: 0.92},
			{Text: "Research -> insight -> campaign-ready narrative.", Color: "#8f84ff", Size: 15, Alpha: 0.7},
			{Text: "Audience first. Message second. Channel third.", Color: "#EA3365", Size: 14, Alpha: 0.65},
			{Text: "Clarity, tone, evidence, then momentum.", Color: "#90919b", Size: 13, Alpha: 0.55},
			{Text: "160/90", Color: "#60616a", Size: 12, Alpha: 0.45},
		},
		Pad:         16,
		Sigma:       36,
		MaxSpeed:    28,
		MinSpeed:    3,
		Damping:     0.985,
		MaxWidth:    0.86,
		ShrinkIters: 3,
		MinSize:     8,
	}
}

// TextLine is a phrase drifting as one rigid body.
type TextLine struct {
	X, Y   float64
	VX, VY float64
	Phrase Phrase
	Size   float64
	Layout
}

// DriftField moves text lines with a Brownian velocity walk inside padded
// bounds, clamping position and reflecting velocity at each wall.
type DriftField struct {
	opts  DriftOptions
	rng   *rand.Rand
	W, H  float64
	Lines []TextLine
}

func NewDriftField(opts DriftOptions, rng *rand.Rand) *DriftField {
	if opts.ShrinkIters <= 0 {
		opts.ShrinkIters = 3
	}
	return &DriftField{opts: opts, rng: rng}
}

// Rebuild discards every line and spawns the configured phrases again for a
// w x h surface.
func (f *DriftField) Rebuild(w, h float64, m fonts.Measurer) {
	f.W, f.H = w, h
	f.Lines = f.Lines[:0]
	for i, ph := range f.opts.Phrases {
		line := TextLine{Phrase: ph}
		f.layoutLine(&line, i, m)

		left, right, top, bottom := f.bounds(&line)
		line.X = left + f.rng.Float64()*(right-left)
		line.Y = top + f.rng.Float64()*(bottom-top)

		angle := f.rng.Float64() * 2 * math.Pi
		speed := f.opts.MinSpeed + f.rng.Float64()*(f.opts.MaxSpeed/2-f.opts.MinSpeed)
		line.VX = math.Cos(angle) * speed
		line.VY = math.Sin(angle) * speed
		f.Lines = append(f.Lines, line)
	}
}

// Relayout re-measures every line with m, keeping positions and velocities.
func (f *DriftField) Relayout(m fonts.Measurer) {
	for i := range f.Lines {
		f.layoutLine(&f.Lines[i], i, m)
		f.confine(&f.Lines[i])
	}
}

func (f *DriftField) layoutLine(line *TextLine, idx int, m fonts.Measurer) {
	size := line.Phrase.Size
	if idx == 0 {
		size = FitSize(line.Phrase.Text, size, f.opts.MaxWidth*f.W, f.opts.MinSize, f.opts.ShrinkIters, m)
	}
	line.Size = size
	line.Layout = LayoutText(line.Phrase.Text, size, m)
}

// bounds returns the range the line's top-left corner may occupy.
func (f *DriftField) bounds(line *TextLine) (left, right, top, bottom float64) {
	left, top = f.opts.Pad, f.opts.Pad
	right = f.W - f.opts.Pad - line.Width
	bottom = f.H - f.opts.Pad - line.Height
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	return
}

// Kick is the Brownian velocity increment for a unit normal sample n over
// dt seconds.
func Kick(sigma, dt, n float64) float64 {
	return n * sigma * math.Sqrt(dt)
}

// Step advances every line by dt seconds.
func (f *DriftField) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for i := range f.Lines {
		l := &f.Lines[i]
		l.VX += Kick(f.opts.Sigma, dt, f.rng.NormFloat64())
		l.VY += Kick(f.opts.Sigma, dt, f.rng.NormFloat64())
		l.VX = clamp(l.VX, -f.opts.MaxSpeed, f.opts.MaxSpeed) * f.opts.Damping
		l.VY = clamp(l.VY, -f.opts.MaxSpeed, f.opts.MaxSpeed) * f.opts.Damping

		if math.Hypot(l.VX, l.VY) < f.opts.MinSpeed {
			angle := f.rng.Float64() * 2 * math.Pi
			l.VX += math.Cos(angle) * f.opts.MinSpeed * 2
			l.VY += math.Sin(angle) * f.opts.MinSpeed * 2
		}

		l.X += l.VX * dt
		l.Y += l.VY * dt
		f.confine(l)
	}
}

// confine clamps the line to the padded bounds and turns its velocity
// inward on every wall it touches.
func (f *DriftField) confine(l *TextLine) {
	left, right, top, bottom := f.bounds(l)
	if l.X <= left {
		l.X = left
		l.VX = math.Abs(l.VX)
	}
	if l.X >= right {
		l.X = right
		l.VX = -math.Abs(l.VX)
	}
	if l.Y <= top {
		l.Y = top
		l.VY = math.Abs(l.VY)
	}
	if l.Y >= bottom {
		l.Y = bottom
		l.VY = -math.Abs(l.VY)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
