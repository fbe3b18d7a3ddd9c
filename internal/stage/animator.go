package stage

import "math"

const (
	DefaultIdleSpeed  = 0.16
	DefaultHoverSpeed = 0.42
	DefaultWindow     = 0.92
	DefaultOvershoot  = 0.2
)

type Options struct {
	IdleSpeed  float64
	HoverSpeed float64
	// Window is the share of a stage spent travelling to the next anchor.
	Window    float64
	Overshoot float64
}

func DefaultOptions() Options {
	return Options{
		IdleSpeed:  DefaultIdleSpeed,
		HoverSpeed: DefaultHoverSpeed,
		Window:     DefaultWindow,
		Overshoot:  DefaultOvershoot,
	}
}

// Frame is the animator state sampled for rendering.
type Frame struct {
	Index int
	// Eased is the eased interpolation fraction towards the next anchor.
	Eased float64
	X     float64
}

// Column rounds X to the nearest grid column.
func (f Frame) Column() int {
	return int(math.Round(f.X))
}

// Animator advances a looping progress value across stage anchors.
type Animator struct {
	anchors  []float64
	opts     Options
	progress float64
	hover    bool
}

// New panics on an empty anchor list.
func New(anchors []float64, opts Options) *Animator {
	if len(anchors) == 0 {
		panic("stage: no anchors")
	}
	if opts.Window <= 0 {
		opts.Window = DefaultWindow
	}
	a := make([]float64, len(anchors))
	copy(a, anchors)
	return &Animator{anchors: a, opts: opts}
}

func (a *Animator) Stages() int         { return len(a.anchors) }
func (a *Animator) Progress() float64   { return a.progress }
func (a *Animator) Hover() bool         { return a.hover }
func (a *Animator) SetHover(hover bool) { a.hover = hover }

// SetProgress places the animator at p, clamped to be non-negative.
func (a *Animator) SetProgress(p float64) {
	if p < 0 || math.IsNaN(p) {
		p = 0
	}
	a.progress = p
}

// Speed is the progress rate for the current hover flag.
func (a *Animator) Speed() float64 {
	if a.hover {
		return a.opts.HoverSpeed
	}
	return a.opts.IdleSpeed
}

// Advance moves progress forward by elapsed seconds and wraps to zero once
// it passes the last stage plus the overshoot margin. Elapsed values that
// are not positive, NaN included, are ignored.
func (a *Animator) Advance(elapsed float64) {
	if !(elapsed > 0) {
		return
	}
	a.progress = Accumulate(a.progress, elapsed, a.Speed())
	if a.progress > float64(len(a.anchors))+a.opts.Overshoot {
		a.progress = 0
	}
}

// Frame samples the stage index and interpolated anchor.
func (a *Animator) Frame() Frame {
	n := len(a.anchors)
	idx := IndexFor(a.progress, n)
	f := Frame{Index: idx, X: a.anchors[idx]}
	if idx < n-1 {
		t := math.Min((a.progress-float64(idx))/a.opts.Window, 1)
		f.Eased = EaseOutCubic(t)
		f.X = a.anchors[idx] + (a.anchors[idx+1]-a.anchors[idx])*f.Eased
	}
	return f
}

// Accumulate returns progress advanced by elapsed*speed without wrapping.
func Accumulate(progress, elapsed, speed float64) float64 {
	return progress + elapsed*speed
}

// IndexFor maps progress to a stage index in [0, n-1].
func IndexFor(progress float64, n int) int {
	if progress <= 0 || n <= 1 {
		return 0
	}
	idx := int(math.Floor(progress))
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}

func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}
