package render

import (
	"math"

	"github.com/san-kum/asciistage/internal/grid"
	"github.com/san-kum/asciistage/internal/scene"
	"github.com/san-kum/asciistage/internal/stage"
)

type VignetteOptions struct {
	Stages      []scene.Stage
	Cols, Rows  int
	Baseline    int
	Animator    stage.Options
	Charset     string
	Background  string
	ObjectColor string
	WashColor   string
	LabelActive string
	LabelIdle   string
}

func DefaultVignetteOptions() VignetteOptions {
	return VignetteOptions{
		Stages:      scene.DefaultStages,
		Cols:        scene.Cols,
		Rows:        scene.Rows,
		Baseline:    scene.Baseline,
		Animator:    stage.DefaultOptions(),
		Charset:     "160/90",
		Background:  "#0d0e13",
		ObjectColor: "#1400DC",
		WashColor:   "#FFFFFF",
		LabelActive: "#8f84ff",
		LabelIdle:   "#60616a",
	}
}

// Vignette renders the staged figure animation on a character grid.
type Vignette struct {
	opts         VignetteOptions
	anim         *stage.Animator
	grid         *grid.Grid
	charset      []rune
	cellW, cellH float64
}

func NewVignette(opts VignetteOptions) *Vignette {
	charset := []rune(opts.Charset)
	if len(charset) == 0 {
		charset = []rune{'#'}
	}
	return &Vignette{
		opts:    opts,
		anim:    stage.New(scene.Anchors(opts.Stages), opts.Animator),
		grid:    grid.New(opts.Cols, opts.Rows),
		charset: charset,
		cellW:   10,
		cellH:   10,
	}
}

func (v *Vignette) Animator() *stage.Animator { return v.anim }
func (v *Vignette) Grid() *grid.Grid          { return v.grid }
func (v *Vignette) SetHover(h bool)           { v.anim.SetHover(h) }

// Resize recomputes the cell size so the grid spans the surface.
func (v *Vignette) Resize(w, h float64) {
	v.cellW = w / float64(v.opts.Cols)
	v.cellH = h / float64(v.opts.Rows)
}

func (v *Vignette) CellSize() (float64, float64) { return v.cellW, v.cellH }

// Compose rebuilds the grid for the animator's current frame.
func (v *Vignette) Compose() stage.Frame {
	f := v.anim.Frame()
	v.grid.Reset()
	scene.Compose(v.grid, f.Column(), v.opts.Baseline, v.opts.Stages[f.Index].Pose)
	return f
}

// WashGlyph picks the shimmer glyph for a wash cell at time t.
func WashGlyph(charset []rune, gx, gy int, t float64) rune {
	n := len(charset)
	idx := (gx*3 + gy + int(math.Floor(t*10))) % n
	if idx < 0 {
		idx += n
	}
	return charset[idx]
}

func (v *Vignette) Draw(s Surface, dt, t float64) {
	s.Clear()
	s.Fill(v.opts.Background)

	v.anim.Advance(dt)
	f := v.Compose()

	cellStyle := TextStyle{Size: math.Max(8, v.cellH*0.9)}
	for _, e := range v.grid.Cells() {
		glyph, st := e.Glyph, cellStyle
		if e.Kind == grid.Object {
			st.Color = v.opts.ObjectColor
		} else {
			glyph = WashGlyph(v.charset, e.X, e.Y, t)
			st.Color = v.opts.WashColor
		}
		s.Text(float64(e.X)*v.cellW, float64(e.Y)*v.cellH, string(glyph), st)
	}

	labelStyle := TextStyle{Size: math.Max(9, v.cellH*0.78)}
	for i, stg := range v.opts.Stages {
		labelStyle.Color = v.opts.LabelIdle
		if i == f.Index {
			labelStyle.Color = v.opts.LabelActive
		}
		s.Text(float64(stg.Anchor)*v.cellW-2, float64(v.opts.Rows-2)*v.cellH, stg.Label, labelStyle)
	}
}
