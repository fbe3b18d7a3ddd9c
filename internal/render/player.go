package render

import (
	"time"

	"github.com/san-kum/asciistage/internal/fonts"
	"github.com/san-kum/asciistage/internal/logging"
)

// Renderer draws one scene. Resize rebuilds any size-dependent state and
// Draw paints a frame given the clamped frame delta and the seconds since
// the scene started.
type Renderer interface {
	Resize(w, h float64)
	Draw(s Surface, dt, t float64)
}

// PointerTarget is implemented by renderers that react to the pointer.
type PointerTarget interface {
	SetPointer(x, y float64)
	ClearPointer()
}

// HoverTarget is implemented by renderers with a hover-dependent speed.
type HoverTarget interface {
	SetHover(bool)
}

// FontTarget is implemented by renderers that re-lay-out text once real
// font metrics are known.
type FontTarget interface {
	FontsReady(m fonts.Measurer)
}

// CellSurface is implemented by surfaces that quantise text to a cell grid.
type CellSurface interface {
	CellMetrics() fonts.Measurer
}

// CellTarget is implemented by renderers that lay text out glyph by glyph
// and must match a cell grid when drawing on one. nil means free placement.
type CellTarget interface {
	SetCellMetrics(m fonts.Measurer)
}

// Player binds a renderer to a surface and owns the frame clock.
type Player struct {
	r     Renderer
	s     Surface
	clock Clock
	start time.Time
}

func NewPlayer(r Renderer, s Surface) (*Player, error) {
	if missing(s) {
		logging.Logger().Debug("no surface, scene stays inactive")
		return nil, ErrNoSurface
	}
	p := &Player{r: r, s: s}
	p.bindCells()
	p.r.Resize(s.Size())
	return p, nil
}

// missing reports a nil surface, including a nil pointer of a known
// surface type stored in the interface.
func missing(s Surface) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *TermSurface:
		return v == nil
	case *ImageSurface:
		return v == nil
	}
	return false
}

func (p *Player) bindCells() {
	t, ok := p.r.(CellTarget)
	if !ok {
		return
	}
	var m fonts.Measurer
	if cs, ok := p.s.(CellSurface); ok {
		m = cs.CellMetrics()
	}
	t.SetCellMetrics(m)
}

func (p *Player) Renderer() Renderer { return p.r }
func (p *Player) Surface() Surface   { return p.s }

// Rebind swaps the surface after a resize and rebuilds the scene for it.
func (p *Player) Rebind(s Surface) error {
	if missing(s) {
		return ErrNoSurface
	}
	p.s = s
	p.bindCells()
	w, h := s.Size()
	logging.Logger().Debug("surface resized", "w", w, "h", h)
	p.r.Resize(w, h)
	return nil
}

// Frame renders the frame for timestamp now.
func (p *Player) Frame(now time.Time) {
	if p.start.IsZero() {
		p.start = now
	}
	dt := p.clock.Tick(now)
	p.r.Draw(p.s, dt, now.Sub(p.start).Seconds())
}

func (p *Player) SetPointer(x, y float64) {
	if t, ok := p.r.(PointerTarget); ok {
		t.SetPointer(x, y)
	}
}

func (p *Player) ClearPointer() {
	if t, ok := p.r.(PointerTarget); ok {
		t.ClearPointer()
	}
}

func (p *Player) SetHover(h bool) {
	if t, ok := p.r.(HoverTarget); ok {
		t.SetHover(h)
	}
}

func (p *Player) FontsReady(m fonts.Measurer) {
	if t, ok := p.r.(FontTarget); ok {
		t.FontsReady(m)
	}
}
