package viz

import (
	"strings"

	"github.com/san-kum/asciistage/internal/grid"
	"github.com/san-kum/asciistage/internal/render"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// The empty pattern doubles as the blank grid cell.
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = grid.Blank
		}
	}
}

// Span sets every dot of row y between x0 and x1 inclusive.
func (c *Canvas) Span(x0, x1, y int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		c.Set(x, y)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// dots maps a point in a w x h area onto canvas dot coordinates.
func (c *Canvas) dots(x, y, w, h float64) (int, int) {
	return int(x / w * float64(c.Width*2)), int(y / h * float64(c.Height*4))
}

// Minimap plots a scene's state onto the canvas: grid cells for the
// vignette, glyph positions for the wash, line extents for the drift.
func (c *Canvas) Minimap(r render.Renderer) {
	c.Clear()
	switch s := r.(type) {
	case *render.Vignette:
		g := s.Grid()
		for _, e := range g.Cells() {
			c.Set(c.dots(float64(e.X), float64(e.Y), float64(g.Cols), float64(g.Rows)))
		}
	case *render.Hero:
		f := s.Field()
		if f.W <= 0 || f.H <= 0 {
			return
		}
		for _, p := range f.Particles {
			c.Set(c.dots(p.X, p.Y, f.W, f.H))
		}
	case *render.Drift:
		f := s.Field()
		if f.W <= 0 || f.H <= 0 {
			return
		}
		for _, l := range f.Lines {
			x0, y := c.dots(l.X, l.Y, f.W, f.H)
			x1, _ := c.dots(l.X+l.Width, l.Y, f.W, f.H)
			c.Span(x0, x1, y)
		}
	}
}
