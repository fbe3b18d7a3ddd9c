package grid

import "sort"

// Kind is the paint class of a cell.
type Kind uint8

const (
	// Wash cells are ambient texture and lose to anything already placed.
	Wash Kind = iota
	// Object cells are deliberate glyphs and always win.
	Object
)

func (k Kind) String() string {
	if k == Object {
		return "object"
	}
	return "wash"
}

// Blank is the empty braille rune, treated like a space by Stamp.
const Blank = '⠀'

type Point struct {
	X, Y int
}

type Cell struct {
	Kind  Kind
	Glyph rune
}

// Grid is a sparse character grid with a fixed extent.
type Grid struct {
	Cols, Rows int
	cells      map[Point]Cell
}

func New(cols, rows int) *Grid {
	return &Grid{
		Cols:  cols,
		Rows:  rows,
		cells: make(map[Point]Cell, cols*rows/4),
	}
}

// InBounds reports whether (x, y) lies inside the grid extent.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// Place writes a cell. Object writes overwrite, wash writes only fill empty
// keys, and out-of-bounds writes are dropped.
func (g *Grid) Place(x, y int, kind Kind, glyph rune) {
	if !g.InBounds(x, y) {
		return
	}
	p := Point{x, y}
	if kind == Object {
		g.cells[p] = Cell{Kind: kind, Glyph: glyph}
		return
	}
	if _, ok := g.cells[p]; !ok {
		g.cells[p] = Cell{Kind: kind, Glyph: glyph}
	}
}

// Stamp places every non-blank rune of pattern as an Object cell at its
// offset from (originX, originY).
func (g *Grid) Stamp(originX, originY int, pattern []string) {
	for row, line := range pattern {
		col := 0
		for _, r := range line {
			if r != ' ' && r != Blank {
				g.Place(originX+col, originY+row, Object, r)
			}
			col++
		}
	}
}

func (g *Grid) At(x, y int) (Cell, bool) {
	c, ok := g.cells[Point{x, y}]
	return c, ok
}

func (g *Grid) Len() int { return len(g.cells) }

// Reset drops every cell, keeping the extent.
func (g *Grid) Reset() {
	clear(g.cells)
}

// Entry pairs a cell with its coordinates.
type Entry struct {
	Point
	Cell
}

// Cells returns the occupied cells in row-major order.
func (g *Grid) Cells() []Entry {
	out := make([]Entry, 0, len(g.cells))
	for p, c := range g.cells {
		out = append(out, Entry{Point: p, Cell: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// String renders the grid as plain text, wash cells shown as fill.
func (g *Grid) String(fill rune) string {
	rows := make([][]rune, g.Rows)
	for y := range rows {
		rows[y] = make([]rune, g.Cols)
		for x := range rows[y] {
			rows[y][x] = ' '
		}
	}
	for p, c := range g.cells {
		if c.Kind == Object {
			rows[p.Y][p.X] = c.Glyph
		} else {
			rows[p.Y][p.X] = fill
		}
	}
	buf := make([]rune, 0, (g.Cols+1)*g.Rows)
	for _, row := range rows {
		buf = append(buf, row...)
		buf = append(buf, '\n')
	}
	return string(buf)
}
