package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/san-kum/asciistage/internal/fonts"
)

// Default terminal cell size in layout units.
const (
	DefaultCellW = 8.0
	DefaultCellH = 16.0
)

type termCell struct {
	r  rune
	fg string
}

// TermSurface rasterises text onto terminal cells. Layout units map to
// cells through the cell width and height.
type TermSurface struct {
	Cols, Rows   int
	CellW, CellH float64
	bg           colorful.Color
	cells        [][]termCell
}

func NewTermSurface(cols, rows int, cellW, cellH float64) *TermSurface {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cellW <= 0 {
		cellW = DefaultCellW
	}
	if cellH <= 0 {
		cellH = DefaultCellH
	}
	s := &TermSurface{Cols: cols, Rows: rows, CellW: cellW, CellH: cellH}
	s.cells = make([][]termCell, rows)
	for i := range s.cells {
		s.cells[i] = make([]termCell, cols)
	}
	s.Clear()
	return s
}

func (s *TermSurface) Size() (float64, float64) {
	return float64(s.Cols) * s.CellW, float64(s.Rows) * s.CellH
}

func (s *TermSurface) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = termCell{r: ' '}
		}
	}
}

func (s *TermSurface) Fill(color string) {
	s.bg = parseColor(color)
}

// CellMetrics measures text in whole cells of this surface.
func (s *TermSurface) CellMetrics() fonts.Measurer {
	return fonts.GridMeasurer{CellW: s.CellW}
}

// CellAt converts layout units to a cell position.
func (s *TermSurface) CellAt(x, y float64) (int, int) {
	return int(math.Floor(x/s.CellW + 1e-9)), int(math.Floor(y/s.CellH + 1e-9))
}

func (s *TermSurface) Text(x, y float64, text string, st TextStyle) {
	col, row := s.CellAt(x, y)
	if row < 0 || row >= s.Rows {
		return
	}
	fg := s.bg.BlendRgb(parseColor(st.Color), st.opacity()).Clamped().Hex()
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= s.Cols {
			s.cells[row][col] = termCell{r: r, fg: fg}
			for i := 1; i < w; i++ {
				s.cells[row][col+i] = termCell{}
			}
		}
		col += w
	}
}

// At returns the rune and colour stored at a cell.
func (s *TermSurface) At(col, row int) (rune, string) {
	if col < 0 || col >= s.Cols || row < 0 || row >= s.Rows {
		return 0, ""
	}
	c := s.cells[row][col]
	return c.r, c.fg
}

func (s *TermSurface) Background() string { return s.bg.Hex() }

// Plain renders the cells without colour.
func (s *TermSurface) Plain() string {
	var b strings.Builder
	for _, row := range s.cells {
		for _, c := range row {
			if c.r != 0 {
				b.WriteRune(c.r)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the cells with lipgloss colours, one style per run of
// equal foreground.
func (s *TermSurface) String() string {
	bg := lipgloss.Color(s.bg.Hex())
	var b strings.Builder
	for y, row := range s.cells {
		var run strings.Builder
		fg := row[0].fg
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := lipgloss.NewStyle().Background(bg)
			if fg != "" {
				st = st.Foreground(lipgloss.Color(fg))
			}
			b.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for _, c := range row {
			if c.r == 0 {
				continue
			}
			if c.fg != fg {
				flush()
				fg = c.fg
			}
			run.WriteRune(c.r)
		}
		flush()
		if y < len(s.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
