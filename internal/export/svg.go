package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/asciistage/internal/render"
)

// SurfaceToSVG converts a terminal surface to SVG text elements, one per
// run of cells sharing a colour.
func SurfaceToSVG(s *render.TermSurface) string {
	if s == nil {
		return ""
	}

	width, height := s.Size()

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g font-family="monospace" font-size="%.1f" dominant-baseline="hanging" xml:space="preserve">
`, width, height, width, height, s.Background(), s.CellH))

	for row := 0; row < s.Rows; row++ {
		col := 0
		for col < s.Cols {
			r, fg := s.At(col, row)
			if r == 0 || r == ' ' {
				col++
				continue
			}
			start := col
			var run strings.Builder
			for col < s.Cols {
				r2, fg2 := s.At(col, row)
				if r2 == ' ' || fg2 != fg {
					break
				}
				if r2 != 0 {
					run.WriteRune(r2)
				}
				col++
			}
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" textLength="%.1f">%s</text>
`, float64(start)*s.CellW, float64(row)*s.CellH, fg, float64(col-start)*s.CellW, html.EscapeString(run.String())))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SeriesToSVG plots a sampled series as a polyline.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	stepX := float64(width) / float64(len(values)-1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) * stepX
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
