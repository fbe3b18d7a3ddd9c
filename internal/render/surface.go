package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Baseline selects how the y coordinate of Text is interpreted.
type Baseline int

const (
	BaselineTop Baseline = iota
	BaselineMiddle
)

type TextStyle struct {
	Color string
	// Alpha is the opacity in (0, 1]; zero means opaque.
	Alpha    float64
	Size     float64
	Baseline Baseline
}

func (st TextStyle) opacity() float64 {
	if st.Alpha <= 0 || st.Alpha > 1 {
		return 1
	}
	return st.Alpha
}

// Surface is a 2D drawing target measured in layout units.
type Surface interface {
	Size() (w, h float64)
	Clear()
	Fill(color string)
	Text(x, y float64, s string, st TextStyle)
}

// parseColor falls back to white for anything that is not #rrggbb.
func parseColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}
