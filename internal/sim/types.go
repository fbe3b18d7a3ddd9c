package sim

import (
	"time"

	"github.com/san-kum/asciistage/internal/render"
)

// Metric samples renderer state once per frame.
type Metric interface {
	Name() string
	Observe(r render.Renderer, t float64)
	Value() float64
	Reset()
}

// Observer runs before each frame is drawn and may inject input.
type Observer interface {
	OnFrame(p *render.Player, frame int, t float64)
}

type Config struct {
	FPS    int
	Frames int
	// Start is the virtual wall clock of frame 0.
	Start time.Time
}

// FrameDuration is the virtual time between frames.
func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

type Result struct {
	Frames  int
	Times   []float64
	Series  map[string][]float64
	Metrics map[string]float64
}
