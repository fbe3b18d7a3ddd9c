package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/asciistage/internal/config"
	"github.com/san-kum/asciistage/internal/render"
	"github.com/san-kum/asciistage/internal/sim"
)

// Session is a scene bound to a surface and a headless loop.
type Session struct {
	Name     string
	Renderer render.Renderer
	Player   *render.Player
	Loop     *sim.Loop
	cfg      *config.Config
}

// NewSession builds the named scene on s and attaches its default metrics.
func (r *Registry) NewSession(name string, cfg *config.Config, s render.Surface) (*Session, error) {
	rend, err := r.Get(name, cfg)
	if err != nil {
		return nil, err
	}
	p, err := render.NewPlayer(rend, s)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	loop := sim.New(p)
	for _, m := range sim.MetricsFor(rend) {
		loop.AddMetric(m)
	}
	return &Session{Name: name, Renderer: rend, Player: p, Loop: loop, cfg: cfg}, nil
}

// SimConfig is the loop configuration for n frames at the session's fps.
func (s *Session) SimConfig(frames int) sim.Config {
	return sim.Config{FPS: s.cfg.FPS, Frames: frames, Start: time.Unix(0, 0)}
}

// FramesUntil is the number of frames needed to reach at seconds.
func (s *Session) FramesUntil(at float64) int {
	if at <= 0 {
		return 1
	}
	return int(at*float64(s.cfg.FPS)) + 1
}

func (s *Session) Run(ctx context.Context, frames int) (*sim.Result, error) {
	return s.Loop.Run(ctx, s.SimConfig(frames))
}
