package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/asciistage/internal/logging"
	"github.com/san-kum/asciistage/internal/render"
)

// Loop drives a player headlessly on a virtual clock, one frame at a time.
type Loop struct {
	player    *render.Player
	metrics   []Metric
	observers []Observer
}

func New(p *render.Player) *Loop {
	return &Loop{
		player:    p,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (l *Loop) Player() *render.Player { return l.player }

func (l *Loop) AddMetric(m Metric)     { l.metrics = append(l.metrics, m) }
func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

func (l *Loop) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Times:   make([]float64, 0, cfg.Frames),
		Series:  make(map[string][]float64),
		Metrics: make(map[string]float64),
	}
	for _, m := range l.metrics {
		m.Reset()
	}

	err := l.RunWithCallback(ctx, cfg, func(frame int, t float64) bool {
		result.Frames++
		result.Times = append(result.Times, t)
		for _, m := range l.metrics {
			m.Observe(l.player.Renderer(), t)
			result.Series[m.Name()] = append(result.Series[m.Name()], m.Value())
		}
		return true
	})

	for _, m := range l.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, err
}

func validateConfig(cfg Config) error {
	if cfg.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	if cfg.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	return nil
}

// RunWithCallback draws cfg.Frames frames and calls callback after each one
// with the frame index and its virtual time in seconds. Returning false
// stops the loop early.
func (l *Loop) RunWithCallback(ctx context.Context, cfg Config, callback func(frame int, t float64) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	step := cfg.FrameDuration()
	logging.Logger().Debug("headless run", "fps", cfg.FPS, "frames", cfg.Frames)

	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		t := float64(i) / float64(cfg.FPS)
		for _, obs := range l.observers {
			obs.OnFrame(l.player, i, t)
		}
		l.player.Frame(cfg.Start.Add(step * time.Duration(i)))

		if !callback(i, t) {
			return nil
		}
	}
	return nil
}
