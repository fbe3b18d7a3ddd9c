package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/asciistage/internal/particle"
	"github.com/san-kum/asciistage/internal/render"
	"github.com/san-kum/asciistage/internal/scene"
	"github.com/san-kum/asciistage/internal/stage"
)

const (
	DefaultScene = "vignette"
	DefaultFPS   = 30
	DefaultSeed  = 160
	MaxFPS       = 120
)

type Config struct {
	Scene    string         `yaml:"scene"`
	FPS      int            `yaml:"fps"`
	Seed     int64          `yaml:"seed"`
	Surface  SurfaceConfig  `yaml:"surface"`
	Vignette VignetteConfig `yaml:"vignette"`
	Wash     WashConfig     `yaml:"wash"`
	Drift    DriftConfig    `yaml:"drift"`
}

type SurfaceConfig struct {
	DPR   float64 `yaml:"dpr"`
	CellW float64 `yaml:"cell_w"`
	CellH float64 `yaml:"cell_h"`
}

type VignetteConfig struct {
	Labels      []string `yaml:"labels"`
	Anchors     []int    `yaml:"anchors"`
	IdleSpeed   float64  `yaml:"idle_speed"`
	HoverSpeed  float64  `yaml:"hover_speed"`
	Window      float64  `yaml:"window"`
	Overshoot   float64  `yaml:"overshoot"`
	Charset     string   `yaml:"charset"`
	Background  string   `yaml:"background"`
	ObjectColor string   `yaml:"object_color"`
	WashColor   string   `yaml:"wash_color"`
	LabelActive string   `yaml:"label_active"`
	LabelIdle   string   `yaml:"label_idle"`
}

type WashConfig struct {
	Density     float64 `yaml:"density"`
	MinCount    int     `yaml:"min_count"`
	MaxCount    int     `yaml:"max_count"`
	Radius      float64 `yaml:"radius"`
	Push        float64 `yaml:"push"`
	AccentRatio float64 `yaml:"accent_ratio"`
	AccentChars string  `yaml:"accent_chars"`
	BaseChars   string  `yaml:"base_chars"`
	AccentColor string  `yaml:"accent_color"`
	BaseColor   string  `yaml:"base_color"`
}

type PhraseConfig struct {
	Text  string  `yaml:"text"`
	Color string  `yaml:"color"`
	Size  float64 `yaml:"size"`
	Alpha float64 `yaml:"alpha"`
}

type DriftConfig struct {
	Phrases  []PhraseConfig `yaml:"phrases"`
	Sigma    float64        `yaml:"sigma"`
	MaxSpeed float64        `yaml:"max_speed"`
	MinSpeed float64        `yaml:"min_speed"`
	Damping  float64        `yaml:"damping"`
}

func DefaultConfig() *Config {
	anim := stage.DefaultOptions()
	vig := render.DefaultVignetteOptions()
	wash := particle.DefaultWashOptions()
	drift := particle.DefaultDriftOptions()

	cfg := &Config{
		Scene: DefaultScene,
		FPS:   DefaultFPS,
		Seed:  DefaultSeed,
		Surface: SurfaceConfig{
			DPR:   1,
			CellW: render.DefaultCellW,
			CellH: render.DefaultCellH,
		},
		Vignette: VignetteConfig{
			IdleSpeed:   anim.IdleSpeed,
			HoverSpeed:  anim.HoverSpeed,
			Window:      anim.Window,
			Overshoot:   anim.Overshoot,
			Charset:     vig.Charset,
			Background:  vig.Background,
			ObjectColor: vig.ObjectColor,
			WashColor:   vig.WashColor,
			LabelActive: vig.LabelActive,
			LabelIdle:   vig.LabelIdle,
		},
		Wash: WashConfig{
			Density:     wash.Density,
			MinCount:    wash.MinCount,
			MaxCount:    wash.MaxCount,
			Radius:      wash.Radius,
			Push:        wash.Push,
			AccentRatio: wash.AccentRatio,
			AccentChars: wash.AccentChars,
			BaseChars:   wash.BaseChars,
			AccentColor: wash.AccentColor,
			BaseColor:   wash.BaseColor,
		},
		Drift: DriftConfig{
			Sigma:    drift.Sigma,
			MaxSpeed: drift.MaxSpeed,
			MinSpeed: drift.MinSpeed,
			Damping:  drift.Damping,
		},
	}
	for _, s := range scene.DefaultStages {
		cfg.Vignette.Labels = append(cfg.Vignette.Labels, s.Label)
		cfg.Vignette.Anchors = append(cfg.Vignette.Anchors, s.Anchor)
	}
	for _, p := range drift.Phrases {
		cfg.Drift.Phrases = append(cfg.Drift.Phrases, PhraseConfig(p))
	}
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy so presets can be modified by flags safely.
func (c *Config) Clone() *Config {
	out := *c
	out.Vignette.Labels = append([]string(nil), c.Vignette.Labels...)
	out.Vignette.Anchors = append([]int(nil), c.Vignette.Anchors...)
	out.Drift.Phrases = append([]PhraseConfig(nil), c.Drift.Phrases...)
	return &out
}

func (c *Config) Validate() error {
	if c.FPS <= 0 || c.FPS > MaxFPS {
		return fmt.Errorf("fps must be in (0, %d], got %d", MaxFPS, c.FPS)
	}
	if c.Surface.CellW <= 0 || c.Surface.CellH <= 0 {
		return fmt.Errorf("cell size must be positive, got %gx%g", c.Surface.CellW, c.Surface.CellH)
	}
	if _, err := scene.BuildStages(c.Vignette.Labels, c.Vignette.Anchors); err != nil {
		return fmt.Errorf("vignette: %w", err)
	}
	for i, a := range c.Vignette.Anchors {
		if a < 0 || a >= scene.Cols {
			return fmt.Errorf("vignette: anchor %d out of range [0, %d): %d", i, scene.Cols, a)
		}
	}
	if c.Vignette.IdleSpeed <= 0 || c.Vignette.HoverSpeed <= 0 {
		return fmt.Errorf("vignette: speeds must be positive")
	}
	if c.Vignette.Window <= 0 || c.Vignette.Window > 1 {
		return fmt.Errorf("vignette: window must be in (0, 1], got %g", c.Vignette.Window)
	}
	if c.Vignette.Overshoot < 0 {
		return fmt.Errorf("vignette: overshoot must not be negative, got %g", c.Vignette.Overshoot)
	}
	if c.Vignette.Charset == "" {
		return fmt.Errorf("vignette: charset must not be empty")
	}
	if c.Wash.Density <= 0 {
		return fmt.Errorf("wash: density must be positive, got %g", c.Wash.Density)
	}
	if c.Wash.MinCount <= 0 || c.Wash.MaxCount < c.Wash.MinCount {
		return fmt.Errorf("wash: count bounds invalid [%d, %d]", c.Wash.MinCount, c.Wash.MaxCount)
	}
	if c.Wash.AccentRatio < 0 || c.Wash.AccentRatio > 1 {
		return fmt.Errorf("wash: accent ratio must be in [0, 1], got %g", c.Wash.AccentRatio)
	}
	if c.Wash.AccentChars == "" || c.Wash.BaseChars == "" {
		return fmt.Errorf("wash: glyph sets must not be empty")
	}
	if len(c.Drift.Phrases) == 0 {
		return fmt.Errorf("drift: at least one phrase is required")
	}
	if c.Drift.MinSpeed < 0 || c.Drift.MaxSpeed < c.Drift.MinSpeed {
		return fmt.Errorf("drift: speed bounds invalid [%g, %g]", c.Drift.MinSpeed, c.Drift.MaxSpeed)
	}
	if c.Drift.Damping <= 0 || c.Drift.Damping > 1 {
		return fmt.Errorf("drift: damping must be in (0, 1], got %g", c.Drift.Damping)
	}
	return nil
}

func (c *Config) VignetteOptions() (render.VignetteOptions, error) {
	stages, err := scene.BuildStages(c.Vignette.Labels, c.Vignette.Anchors)
	if err != nil {
		return render.VignetteOptions{}, err
	}
	opts := render.DefaultVignetteOptions()
	opts.Stages = stages
	opts.Animator = stage.Options{
		IdleSpeed:  c.Vignette.IdleSpeed,
		HoverSpeed: c.Vignette.HoverSpeed,
		Window:     c.Vignette.Window,
		Overshoot:  c.Vignette.Overshoot,
	}
	opts.Charset = c.Vignette.Charset
	opts.Background = c.Vignette.Background
	opts.ObjectColor = c.Vignette.ObjectColor
	opts.WashColor = c.Vignette.WashColor
	opts.LabelActive = c.Vignette.LabelActive
	opts.LabelIdle = c.Vignette.LabelIdle
	return opts, nil
}

func (c *Config) WashOptions() particle.WashOptions {
	opts := particle.DefaultWashOptions()
	opts.Density = c.Wash.Density
	opts.MinCount = c.Wash.MinCount
	opts.MaxCount = c.Wash.MaxCount
	opts.Radius = c.Wash.Radius
	opts.Push = c.Wash.Push
	opts.AccentRatio = c.Wash.AccentRatio
	opts.AccentChars = c.Wash.AccentChars
	opts.BaseChars = c.Wash.BaseChars
	opts.AccentColor = c.Wash.AccentColor
	opts.BaseColor = c.Wash.BaseColor
	return opts
}

func (c *Config) DriftOptions() particle.DriftOptions {
	opts := particle.DefaultDriftOptions()
	opts.Phrases = make([]particle.Phrase, len(c.Drift.Phrases))
	for i, p := range c.Drift.Phrases {
		opts.Phrases[i] = particle.Phrase(p)
	}
	opts.Sigma = c.Drift.Sigma
	opts.MaxSpeed = c.Drift.MaxSpeed
	opts.MinSpeed = c.Drift.MinSpeed
	opts.Damping = c.Drift.Damping
	return opts
}
