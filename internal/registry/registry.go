package registry

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/san-kum/asciistage/internal/config"
	"github.com/san-kum/asciistage/internal/render"
)

// Factory builds a scene renderer from configuration.
type Factory func(cfg *config.Config, rng *rand.Rand) (render.Renderer, error)

type entry struct {
	description string
	build       Factory
}

type Registry struct {
	scenes map[string]entry
}

func NewRegistry() *Registry {
	r := &Registry{scenes: make(map[string]entry)}

	r.Register("vignette", "staged ASCII figure walking between labelled anchors", func(cfg *config.Config, _ *rand.Rand) (render.Renderer, error) {
		opts, err := cfg.VignetteOptions()
		if err != nil {
			return nil, err
		}
		return render.NewVignette(opts), nil
	})
	r.Register("hero", "glyph wash repelled by the pointer", func(cfg *config.Config, rng *rand.Rand) (render.Renderer, error) {
		return render.NewHero(cfg.WashOptions(), rng), nil
	})
	r.Register("drift", "phrases drifting with Brownian velocity", func(cfg *config.Config, rng *rand.Rand) (render.Renderer, error) {
		return render.NewDrift(cfg.DriftOptions(), rng), nil
	})

	return r
}

// Register adds or replaces a scene.
func (r *Registry) Register(name, description string, f Factory) {
	r.scenes[name] = entry{description: description, build: f}
}

// Get builds the named scene seeded from cfg.Seed.
func (r *Registry) Get(name string, cfg *config.Config) (render.Renderer, error) {
	e, ok := r.scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", render.ErrUnknownScene, name)
	}
	return e.build(cfg, rand.New(rand.NewSource(cfg.Seed)))
}

func (r *Registry) Describe(name string) string {
	return r.scenes[name].description
}

func (r *Registry) ListScenes() []string {
	names := make([]string, 0, len(r.scenes))
	for name := range r.scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
