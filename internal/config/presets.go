package config

import "sort"

func preset(scene string, edit func(*Config)) *Config {
	cfg := DefaultConfig()
	cfg.Scene = scene
	edit(cfg)
	return cfg
}

var Presets = map[string]map[string]*Config{
	"vignette": {
		"calm": preset("vignette", func(c *Config) {
			c.Vignette.IdleSpeed = 0.08
			c.Vignette.HoverSpeed = 0.24
		}),
		"brisk": preset("vignette", func(c *Config) {
			c.Vignette.IdleSpeed = 0.32
			c.Vignette.HoverSpeed = 0.8
			c.Vignette.Window = 0.6
		}),
		"mono": preset("vignette", func(c *Config) {
			c.Vignette.Charset = "#"
			c.Vignette.ObjectColor = "#FFFFFF"
			c.Vignette.WashColor = "#60616a"
		}),
	},
	"hero": {
		"sparse": preset("hero", func(c *Config) {
			c.Wash.Density = 20000
			c.Wash.MinCount = 40
			c.Wash.MaxCount = 90
		}),
		"dense": preset("hero", func(c *Config) {
			c.Wash.Density = 4000
			c.Wash.MinCount = 160
			c.Wash.MaxCount = 400
		}),
		"repel": preset("hero", func(c *Config) {
			c.Wash.Radius = 200
			c.Wash.Push = 3.2
		}),
	},
	"drift": {
		"still": preset("drift", func(c *Config) {
			c.Drift.Sigma = 12
			c.Drift.MaxSpeed = 10
			c.Drift.MinSpeed = 1
		}),
		"jittery": preset("drift", func(c *Config) {
			c.Drift.Sigma = 90
			c.Drift.MaxSpeed = 60
			c.Drift.Damping = 0.95
		}),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(scene, name string) *Config {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	cfg, ok := scenePresets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(scene string) []string {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenePresets))
	for name := range scenePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
