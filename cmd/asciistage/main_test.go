package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/asciistage/internal/config"
)

func newFlagCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "")
	return cmd
}

func resetFlags() {
	configFile, preset = "", ""
}

func TestResolveConfigDefaults(t *testing.T) {
	defer resetFlags()
	cmd := newFlagCmd()
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scene != config.DefaultScene || cfg.FPS != config.DefaultFPS {
		t.Errorf("expected defaults, got %s at %d fps", cfg.Scene, cfg.FPS)
	}
}

func TestResolveConfigAliasAndFlags(t *testing.T) {
	defer resetFlags()
	cmd := newFlagCmd()
	if err := cmd.Flags().Parse([]string{"--fps", "60", "--seed", "7"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := resolveConfig(cmd, []string{"wash"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scene != "hero" {
		t.Errorf("expected wash to resolve to hero, got %s", cfg.Scene)
	}
	if cfg.FPS != 60 || cfg.Seed != 7 {
		t.Errorf("flags should override, got fps %d seed %d", cfg.FPS, cfg.Seed)
	}
}

func TestResolveConfigPreset(t *testing.T) {
	defer resetFlags()
	preset = "dense"
	cfg, err := resolveConfig(newFlagCmd(), []string{"hero"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Wash.Density != 4000 {
		t.Errorf("expected dense preset density, got %g", cfg.Wash.Density)
	}

	preset = "nope"
	_, err = resolveConfig(newFlagCmd(), []string{"hero"})
	if err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Errorf("expected unknown preset error, got %v", err)
	}
}

func TestResolveConfigFile(t *testing.T) {
	defer resetFlags()
	path := filepath.Join(t.TempDir(), "stage.yaml")
	c := config.DefaultConfig()
	c.Scene = "drift"
	c.FPS = 24
	if err := config.Save(path, c); err != nil {
		t.Fatal(err)
	}

	configFile = path
	cfg, err := resolveConfig(newFlagCmd(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scene != "drift" || cfg.FPS != 24 {
		t.Errorf("expected file values, got %s at %d fps", cfg.Scene, cfg.FPS)
	}

	configFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := resolveConfig(newFlagCmd(), nil); err == nil {
		t.Error("expected error for missing config")
	}
}
