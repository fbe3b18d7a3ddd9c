package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/asciistage/internal/config"
	"github.com/san-kum/asciistage/internal/logging"
	"github.com/san-kum/asciistage/internal/registry"
	"github.com/san-kum/asciistage/internal/viz"
)

var (
	configFile string
	preset     string
	fps        int
	seed       int64
	logFile    string
	logLevel   string
	theme      string

	width  float64
	height float64
	dpr    float64
	at     float64
	format string
	runs   int

	logSink io.Closer
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "asciistage",
		Short: "procedural ascii animation scenes for the terminal",
		Long: `asciistage plays, records and inspects ascii animation scenes:
a staged vignette, a pointer-repelled glyph wash and drifting phrases.`,
		SilenceUsage:       true,
		PersistentPreRunE:  setupLogging,
		PersistentPostRunE: closeLogging,
		Args:               cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return playScene(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVarP(&preset, "preset", "p", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	playCmd := &cobra.Command{
		Use:   "play [scene]",
		Short: "play a scene in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playScene,
	}
	playCmd.Flags().StringVar(&theme, "theme", "", "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	playCmd.Flags().StringP("out", "o", "asciistage.gif", "gif path for in-app recording")

	pickCmd := &cobra.Command{
		Use:   "pick",
		Short: "choose a scene and preset interactively",
		Args:  cobra.NoArgs,
		RunE:  pickScene,
	}
	pickCmd.Flags().StringVar(&theme, "theme", "", "colour theme")
	pickCmd.Flags().StringP("out", "o", "asciistage.gif", "gif path for in-app recording")

	recordCmd := &cobra.Command{
		Use:   "record [scene]",
		Short: "render a scene headlessly to an animated gif",
		Args:  cobra.MaximumNArgs(1),
		RunE:  recordScene,
	}
	recordCmd.Flags().IntP("frames", "n", 90, "number of frames")
	recordCmd.Flags().StringP("out", "o", "asciistage.gif", "output gif path")
	recordCmd.Flags().Float64Var(&width, "width", 640, "surface width in layout units")
	recordCmd.Flags().Float64Var(&height, "height", 400, "surface height in layout units")
	recordCmd.Flags().Float64Var(&dpr, "dpr", 1, "device pixel ratio (capped at 2)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [scene]",
		Short: "write a single frame as text, svg or png",
		Args:  cobra.MaximumNArgs(1),
		RunE:  snapshotScene,
	}
	snapshotCmd.Flags().Float64Var(&at, "at", 2, "virtual time of the frame in seconds")
	snapshotCmd.Flags().StringVarP(&format, "format", "f", "txt", "output format (txt, svg, png)")
	snapshotCmd.Flags().StringP("out", "o", "", "output path (stdout for txt/svg when empty)")
	snapshotCmd.Flags().Float64Var(&width, "width", 640, "surface width in layout units")
	snapshotCmd.Flags().Float64Var(&height, "height", 400, "surface height in layout units")
	snapshotCmd.Flags().Float64Var(&dpr, "dpr", 1, "device pixel ratio for png")

	traceCmd := &cobra.Command{
		Use:   "trace [stage|wash|drift]",
		Short: "plot a scene diagnostic over time",
		Long: `trace runs a scene headlessly and plots its diagnostic series:
stage progress for the vignette, mean particle speed for the wash and
velocity variance for the drifting phrases.`,
		Args: cobra.MaximumNArgs(1),
		RunE: traceScene,
	}
	traceCmd.Flags().IntP("frames", "n", 300, "number of frames")
	traceCmd.Flags().IntVarP(&runs, "runs", "r", 1, "seeds to average")
	traceCmd.Flags().StringP("out", "o", "", "also write the series as svg")
	traceCmd.Flags().String("csv", "", "also write the series as csv")
	traceCmd.Flags().Float64Var(&width, "width", 640, "surface width in layout units")
	traceCmd.Flags().Float64Var(&height, "height", 400, "surface height in layout units")

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list available scenes",
		Args:  cobra.NoArgs,
		RunE:  listScenes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scene]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "asciistage.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(playCmd, pickCmd, recordCmd, snapshotCmd, traceCmd, scenesCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if logFile == "" {
		return nil
	}
	lvl, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logSink = f
	logging.SetLogger(logging.NewText(f, lvl))
	logging.Logger().Info("starting", "command", cmd.Name())
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) error {
	if logSink == nil {
		return nil
	}
	logging.SetLogger(nil)
	return logSink.Close()
}

// sceneAliases maps diagnostic names onto the scene that produces them.
var sceneAliases = map[string]string{
	"stage": "vignette",
	"wash":  "hero",
}

// resolveConfig builds the run configuration: config file or defaults,
// replaced by a preset when one is named, then explicit flags on top.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	scene := cfg.Scene
	if len(args) > 0 {
		scene = args[0]
	}
	if alias, ok := sceneAliases[scene]; ok {
		scene = alias
	}

	if preset != "" {
		p := config.GetPreset(scene, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(scene))
		}
		cfg = p
	}
	cfg.Scene = scene

	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("dpr") {
		cfg.Surface.DPR = dpr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func playScene(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	r, err := registry.NewRegistry().Get(cfg.Scene, cfg)
	if err != nil {
		return err
	}
	logging.Logger().Info("playing", "scene", cfg.Scene, "fps", cfg.FPS, "seed", cfg.Seed)
	return viz.Run(viz.NewModel(r, viewOptions(cmd, cfg)))
}

func pickScene(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	return viz.RunPicker(registry.NewRegistry(), cfg, viewOptions(cmd, cfg))
}

func viewOptions(cmd *cobra.Command, cfg *config.Config) viz.Options {
	gifPath, _ := cmd.Flags().GetString("out")
	return viz.Options{
		Scene:   cfg.Scene,
		FPS:     cfg.FPS,
		CellW:   cfg.Surface.CellW,
		CellH:   cfg.Surface.CellH,
		GIFPath: gifPath,
		Theme:   theme,
	}
}

func listScenes(cmd *cobra.Command, args []string) error {
	reg := registry.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENE\tPRESETS\tDESCRIPTION")
	for _, name := range reg.ListScenes() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, strings.Join(config.ListPresets(name), ","), reg.Describe(name))
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	scenes := registry.NewRegistry().ListScenes()
	if len(args) > 0 {
		scenes = []string{args[0]}
		if alias, ok := sceneAliases[args[0]]; ok {
			scenes[0] = alias
		}
	}
	for _, scene := range scenes {
		presets := config.ListPresets(scene)
		if len(presets) == 0 {
			continue
		}
		fmt.Printf("%s:\n", scene)
		for _, p := range presets {
			fmt.Printf("  %s\n", p)
		}
	}
	return nil
}
