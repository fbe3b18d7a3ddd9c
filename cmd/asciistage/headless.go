package main

import (
	"fmt"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/asciistage/internal/config"
	"github.com/san-kum/asciistage/internal/export"
	"github.com/san-kum/asciistage/internal/fonts"
	"github.com/san-kum/asciistage/internal/logging"
	"github.com/san-kum/asciistage/internal/registry"
	"github.com/san-kum/asciistage/internal/render"
	"github.com/san-kum/asciistage/internal/sim"
)

// imageSurface builds a pixel surface with the bundled font, falling back to
// the basic face when it cannot be parsed.
func imageSurface(cfg *config.Config) (*render.ImageSurface, *fonts.Faces) {
	faces, err := fonts.LoadMono()
	if err != nil {
		logging.Logger().Warn("font load failed, using basic face", "err", err)
		return render.NewImageSurface(width, height, cfg.Surface.DPR, nil), nil
	}
	return render.NewImageSurface(width, height, cfg.Surface.DPR, faces), faces
}

func termSurface(cfg *config.Config) *render.TermSurface {
	cols := max(1, int(width/cfg.Surface.CellW))
	rows := max(1, int(height/cfg.Surface.CellH))
	return render.NewTermSurface(cols, rows, cfg.Surface.CellW, cfg.Surface.CellH)
}

// addDriver gives a headless scene the input a viewer would: the wash gets a
// sweeping pointer, the vignette goes to hover halfway through.
func addDriver(sess *registry.Session, total float64) {
	switch sess.Name {
	case "hero":
		sess.Loop.AddObserver(sim.PointerSweep{})
	case "vignette":
		sess.Loop.AddObserver(sim.HoverAfter{At: total / 2})
	}
}

func recordScene(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	n, _ := cmd.Flags().GetInt("frames")
	path, _ := cmd.Flags().GetString("out")

	surface, faces := imageSurface(cfg)
	sess, err := registry.NewRegistry().NewSession(cfg.Scene, cfg, surface)
	if err != nil {
		return err
	}
	if faces != nil {
		sess.Player.FontsReady(faces)
	}
	addDriver(sess, float64(n)/float64(cfg.FPS))

	ctx, cancel := interruptContext()
	defer cancel()

	rec := export.NewRecorder(cfg.FPS)
	fmt.Printf("recording %s: %d frames at %d fps...\n", cfg.Scene, n, cfg.FPS)
	start := time.Now()

	err = sess.Loop.RunWithCallback(ctx, sess.SimConfig(n), func(frame int, t float64) bool {
		rec.Capture(surface.Image())
		return true
	})
	if err != nil {
		return fmt.Errorf("record interrupted after %d frames: %w", rec.Len(), err)
	}
	if err := rec.Save(path); err != nil {
		return fmt.Errorf("failed to save gif: %w", err)
	}

	logging.Logger().Info("recorded", "scene", cfg.Scene, "frames", rec.Len(), "path", path)
	fmt.Printf("completed in %v\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("saved %d frames to %s\n", rec.Len(), path)
	return nil
}

func snapshotScene(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("out")
	reg := registry.NewRegistry()

	ctx, cancel := interruptContext()
	defer cancel()

	switch format {
	case "png":
		if path == "" {
			path = cfg.Scene + ".png"
		}
		surface, faces := imageSurface(cfg)
		sess, err := reg.NewSession(cfg.Scene, cfg, surface)
		if err != nil {
			return err
		}
		if faces != nil {
			sess.Player.FontsReady(faces)
		}
		addDriver(sess, at*2)
		if _, err := sess.Run(ctx, sess.FramesUntil(at)); err != nil {
			return err
		}
		if err := export.SavePNG(path, surface.Image()); err != nil {
			return fmt.Errorf("failed to save png: %w", err)
		}
		fmt.Printf("wrote %s\n", path)
		return nil

	case "txt", "svg":
		surface := termSurface(cfg)
		sess, err := reg.NewSession(cfg.Scene, cfg, surface)
		if err != nil {
			return err
		}
		addDriver(sess, at*2)
		if _, err := sess.Run(ctx, sess.FramesUntil(at)); err != nil {
			return err
		}

		text := surface.Plain()
		if format == "svg" {
			text = export.SurfaceToSVG(surface)
		}
		if path == "" {
			fmt.Print(text)
			return nil
		}
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	}
	return fmt.Errorf("unknown format: %s (use txt, svg or png)", format)
}

func traceScene(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	n, _ := cmd.Flags().GetInt("frames")
	path, _ := cmd.Flags().GetString("out")
	csvPath, _ := cmd.Flags().GetString("csv")
	if runs < 1 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}

	reg := registry.NewRegistry()
	factory := func(s int64) (*sim.Loop, error) {
		c := cfg.Clone()
		c.Seed = s
		sess, err := reg.NewSession(c.Scene, c, termSurface(c))
		if err != nil {
			return nil, err
		}
		addDriver(sess, float64(n)/float64(c.FPS))
		return sess.Loop, nil
	}

	ctx, cancel := interruptContext()
	defer cancel()

	fmt.Printf("tracing %s: %d frames x %d runs...\n", cfg.Scene, n, runs)
	results, err := sim.NewEnsemble(factory, runs, cfg.Seed).Run(ctx, sim.Config{FPS: cfg.FPS, Frames: n, Start: time.Unix(0, 0)})
	if err != nil {
		return err
	}

	for name := range results[0].Series {
		data := sim.MeanSeries(results, name)
		if len(data) < 2 {
			continue
		}
		caption := fmt.Sprintf("%s (%s, %d runs)", name, cfg.Scene, runs)
		graph := asciigraph.Plot(data,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Printf("final %s: %.6f\n", name, data[len(data)-1])

		if path != "" {
			if err := os.WriteFile(path, []byte(export.SeriesToSVG(data, 800, 300, "#d4a574")), 0644); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
		}
	}

	if csvPath != "" {
		mean := make(map[string][]float64, len(results[0].Series))
		for name := range results[0].Series {
			mean[name] = sim.MeanSeries(results, name)
		}
		if err := export.SaveSeriesCSV(csvPath, results[0].Times, mean); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}
	return nil
}
