package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/df07/go-scanline-raytracer/pkg/camera"
	"github.com/df07/go-scanline-raytracer/pkg/config"
	"github.com/df07/go-scanline-raytracer/pkg/loaders"
	"github.com/df07/go-scanline-raytracer/pkg/logger"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

// scenesDir holds the YAML scenes that can be selected by bare name
const scenesDir = "scenes"

var flagListScenes = flag.Bool("list-scenes", false, "List available scenes and exit")

func main() {
	config.ParseFlags()

	if *flagListScenes {
		if err := listScenes(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(2)
	}

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := render(ctx, cfg, logger.Log, os.Stderr); err != nil {
		logger.Log.Error("render failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// render builds the scene and camera described by cfg, renders, and saves the image
func render(ctx context.Context, cfg *config.Config, log *zap.Logger, progress io.Writer) error {
	sc, err := createScene(cfg.Scene)
	if err != nil {
		return err
	}

	cam, err := createCamera(cfg, sc)
	if err != nil {
		return err
	}

	log.Info("scene ready",
		zap.String("scene", sc.Name),
		zap.Int("objects", len(sc.Objects)),
		zap.String("filter", cfg.Render.Filter),
	)

	raytracer := renderer.NewRaytracer(sc, cam, log.Named("renderer"))
	raytracer.SetWorkers(cfg.Render.Workers)
	raytracer.SetProgress(func(done, total int) {
		fmt.Fprintf(progress, "\rCompleted %d / %d lines", done, total)
		if done == total {
			fmt.Fprintln(progress)
		}
	})

	buf, stats, err := raytracer.Render(ctx)
	if err != nil {
		fmt.Fprintln(progress)
		return err
	}

	if dir := filepath.Dir(cfg.Output.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := buf.Save(cfg.Output.Path); err != nil {
		return err
	}

	log.Info("image saved",
		zap.String("path", cfg.Output.Path),
		zap.Int("width", stats.Width),
		zap.Int("height", stats.Height),
		zap.Duration("duration", stats.Duration),
	)
	return nil
}

// listScenes prints the built-in scenes and those found in the scenes directory
func listScenes(w io.Writer) error {
	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}
	for _, info := range scenes {
		fmt.Fprintf(w, "  %-16s %-8s %s\n", info.ID, info.Type, info.Description)
	}
	return nil
}

// createScene resolves a built-in scene name, a scene file in the scenes
// directory, or a path to a YAML scene file
func createScene(name string) (*scene.Scene, error) {
	if name == "" {
		return nil, errors.New("no scene given")
	}

	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".yaml" || ext == ".yml" {
		return loaders.LoadScene(name)
	}

	s, err := scene.ByName(name)
	if errors.Is(err, scene.ErrUnknownScene) {
		if path, ok := scene.FindSceneFile(scenesDir, name); ok {
			return loaders.LoadScene(path)
		}
	}
	return s, err
}

// createCamera combines the scene's bearings with the configured overrides
func createCamera(cfg *config.Config, sc *scene.Scene) (*camera.Camera, error) {
	bearings, err := cfg.Bearings(sc.Bearings)
	if err != nil {
		return nil, err
	}
	img, err := cfg.ImageSettings()
	if err != nil {
		return nil, err
	}
	rs, err := cfg.RenderSettings()
	if err != nil {
		return nil, err
	}
	filter, err := camera.NewFilter(cfg.Render.Filter)
	if err != nil {
		return nil, err
	}

	cam, err := camera.NewCamera(bearings, img, rs)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", sc.Name, err)
	}
	cam.SetFilter(filter)
	return cam, nil
}
