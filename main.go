package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-pathtracer/pkg/config"
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/publish"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

func main() {
	envFile := os.Getenv("PT_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	cfg.RegisterFlags(flag.CommandLine)
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Printf("Available scenes: %s\n", strings.Join(scene.Names(), ", "))
		fmt.Printf("Settings can also be given as %s* variables in the environment or in %s\n", config.EnvPrefix, envFile)
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := run(context.Background(), cfg, renderer.NewDefaultLogger()); err != nil {
		log.Fatalf("Render failed: %v", err)
	}
}

// run renders the configured scene, writes every requested artifact and uploads them if a bucket is set
func run(ctx context.Context, cfg config.Config, logger core.Logger) error {
	selectedScene, err := createScene(cfg.Scene, cfg.CameraOverride())
	if err != nil {
		return err
	}
	gamma, err := cfg.GammaFunc()
	if err != nil {
		return err
	}

	logger.Printf("Rendering %s (%dx%d, %d samples per pixel, max depth %d, seed %d)\n",
		selectedScene.Name, cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.MaxDepth, cfg.Seed)

	camera := renderer.NewCamera(selectedScene.CameraConfig)
	raytracer := renderer.NewRenderer(gamma, cfg.Width, cfg.Height, cfg.SamplingConfig(), logger)
	img := renderer.NewImage(cfg.Width, cfg.Height)

	if err := raytracer.ProcessScene(selectedScene, camera, img, core.NewSeededSampler(cfg.Seed)); err != nil {
		return err
	}
	logger.Printf("%s\n", raytracer.Stats())

	artifacts, err := saveArtifacts(cfg, img)
	if err != nil {
		return err
	}
	for _, artifact := range artifacts {
		logger.Printf("Render saved as %s\n", artifact)
	}

	if !cfg.S3.Enabled() {
		return nil
	}
	uploader, err := publish.NewS3Uploader(cfg.S3, logger)
	if err != nil {
		return err
	}
	for _, artifact := range artifacts {
		if _, err := uploader.UploadFile(ctx, artifact); err != nil {
			return err
		}
	}
	return nil
}

// createScene resolves a built-in scene by name
func createScene(sceneType string, cameraOverride renderer.CameraOverride) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene given (available: %s)", strings.Join(scene.Names(), ", "))
	}
	return scene.Lookup(sceneType, cameraOverride)
}

// saveArtifacts writes the PPM and any optional PNG and thumbnail, returning their paths
func saveArtifacts(cfg config.Config, img *renderer.Image) ([]string, error) {
	type artifact struct {
		path string
		save func(string) error
	}
	requested := []artifact{
		{cfg.Output, img.Save},
		{cfg.PNGOutput, img.SavePNG},
		{cfg.ThumbnailOutput, func(path string) error { return img.SaveThumbnail(path, uint(cfg.ThumbnailSize)) }},
	}

	var saved []string
	for _, a := range requested {
		if a.path == "" {
			continue
		}
		if dir := filepath.Dir(a.path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return saved, fmt.Errorf("error creating output directory: %w", err)
			}
		}
		if err := a.save(a.path); err != nil {
			return saved, err
		}
		saved = append(saved, a.path)
	}
	return saved, nil
}
