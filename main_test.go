package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/config"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

type silentLogger struct{}

func (silentLogger) Printf(format string, args ...interface{}) {}

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"two spheres", "two-spheres", false},
		{"two diffuse spheres", "two-spheres-diffuse", false},
		{"moving metal", "moving-metal", false},
		{"random spheres", "random-spheres", false},
		{"different dielectrics", "different-dielectrics", false},
		{"checker floor", "checker-floor", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	override := renderer.CameraOverride{Width: 64, AspectRatio: 2}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType, override)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.CameraConfig.Width != 64 || scene.CameraConfig.AspectRatio != 2 {
				t.Errorf("Expected camera override to apply, got %+v", scene.CameraConfig)
			}
			if scene.SamplingConfig.SamplesPerPixel <= 0 {
				t.Errorf("Scene samples per pixel should be positive, got %d", scene.SamplingConfig.SamplesPerPixel)
			}
		})
	}
}

func TestRun_WritesArtifacts(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Scene = "two-spheres"
	cfg.Width, cfg.Height = 12, 8
	cfg.SamplesPerPixel = 2
	cfg.MaxDepth = 5
	cfg.Output = filepath.Join(dir, "out", "image.ppm")
	cfg.PNGOutput = filepath.Join(dir, "out", "image.png")
	cfg.ThumbnailOutput = filepath.Join(dir, "thumbs", "image.png")
	cfg.ThumbnailSize = 6

	if err := run(context.Background(), cfg, silentLogger{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("Expected PPM output: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n12 8\n255\n") {
		t.Errorf("Unexpected PPM header: %q", string(data[:12]))
	}
	if lines := strings.Count(string(data), "\n"); lines != 3+12*8 {
		t.Errorf("Expected %d lines, got %d", 3+12*8, lines)
	}

	for _, path := range []string{cfg.PNGOutput, cfg.ThumbnailOutput} {
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("Expected %s to be written: %v", path, err)
		}
	}
}

func TestRun_UnknownScene(t *testing.T) {
	cfg := config.Default()
	cfg.Scene = "nonexistent"
	cfg.Output = filepath.Join(t.TempDir(), "image.ppm")

	if err := run(context.Background(), cfg, silentLogger{}); err == nil {
		t.Error("Expected error for unknown scene")
	}
	if _, err := os.Stat(cfg.Output); !os.IsNotExist(err) {
		t.Error("Expected no output for a failed render")
	}
}
