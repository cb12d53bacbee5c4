package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// EnvPrefix prefixes every environment variable and .env key
const EnvPrefix = "PT_"

// Config contains everything needed to render and publish one image
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
	Scene           string
	Output          string // PPM path
	PNGOutput       string // Optional PNG copy
	ThumbnailOutput string // Optional downscaled preview
	ThumbnailSize   int    // Longest thumbnail side in pixels
	Gamma           string // "sqrt", "none" or a numeric display gamma
	ShutterOpen     float64
	ShutterClose    float64
	S3              S3Config
}

// S3Config describes the optional upload target
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // Empty for AWS, set for S3-compatible stores
	Prefix    string // Key prefix for uploaded objects
	AccessKey string
	SecretKey string
}

// Enabled reports whether uploads were requested
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Width:           400,
		Height:          300,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
		Scene:           "random-spheres",
		Output:          "image.ppm",
		ThumbnailSize:   256,
		Gamma:           "sqrt",
		ShutterOpen:     0,
		ShutterClose:    0.1,
		S3: S3Config{
			Region: "us-east-1",
		},
	}
}

// Load merges the defaults with envFile (if it exists) and then with the process environment.
// An empty envFile skips the file.
func Load(envFile string) (Config, error) {
	values := map[string]string{}
	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		for key, value := range fileValues {
			values[key] = value
		}
	}

	cfg := Default()
	for _, binding := range cfg.fields() {
		key := EnvPrefix + binding.key
		value, ok := os.LookupEnv(key)
		if !ok {
			value, ok = values[key]
		}
		if !ok {
			continue
		}
		if err := binding.set(value); err != nil {
			return Config{}, fmt.Errorf("invalid %s=%q: %w", key, value, err)
		}
	}

	return cfg, nil
}

// RegisterFlags binds command line flags to the configuration; parsed flags override loaded values
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.Width, "width", c.Width, "Image width in pixels")
	flags.IntVar(&c.Height, "height", c.Height, "Image height in pixels")
	flags.IntVar(&c.SamplesPerPixel, "samples", c.SamplesPerPixel, "Samples per pixel")
	flags.IntVar(&c.MaxDepth, "max-depth", c.MaxDepth, "Maximum ray bounce depth")
	flags.Int64Var(&c.Seed, "seed", c.Seed, "Random seed")
	flags.StringVar(&c.Scene, "scene", c.Scene, "Scene to render")
	flags.StringVar(&c.Output, "output", c.Output, "PPM output path")
	flags.StringVar(&c.PNGOutput, "png", c.PNGOutput, "Optional PNG output path")
	flags.StringVar(&c.ThumbnailOutput, "thumbnail", c.ThumbnailOutput, "Optional thumbnail output path")
	flags.IntVar(&c.ThumbnailSize, "thumbnail-size", c.ThumbnailSize, "Longest thumbnail side in pixels")
	flags.StringVar(&c.Gamma, "gamma", c.Gamma, "Gamma correction: sqrt, none or a display gamma such as 2.2")
	flags.Float64Var(&c.ShutterOpen, "shutter-open", c.ShutterOpen, "Shutter open time")
	flags.Float64Var(&c.ShutterClose, "shutter-close", c.ShutterClose, "Shutter close time")
	flags.StringVar(&c.S3.Bucket, "s3-bucket", c.S3.Bucket, "Upload results to this bucket")
	flags.StringVar(&c.S3.Prefix, "s3-prefix", c.S3.Prefix, "Key prefix for uploads")
}

// Validate checks that the configuration can produce an image
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	case c.ShutterClose < c.ShutterOpen:
		return fmt.Errorf("shutter closes (%g) before it opens (%g)", c.ShutterClose, c.ShutterOpen)
	case c.Output == "":
		return errors.New("output path is required")
	case c.ThumbnailOutput != "" && c.ThumbnailSize <= 0:
		return fmt.Errorf("thumbnail size must be positive, got %d", c.ThumbnailSize)
	}

	if _, err := c.GammaFunc(); err != nil {
		return err
	}
	return nil
}

// GammaFunc resolves the configured gamma correction
func (c Config) GammaFunc() (renderer.GammaFunc, error) {
	switch c.Gamma {
	case "", "sqrt":
		return renderer.GammaSqrt, nil
	case "none":
		return renderer.GammaNone, nil
	}

	gamma, err := strconv.ParseFloat(c.Gamma, 64)
	if err != nil || gamma <= 0 {
		return nil, fmt.Errorf("unknown gamma %q: use sqrt, none or a positive number", c.Gamma)
	}
	return renderer.GammaExponent(gamma), nil
}

// SamplingConfig returns the renderer sampling settings
func (c Config) SamplingConfig() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
	}
}

// CameraOverride returns the camera fields the configuration controls.
// The shutter always applies, so a zero-width shutter disables motion blur.
func (c Config) CameraOverride() renderer.CameraOverride {
	return renderer.CameraOverride{
		Width:       c.Width,
		AspectRatio: float64(c.Width) / float64(c.Height),
		Shutter:     &[2]float64{c.ShutterOpen, c.ShutterClose},
	}
}

// field binds an environment key to a configuration value
type field struct {
	key string
	set func(string) error
}

func (c *Config) fields() []field {
	return []field{
		{"WIDTH", intSetter(&c.Width)},
		{"HEIGHT", intSetter(&c.Height)},
		{"SAMPLES", intSetter(&c.SamplesPerPixel)},
		{"MAX_DEPTH", intSetter(&c.MaxDepth)},
		{"SEED", int64Setter(&c.Seed)},
		{"SCENE", stringSetter(&c.Scene)},
		{"OUTPUT", stringSetter(&c.Output)},
		{"PNG_OUTPUT", stringSetter(&c.PNGOutput)},
		{"THUMBNAIL_OUTPUT", stringSetter(&c.ThumbnailOutput)},
		{"THUMBNAIL_SIZE", intSetter(&c.ThumbnailSize)},
		{"GAMMA", stringSetter(&c.Gamma)},
		{"SHUTTER_OPEN", floatSetter(&c.ShutterOpen)},
		{"SHUTTER_CLOSE", floatSetter(&c.ShutterClose)},
		{"S3_BUCKET", stringSetter(&c.S3.Bucket)},
		{"S3_REGION", stringSetter(&c.S3.Region)},
		{"S3_ENDPOINT", stringSetter(&c.S3.Endpoint)},
		{"S3_PREFIX", stringSetter(&c.S3.Prefix)},
		{"S3_ACCESS_KEY", stringSetter(&c.S3.AccessKey)},
		{"S3_SECRET_KEY", stringSetter(&c.S3.SecretKey)},
	}
}

func intSetter(target *int) func(string) error {
	return func(value string) error {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		*target = parsed
		return nil
	}
}

func int64Setter(target *int64) func(string) error {
	return func(value string) error {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		*target = parsed
		return nil
	}
}

func floatSetter(target *float64) func(string) error {
	return func(value string) error {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		*target = parsed
		return nil
	}
}

func stringSetter(target *string) func(string) error {
	return func(value string) error {
		*target = value
		return nil
	}
}
