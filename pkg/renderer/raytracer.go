package renderer

import (
	"fmt"
	"math"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// colorScale maps [0, 1] onto [0, 256) so truncation yields every byte value
const colorScale = 255.9999

// progressStep is the granularity of progress reports, in percent
const progressStep = 5

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// GammaFunc maps a linear color channel to a display channel
type GammaFunc func(float64) float64

// GammaSqrt is gamma 2 correction
func GammaSqrt(c float64) float64 { return math.Sqrt(c) }

// GammaNone leaves channels linear
func GammaNone(c float64) float64 { return c }

// GammaExponent returns the correction for an arbitrary display gamma
func GammaExponent(gamma float64) GammaFunc {
	inverse := 1.0 / gamma
	return func(c float64) float64 { return math.Pow(c, inverse) }
}

// Scene interface to avoid circular imports
type Scene interface {
	LoadWorld(sampler core.Sampler)
	World() *geometry.HittableList
	Palette() *material.Palette
}

// Renderer traces every pixel of an image serially
type Renderer struct {
	gamma  GammaFunc
	width  int
	height int
	config SamplingConfig
	logger core.Logger
	tracer *integrator.PathTracingIntegrator
	stats  RenderStats
}

// NewRenderer creates a renderer for images of the given size
func NewRenderer(gamma GammaFunc, width, height int, config SamplingConfig, logger core.Logger) *Renderer {
	if gamma == nil {
		gamma = GammaSqrt
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		gamma:  gamma,
		width:  width,
		height: height,
		config: config,
		logger: logger,
		tracer: integrator.NewPathTracingIntegrator(config.MaxDepth),
	}
}

// Stats returns statistics about the last call to ProcessScene
func (r *Renderer) Stats() RenderStats {
	stats := r.stats
	stats.RaysTraced = r.tracer.RaysTraced()
	return stats
}

// ProcessScene loads the scene's world, builds its BVH over the camera's shutter
// interval and paints every pixel of img. An empty world aborts the render.
func (r *Renderer) ProcessScene(scene Scene, camera *Camera, img *Image, sampler core.Sampler) error {
	if img.Width() != r.width || img.Height() != r.height {
		return fmt.Errorf("image is %dx%d, renderer expects %dx%d", img.Width(), img.Height(), r.width, r.height)
	}
	if r.config.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", r.config.SamplesPerPixel)
	}

	start := time.Now()
	r.tracer = integrator.NewPathTracingIntegrator(r.config.MaxDepth)
	scene.LoadWorld(sampler)

	r.logger.Printf("Pre-processing scene for faster rendering\n")
	bvh, err := geometry.NewBVHFromList(scene.World(), camera.ShutterOpen(), camera.ShutterClose(), sampler)
	if err != nil {
		return fmt.Errorf("failed to build BVH: %w", err)
	}

	r.stats = RenderStats{
		Width:           r.width,
		Height:          r.height,
		SamplesPerPixel: r.config.SamplesPerPixel,
		Objects:         scene.World().Len(),
		BVH:             bvh.Stats(),
	}
	palette := scene.Palette()

	progress := newProgressReporter(r.logger, r.height)
	for y := r.height - 1; y >= 0; y-- {
		for x := 0; x < r.width; x++ {
			img.PaintPixel(x, y, r.renderPixel(x, y, camera, bvh, palette, sampler))
		}
		progress.rowDone()
	}
	progress.finish()

	r.stats.Elapsed = time.Since(start)
	r.stats.RaysTraced = r.tracer.RaysTraced()
	r.logger.Printf("Render completed in %v (%d rays traced)\n", r.stats.Elapsed, r.stats.RaysTraced)
	return nil
}

// renderPixel averages jittered samples of pixel (x, y) and converts the result for display
func (r *Renderer) renderPixel(x, y int, camera *Camera, world geometry.Hittable, palette *material.Palette, sampler core.Sampler) core.Vec3 {
	var color core.Vec3
	for s := 0; s < r.config.SamplesPerPixel; s++ {
		u := (float64(x) + sampler.Get1D()) / float64(r.width)
		v := (float64(y) + sampler.Get1D()) / float64(r.height)
		ray := camera.GetRay(u, v, sampler)
		color = color.Add(r.tracer.RayColor(ray, world, palette, sampler))
	}

	color = color.Multiply(1.0 / float64(r.config.SamplesPerPixel))
	return color.Map(r.gamma).Multiply(colorScale)
}

// Color returns the radiance carried back along a ray that has already bounced depth times
func (r *Renderer) Color(ray core.Ray, world geometry.Hittable, palette *material.Palette, depth int, sampler core.Sampler) core.Vec3 {
	return r.tracer.Trace(ray, world, palette, depth, sampler)
}

// progressReporter logs completion in multiples of progressStep, each at most once
type progressReporter struct {
	logger   core.Logger
	rows     int
	done     int
	reported int
}

func newProgressReporter(logger core.Logger, rows int) *progressReporter {
	logger.Printf("0%% processing completed.\n")
	return &progressReporter{logger: logger, rows: rows}
}

func (p *progressReporter) rowDone() {
	p.done++
	percentage := 100 * p.done / p.rows
	if percentage >= p.reported+progressStep {
		p.reported = percentage - percentage%progressStep
		p.logger.Printf("%d%% processing completed.\n", p.reported)
	}
}

func (p *progressReporter) finish() {
	if p.reported < 100 {
		p.reported = 100
		p.logger.Printf("100%% processing completed.\n")
	}
}
