package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int               // Image width in pixels
	Height          int               // Image height in pixels
	SamplesPerPixel int               // Camera rays per pixel
	Objects         int               // Top-level objects in the world
	RaysTraced      int64             // Camera rays and bounces alike
	BVH             geometry.BVHStats // Shape of the acceleration structure
	Elapsed         time.Duration     // Wall time including BVH construction
}

// TotalPixels returns the number of pixels rendered
func (s RenderStats) TotalPixels() int {
	return s.Width * s.Height
}

// AverageDepth returns the mean number of rays traced per camera ray
func (s RenderStats) AverageDepth() float64 {
	cameraRays := s.TotalPixels() * s.SamplesPerPixel
	if cameraRays == 0 {
		return 0
	}
	return float64(s.RaysTraced) / float64(cameraRays)
}

// String summarizes the statistics on one line
func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d @ %d spp, %d objects, BVH %d nodes (depth %d), %d rays (%.2f per sample), %v",
		s.Width, s.Height, s.SamplesPerPixel, s.Objects,
		s.BVH.Nodes, s.BVH.MaxDepth, s.RaysTraced, s.AverageDepth(), s.Elapsed)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
		}
	}
	return total / (float64(pixels) * 0xffff)
}
