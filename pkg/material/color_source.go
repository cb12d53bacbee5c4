package material

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// checkerFrequency is the number of checks per 2π units along each axis
const checkerFrequency = 10.0

// CheckerTexture alternates between two color sources in 3D space
type CheckerTexture struct {
	Even ColorSource
	Odd  ColorSource
}

// NewCheckerTexture creates a solid 3D checker pattern
func NewCheckerTexture(even, odd ColorSource) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd}
}

// Evaluate picks Even where sin(10x)·sin(10y)·sin(10z) is positive
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(checkerFrequency*point.X) *
		math.Sin(checkerFrequency*point.Y) *
		math.Sin(checkerFrequency*point.Z)
	if sines > 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}
