package integrator

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// minHitDistance keeps scattered rays from re-hitting the surface they leave
const minHitDistance = 0.001

// PathTracingIntegrator follows one scattered ray per bounce until it escapes to the sky
type PathTracingIntegrator struct {
	maxDepth   int
	raysTraced int64
}

// NewPathTracingIntegrator creates an integrator that gives up after maxDepth bounces
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// RayColor computes the color for a camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, palette *material.Palette, sampler core.Sampler) core.Vec3 {
	return pt.Trace(ray, world, palette, 0, sampler)
}

// Trace returns the radiance carried back along a ray that has already bounced depth times.
// A miss returns the sky; absorption or reaching the depth limit returns black.
func (pt *PathTracingIntegrator) Trace(ray core.Ray, world geometry.Hittable, palette *material.Palette, depth int, sampler core.Sampler) core.Vec3 {
	pt.raysTraced++

	hit, isHit := world.Hit(ray, minHitDistance, math.MaxFloat64)
	if !isHit {
		return backgroundGradient(ray)
	}
	if depth >= pt.maxDepth {
		return core.Vec3{}
	}

	scatter, didScatter := palette.Get(hit.Material).Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{}
	}

	return scatter.Attenuation.MultiplyVec(pt.Trace(scatter.Scattered, world, palette, depth+1, sampler))
}

// RaysTraced counts every ray intersected with the world, camera rays and bounces alike
func (pt *PathTracingIntegrator) RaysTraced() int64 {
	return pt.raysTraced
}

// backgroundGradient blends white at the horizon into sky blue overhead
func backgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	white := core.NewVec3(1, 1, 1)
	sky := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1.0 - t).Add(sky.Multiply(t))
}
