package material

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Material interface for objects that can scatter rays.
// Scatter returns false when the material absorbs the incoming ray.
type Material interface {
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// ID addresses a material inside a Palette
type ID int

// HitRecord contains information about a ray-object intersection.
// Normal is the outward surface normal; it is not flipped towards the ray.
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward surface normal at intersection
	Material ID        // Material of the hit object
}
