package geometry

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// SnapshotInterval is the time step used to sample a moving sphere when bounding it
const SnapshotInterval = 0.001

// CenterFunc gives the center of a sphere at a given time
type CenterFunc func(time float64) core.Vec3

// RadiusFunc gives the radius of a sphere at a given time
type RadiusFunc func(time float64) float64

// Sphere represents a sphere shape whose center and radius may vary with time
type Sphere struct {
	center   CenterFunc
	radius   RadiusFunc
	static   bool
	Material material.ID
}

// NewSphere creates a new static sphere
func NewSphere(center core.Vec3, radius float64, mat material.ID) *Sphere {
	return &Sphere{
		center:   func(float64) core.Vec3 { return center },
		radius:   func(float64) float64 { return radius },
		static:   true,
		Material: mat,
	}
}

// NewMovingSphere creates a sphere moving linearly from centerFrom at time0 to centerTo at time1.
// An empty time range gives a static sphere at centerFrom.
func NewMovingSphere(centerFrom, centerTo core.Vec3, time0, time1, radius float64, mat material.ID) *Sphere {
	if time1 == time0 {
		return NewSphere(centerFrom, radius, mat)
	}
	velocity := centerTo.Subtract(centerFrom).Multiply(1.0 / (time1 - time0))
	return NewAnimatedSphere(
		func(t float64) core.Vec3 { return centerFrom.Add(velocity.Multiply(t - time0)) },
		func(float64) float64 { return radius },
		mat,
	)
}

// NewAnimatedSphere creates a sphere with arbitrary time-dependent center and radius
func NewAnimatedSphere(center CenterFunc, radius RadiusFunc, mat material.ID) *Sphere {
	return &Sphere{center: center, radius: radius, Material: mat}
}

// Center returns the center at the given time
func (s *Sphere) Center(time float64) core.Vec3 {
	return s.center(time)
}

// Radius returns the radius at the given time
func (s *Sphere) Radius(time float64) float64 {
	return s.radius(time)
}

// IsStatic reports whether the sphere never moves
func (s *Sphere) IsStatic() bool {
	return s.static
}

// Hit tests if a ray intersects with the sphere at the ray's time
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	center := s.center(ray.Time)
	radius := s.radius(ray.Time)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - a*c
	if discriminant <= 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Nearer root first, both must lie strictly inside (tMin, tMax)
	root := (-b - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-b + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	return &material.HitRecord{
		T:        root,
		Point:    point,
		Normal:   point.Subtract(center).Multiply(1.0 / radius),
		Material: s.Material,
	}, true
}

// BoundingBox returns a box enclosing the sphere over [timeFrom, timeTo].
//
// Moving spheres are sampled every SnapshotInterval. Every snapshot is inflated
// by the largest displacement between consecutive snapshots so curved motion
// between samples stays inside the union.
func (s *Sphere) BoundingBox(timeFrom, timeTo float64) (core.AABB, bool) {
	if s.static {
		return sphereBox(s.center(timeFrom), s.radius(timeFrom)), true
	}

	times := snapshotTimes(timeFrom, timeTo)

	maxDisplacement := 0.0
	for i := 1; i < len(times); i++ {
		displacement := s.center(times[i]).Subtract(s.center(times[i-1])).Length()
		maxDisplacement = max(maxDisplacement, displacement)
	}

	box := sphereBox(s.center(times[0]), s.radius(times[0])+maxDisplacement)
	for _, t := range times[1:] {
		box = box.Union(sphereBox(s.center(t), s.radius(t)+maxDisplacement))
	}
	return box, true
}

// snapshotTimes samples [from, to] every SnapshotInterval, always including both ends
func snapshotTimes(from, to float64) []float64 {
	if to <= from {
		return []float64{from}
	}
	count := int(math.Ceil((to - from) / SnapshotInterval))
	times := make([]float64, 0, count+1)
	for i := 0; i < count; i++ {
		t := from + float64(i)*SnapshotInterval
		if t >= to {
			break
		}
		times = append(times, t)
	}
	return append(times, to)
}

// sphereBox returns the smallest box containing a static sphere
func sphereBox(center core.Vec3, radius float64) core.AABB {
	extent := core.NewVec3(radius, radius, radius)
	return core.NewAABB(center.Subtract(extent), center.Add(extent))
}
