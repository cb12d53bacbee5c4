package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// A sampler is threaded explicitly through camera ray generation, material
// scattering and BVH construction; it is not safe for concurrent use, so a
// parallel renderer must give every worker its own sampler.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with a deterministic seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SampleRange returns a uniform value in [lo, hi)
func SampleRange(sampler Sampler, lo, hi float64) float64 {
	return lo + sampler.Get1D()*(hi-lo)
}

// SampleAxis returns a uniformly chosen axis index in {0, 1, 2}
func SampleAxis(sampler Sampler) int {
	axis := int(sampler.Get1D() * 3)
	return Clamp(axis, 0, 2)
}

// RandomInUnitBall generates a uniform random point strictly inside the unit ball
func RandomInUnitBall(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1)³ cube
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		// Accept if inside unit ball
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInUnitDisk generates a random point in the unit disk on the XY plane (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
