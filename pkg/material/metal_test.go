package material

import (
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// constantSampler returns the same value for every draw
type constantSampler struct {
	value float64
}

func (c constantSampler) Get1D() float64 { return c.value }
func (c constantSampler) Get2D() core.Vec2 {
	return core.NewVec2(c.value, c.value)
}
func (c constantSampler) Get3D() core.Vec3 {
	return core.NewVec3(c.value, c.value, c.value)
}

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewSeededSampler(42)

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRayAt(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1), 0.3)
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Scattered.Direction.Normalize()
	if actual.Subtract(expected).Length() > 1e-10 {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
	if scatter.Scattered.Time != rayIn.Time {
		t.Errorf("Scattered ray should keep the incoming time %f, got %f", rayIn.Time, scatter.Scattered.Time)
	}
}

func TestMetal_NoFuzzNeverAbsorbsCleanReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	sampler := core.NewSeededSampler(5)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}

	for i := 0; i < 1000; i++ {
		// Shallow but clean incoming directions always reflect above the surface
		dir := core.NewVec3(1, -0.01-sampler.Get1D(), sampler.Get1D()-0.5)
		rayIn := core.NewRay(hit.Point.Subtract(dir), dir)
		if _, ok := metal.Scatter(rayIn, hit, sampler); !ok {
			t.Fatalf("Mirror metal absorbed a clean reflection for direction %v", dir)
		}
	}
}

func TestMetal_ScatterAbsorption(t *testing.T) {
	// Maximum fuzz against a grazing ray sometimes pushes the reflection below the surface
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	sampler := core.NewSeededSampler(123)

	rayIn := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}

	absorbed, scattered := 0, 0
	for i := 0; i < 1000; i++ {
		result, ok := metal.Scatter(rayIn, hit, sampler)
		if ok {
			scattered++
			if result.Scattered.Direction.Dot(hit.Normal) <= 0 {
				t.Fatalf("Scattered ray points into the surface: %v", result.Scattered.Direction)
			}
		} else {
			absorbed++
		}
	}

	if absorbed == 0 {
		t.Error("Expected some grazing rays to be absorbed with fuzz=1")
	}
	if scattered == 0 {
		t.Error("Expected some grazing rays to scatter with fuzz=1")
	}
	t.Logf("absorbed=%d scattered=%d", absorbed, scattered)
}

func TestMetal_FuzzUsesSampler(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 0.5)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	// A constant 0.75 sample maps to the ball point (0.5, 0.5, 0.5)
	result, ok := metal.Scatter(rayIn, hit, constantSampler{value: 0.75})
	if !ok {
		t.Fatal("Expected scatter")
	}
	expected := core.NewVec3(0.25, 0.25, 1.25)
	if !result.Scattered.Direction.ApproxEquals(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, result.Scattered.Direction)
	}
}
