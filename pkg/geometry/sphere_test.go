package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_Roots(t *testing.T) {
	center := core.NewVec3(1, 2, 3)
	radius := 0.5
	sphere := NewSphere(center, radius, material.ID(7))

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		tMin, tMax     float64
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "nearer root from outside",
			rayOrigin:      core.NewVec3(1, 2, 13),
			rayDirection:   core.NewVec3(0, 0, -1),
			tMin:           0.001,
			tMax:           math.MaxFloat64,
			expectedT:      10 - radius,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "farther root from inside",
			rayOrigin:      center,
			rayDirection:   core.NewVec3(0, 0, 1),
			tMin:           0.001,
			tMax:           math.MaxFloat64,
			expectedT:      radius,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "nearer root excluded by tMin",
			rayOrigin:      core.NewVec3(1, 2, 13),
			rayDirection:   core.NewVec3(0, 0, -1),
			tMin:           10,
			tMax:           math.MaxFloat64,
			expectedT:      10 + radius,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(1, 12, 3),
			rayDirection:   core.NewVec3(0, -4, 0),
			tMin:           0.001,
			tMax:           math.MaxFloat64,
			expectedT:      (10 - radius) / 4,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if !hit.Normal.ApproxEquals(tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if !hit.Point.ApproxEquals(ray.At(hit.T), 1e-9) {
				t.Errorf("Expected point on ray, got %v", hit.Point)
			}
			if hit.Material != material.ID(7) {
				t.Errorf("Expected material 7, got %d", hit.Material)
			}
		})
	}
}

func TestSphere_Hit_BothRootsOutsideInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	if _, isHit := sphere.Hit(ray, 0.001, 3.0); isHit {
		t.Error("Expected miss when both roots lie beyond tMax")
	}
	if _, isHit := sphere.Hit(ray, 7.0, 100.0); isHit {
		t.Error("Expected miss when both roots lie before tMin")
	}
	// Root exactly on an interval bound is excluded
	if _, isHit := sphere.Hit(ray, 0.001, 4.0); isHit {
		t.Error("Expected tMax to be exclusive")
	}
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(1, 0, 5), core.NewVec3(0, 0, -1))

	if _, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("Expected grazing ray with zero discriminant to miss")
	}
}

func TestSphere_StaticBoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, -2, 3), 2, 0)

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounding box")
	}
	expected := core.NewAABB(core.NewVec3(-1, -4, 1), core.NewVec3(3, 0, 5))
	if !box.Min.Equals(expected.Min) || !box.Max.Equals(expected.Max) {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}

func TestMovingSphere_Position(t *testing.T) {
	from := core.NewVec3(0, 1, 1)
	to := core.NewVec3(0, 1.1, 1)
	sphere := NewMovingSphere(from, to, 0, 0.1, 1, 0)

	if sphere.IsStatic() {
		t.Error("Moving sphere reported as static")
	}
	if got := sphere.Center(0); !got.ApproxEquals(from, 1e-12) {
		t.Errorf("Expected center %v at t0, got %v", from, got)
	}
	if got := sphere.Center(0.1); !got.ApproxEquals(to, 1e-12) {
		t.Errorf("Expected center %v at t1, got %v", to, got)
	}
	if got := sphere.Center(0.05); !got.ApproxEquals(core.NewVec3(0, 1.05, 1), 1e-12) {
		t.Errorf("Expected midpoint center, got %v", got)
	}

	// Rays at different times see the sphere at different places
	ray := core.NewRayAt(core.NewVec3(0, 3, 1), core.NewVec3(0, -1, 0), 0)
	hitEarly, _ := sphere.Hit(ray, 0.001, 100)
	ray.Time = 0.1
	hitLate, _ := sphere.Hit(ray, 0.001, 100)
	if math.Abs((hitEarly.T-hitLate.T)-0.1) > 1e-9 {
		t.Errorf("Expected hit distance to shrink by 0.1, got %f and %f", hitEarly.T, hitLate.T)
	}
}

func TestMovingSphere_BoundingBoxContainsMotion(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	spheres := []*Sphere{
		NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 0.4, 0), 0, 0.1, 0.2, 0),
		NewMovingSphere(core.NewVec3(-1, 2, 3), core.NewVec3(4, -1, 0), 0, 1, 0.5, 0),
		// Circular motion with a pulsing radius
		NewAnimatedSphere(
			func(t float64) core.Vec3 { return core.NewVec3(math.Cos(8*t), math.Sin(8*t), 0) },
			func(t float64) float64 { return 0.3 + 0.1*math.Sin(20*t) },
			0,
		),
	}

	for i, sphere := range spheres {
		box, ok := sphere.BoundingBox(0, 1)
		if !ok {
			t.Fatalf("sphere %d: expected bounding box", i)
		}
		for j := 0; j < 500; j++ {
			time := random.Float64()
			sphereAt := sphereBox(sphere.Center(time), sphere.Radius(time))
			if !box.Contains(sphereAt) {
				t.Fatalf("sphere %d: box %v does not contain sphere at t=%f (%v)", i, box, time, sphereAt)
			}
		}
	}
}

func TestMovingSphere_DegenerateWindow(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 0, 1, 1, 0)

	box, ok := sphere.BoundingBox(0.5, 0.5)
	if !ok {
		t.Fatal("Expected bounding box for zero-length window")
	}
	expected := sphereBox(core.NewVec3(0.5, 0, 0), 1)
	if !box.Min.ApproxEquals(expected.Min, 1e-12) || !box.Max.ApproxEquals(expected.Max, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}

func TestSnapshotTimes(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		count    int
	}{
		{"empty window", 0.2, 0.2, 1},
		{"reversed window", 0.3, 0.2, 1},
		{"shorter than interval", 0, 0.0005, 2},
		{"ten steps", 0, 0.01, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			times := snapshotTimes(tt.from, tt.to)
			if len(times) < tt.count-1 || len(times) > tt.count {
				t.Errorf("Expected about %d snapshots, got %d", tt.count, len(times))
			}
			if times[0] != tt.from {
				t.Errorf("Expected first snapshot %f, got %f", tt.from, times[0])
			}
			if tt.to > tt.from && times[len(times)-1] != tt.to {
				t.Errorf("Expected last snapshot %f, got %f", tt.to, times[len(times)-1])
			}
			for i := 1; i < len(times); i++ {
				if times[i] <= times[i-1] {
					t.Fatalf("Snapshots not increasing at %d: %v", i, times)
				}
			}
		})
	}
}

func TestMovingSphere_EmptyTimeRange(t *testing.T) {
	from := core.NewVec3(1, 2, 3)
	sphere := NewMovingSphere(from, core.NewVec3(4, 5, 6), 0.5, 0.5, 1, 0)

	if !sphere.IsStatic() {
		t.Error("Expected a static sphere for an empty time range")
	}
	for _, time := range []float64{0, 0.5, 1} {
		if got := sphere.Center(time); !got.Equals(from) {
			t.Errorf("t=%f: expected center %v, got %v", time, from, got)
		}
	}

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounding box")
	}
	for _, v := range []float64{box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Expected a finite box, got %v", box)
		}
	}

	ray := core.NewRayAt(core.NewVec3(1, 2, 10), core.NewVec3(0, 0, -1), 0.5)
	hit, isHit := sphere.Hit(ray, 0.001, 100)
	if !isHit || math.Abs(hit.T-6) > 1e-9 {
		t.Errorf("Expected hit at t=6, got %v %v", hit, isHit)
	}
}
