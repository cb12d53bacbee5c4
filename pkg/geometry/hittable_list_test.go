package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

func TestHittableList_ClosestHit(t *testing.T) {
	list := NewHittableList(
		NewSphere(core.NewVec3(0, 0, -10), 1, material.ID(0)),
		NewSphere(core.NewVec3(0, 0, -4), 1, material.ID(1)),
		NewSphere(core.NewVec3(0, 0, -7), 1, material.ID(2)),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := list.Hit(ray, 0.001, math.MaxFloat64)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != material.ID(1) {
		t.Errorf("Expected nearest sphere (material 1), got %d", hit.Material)
	}
	if math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("Expected t=3, got %f", hit.T)
	}

	// A tighter tMax hides everything
	if _, isHit := list.Hit(ray, 0.001, 2.5); isHit {
		t.Error("Expected miss with tMax before the nearest sphere")
	}
}

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, 0.001, math.MaxFloat64); isHit {
		t.Error("Expected empty list to never hit")
	}
	if _, ok := list.BoundingBox(0, 1); ok {
		t.Error("Expected empty list to have no bounding box")
	}
}

func TestHittableList_BoundingBox(t *testing.T) {
	list := NewHittableList(NewSphere(core.NewVec3(-2, 0, 0), 1, 0))
	list.Add(NewSphere(core.NewVec3(3, 1, 0), 0.5, 0))

	box, ok := list.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounding box")
	}
	expected := core.NewAABB(core.NewVec3(-3, -1, -1), core.NewVec3(3.5, 1.5, 1))
	if !box.Min.Equals(expected.Min) || !box.Max.Equals(expected.Max) {
		t.Errorf("Expected %v, got %v", expected, box)
	}

	list.Add(unboundedShape{})
	if _, ok := list.BoundingBox(0, 1); ok {
		t.Error("Expected no bounding box once an unbounded object is added")
	}
	if list.Len() != 3 {
		t.Errorf("Expected 3 objects, got %d", list.Len())
	}
}
