package geometry

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// HittableList is a flat aggregate of hittables, searched linearly
type HittableList struct {
	objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{objects: append([]Hittable(nil), objects...)}
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.objects = append(l.objects, object)
}

// Objects returns the objects in insertion order
func (l *HittableList) Objects() []Hittable {
	return l.objects
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Hit returns the closest hit among all objects
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all object boxes.
// It fails for an empty list or when any object has no box.
func (l *HittableList) BoundingBox(timeFrom, timeTo float64) (core.AABB, bool) {
	if len(l.objects) == 0 {
		return core.AABB{}, false
	}

	box, ok := l.objects[0].BoundingBox(timeFrom, timeTo)
	if !ok {
		return core.AABB{}, false
	}
	for _, object := range l.objects[1:] {
		objectBox, ok := object.BoundingBox(timeFrom, timeTo)
		if !ok {
			return core.AABB{}, false
		}
		box = box.Union(objectBox)
	}
	return box, true
}
