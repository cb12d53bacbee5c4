package geometry

import (
	"errors"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit returns the nearest intersection with parameter in (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	// BoundingBox returns a box enclosing the object over [timeFrom, timeTo],
	// or false when no finite box exists
	BoundingBox(timeFrom, timeTo float64) (core.AABB, bool)
}

var (
	// ErrEmptyWorld is returned when an acceleration structure is requested for no objects
	ErrEmptyWorld = errors.New("geometry: world has no objects")
	// ErrUnboundedObject is returned when an object cannot report a bounding box
	ErrUnboundedObject = errors.New("geometry: object has no bounding box")
)
