package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// Populator fills a scene's world with spheres and materials
type Populator func(s *Scene, sampler core.Sampler)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Description    string
	CameraConfig   renderer.CameraConfig   // Recommended camera
	SamplingConfig renderer.SamplingConfig // Recommended sampling

	populate Populator
	world    *geometry.HittableList
	palette  *material.Palette
}

// New creates a scene whose world is filled by populate when LoadWorld is called
func New(name string, cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig, populate Populator) *Scene {
	return &Scene{
		Name:           name,
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
		populate:       populate,
		world:          geometry.NewHittableList(),
		palette:        material.NewPalette(),
	}
}

// LoadWorld populates the world from scratch. Random scenes draw from sampler.
func (s *Scene) LoadWorld(sampler core.Sampler) {
	s.world = geometry.NewHittableList()
	s.palette = material.NewPalette()
	if s.populate != nil {
		s.populate(s, sampler)
	}
}

// World returns the objects of the scene
func (s *Scene) World() *geometry.HittableList {
	return s.world
}

// Palette returns the materials referenced by the world's objects
func (s *Scene) Palette() *material.Palette {
	return s.palette
}

// AddMaterial registers a material and returns its handle
func (s *Scene) AddMaterial(m material.Material) material.ID {
	return s.palette.Add(m)
}

// AddSphere adds a static sphere
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.ID) {
	s.world.Add(geometry.NewSphere(center, radius, mat))
}

// Add adds an arbitrary hittable
func (s *Scene) Add(object geometry.Hittable) {
	s.world.Add(object)
}

// Constructor builds a scene, optionally overriding its recommended camera
type Constructor func(cameraOverrides ...renderer.CameraOverride) *Scene

var registry = map[string]Constructor{
	"two-spheres":           NewTwoSpheresScene,
	"two-spheres-diffuse":   NewTwoDiffuseSpheresScene,
	"moving-metal":          NewMovingMetalScene,
	"random-spheres":        NewRandomSpheresScene,
	"different-dielectrics": NewDifferentDielectricsScene,
	"checker-floor":         NewCheckerFloorScene,
}

// Lookup creates the named built-in scene
func Lookup(name string, cameraOverrides ...renderer.CameraOverride) (*Scene, error) {
	constructor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return constructor(cameraOverrides...), nil
}

// Names lists the built-in scenes in alphabetical order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// mergeCamera applies the first override, if any, to a scene's default camera
func mergeCamera(defaults renderer.CameraConfig, overrides []renderer.CameraOverride) renderer.CameraConfig {
	if len(overrides) > 0 {
		return renderer.MergeCameraConfig(defaults, overrides[0])
	}
	return defaults
}

// groundSphere is the huge sphere the other objects rest on
func groundSphere(s *Scene, albedo core.Vec3) {
	ground := s.AddMaterial(material.NewLambertian(albedo))
	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, ground)
}
