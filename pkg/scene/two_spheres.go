package scene

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// defaultCameraConfig frames spheres of radius ~1 sitting on the ground near the origin
func defaultCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:       core.NewVec3(10, 1.4, 2),
		LookAt:       core.NewVec3(3.5, 0.6, 0.5),
		Up:           core.NewVec3(0, 1, 0),
		Width:        400,
		AspectRatio:  4.0 / 3.0,
		VFov:         30.0,
		Aperture:     0.1,
		ShutterOpen:  0.0,
		ShutterClose: 0.1,
	}
}

func defaultSamplingConfig() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// NewTwoSpheresScene creates a grey ground with a glass sphere of index 1.5 resting on it
func NewTwoSpheresScene(cameraOverrides ...renderer.CameraOverride) *Scene {
	s := New("two-spheres", lookAtOrigin(cameraOverrides), defaultSamplingConfig(), func(s *Scene, _ core.Sampler) {
		groundSphere(s, core.NewVec3(0.5, 0.5, 0.5))
		glass := s.AddMaterial(material.NewDielectric(1.5))
		s.AddSphere(core.NewVec3(0, 1, 0), 1, glass)
	})
	s.Description = "Diffuse ground with a glass sphere"
	return s
}

// NewTwoDiffuseSpheresScene is NewTwoSpheresScene with the glass swapped for a diffuse material
func NewTwoDiffuseSpheresScene(cameraOverrides ...renderer.CameraOverride) *Scene {
	s := New("two-spheres-diffuse", lookAtOrigin(cameraOverrides), defaultSamplingConfig(), func(s *Scene, _ core.Sampler) {
		groundSphere(s, core.NewVec3(0.5, 0.5, 0.5))
		diffuse := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
		s.AddSphere(core.NewVec3(0, 1, 0), 1, diffuse)
	})
	s.Description = "Diffuse ground with a diffuse sphere"
	return s
}

// NewMovingMetalScene creates a fuzzy metal sphere drifting upwards during the shutter interval
func NewMovingMetalScene(cameraOverrides ...renderer.CameraOverride) *Scene {
	s := New("moving-metal", lookAtOrigin(cameraOverrides), defaultSamplingConfig(), func(s *Scene, _ core.Sampler) {
		groundSphere(s, core.NewVec3(0.5, 0.5, 0.5))
		metal := s.AddMaterial(material.NewMetal(core.NewVec3(0.5, 0.5, 0.5), 0.9))

		from := core.NewVec3(0, 1, 1)
		to := core.NewVec3(0, 1.1, 1)
		s.Add(geometry.NewAnimatedSphere(
			func(t float64) core.Vec3 { return from.Add(to.Subtract(from).Multiply(t)) },
			func(float64) float64 { return 1 },
			metal,
		))
	})
	s.Description = "Motion-blurred fuzzy metal sphere"
	return s
}

// lookAtOrigin is the default camera aimed at the scene's central sphere
func lookAtOrigin(overrides []renderer.CameraOverride) renderer.CameraConfig {
	config := defaultCameraConfig()
	config.Center = core.NewVec3(6, 2, 8)
	config.LookAt = core.NewVec3(0, 1, 0)
	config.Aperture = 0
	return mergeCamera(config, overrides)
}
