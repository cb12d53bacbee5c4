package scene

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// NewCheckerFloorScene creates the three large spheres of the random scene on a checkered ground
func NewCheckerFloorScene(cameraOverrides ...renderer.CameraOverride) *Scene {
	s := New("checker-floor", mergeCamera(defaultCameraConfig(), cameraOverrides), defaultSamplingConfig(), func(s *Scene, _ core.Sampler) {
		checker := material.NewCheckerTexture(
			material.NewSolidColor(core.NewVec3(0.2, 0.3, 0.1)),
			material.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)),
		)
		ground := s.AddMaterial(material.NewTexturedLambertian(checker))
		s.AddSphere(core.NewVec3(0, -1000, 0), 1000, ground)

		s.AddSphere(core.NewVec3(0, 1, 0), 1, s.AddMaterial(material.NewDielectric(material.RefractiveIndexWindowGlass)))
		s.AddSphere(core.NewVec3(-4, 1, 0), 1, s.AddMaterial(material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
		s.AddSphere(core.NewVec3(4, 1, 0), 1, s.AddMaterial(material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))
	})
	s.Description = "Glass, diffuse and metal spheres on a checkered ground"
	return s
}
