package scene

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// NewRandomSpheresScene creates three large spheres surrounded by a grid of small random ones.
// About a fifth of the small spheres move upwards while the shutter is open.
func NewRandomSpheresScene(cameraOverrides ...renderer.CameraOverride) *Scene {
	s := New("random-spheres", mergeCamera(defaultCameraConfig(), cameraOverrides), defaultSamplingConfig(), populateRandomSpheres)
	s.Description = "Large glass, diffuse and metal spheres among a random field"
	return s
}

func populateRandomSpheres(s *Scene, sampler core.Sampler) {
	groundSphere(s, core.NewVec3(0.5, 0.5, 0.5))

	glass := s.AddMaterial(material.NewDielectric(material.RefractiveIndexWindowGlass))
	s.AddSphere(core.NewVec3(0, 1, 0), 1, glass)

	brown := s.AddMaterial(material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(-4, 1, 0), 1, brown)

	mirror := s.AddMaterial(material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0))
	s.AddSphere(core.NewVec3(4, 1, 0), 1, mirror)

	const radius = 0.2
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			choice := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				radius,
				float64(b)+0.9*sampler.Get1D(),
			)
			rise := sampler.Get1D()
			static := sampler.Get1D() > 0.2

			// Keep the area around the metal sphere clear
			if center.Subtract(clearing).LengthSquared() <= 0.9*0.9 {
				continue
			}

			var mat material.ID
			switch {
			case choice < 0.65:
				mat = s.AddMaterial(material.NewLambertian(randomDiffuseAlbedo(sampler)))
			case choice < 0.85:
				albedo := randomMetalAlbedo(sampler)
				mat = s.AddMaterial(material.NewMetal(albedo, 0.5*sampler.Get1D()))
			default:
				mat = glass
			}

			if static {
				s.AddSphere(center, radius, mat)
				continue
			}
			s.Add(geometry.NewAnimatedSphere(
				func(t float64) core.Vec3 { return center.Add(core.NewVec3(0, rise*t, 0)) },
				func(float64) float64 { return radius },
				mat,
			))
		}
	}
}

// NewDifferentDielectricsScene creates a ring of spheres, one per dielectric preset,
// over a blue floor with random diffuse and metal spheres inside and around the ring.
func NewDifferentDielectricsScene(cameraOverrides ...renderer.CameraOverride) *Scene {
	config := defaultCameraConfig()
	config.Center = core.NewVec3(16, 4.2, 9)
	config.LookAt = core.NewVec3(0, 0, 0)
	s := New("different-dielectrics", mergeCamera(config, cameraOverrides), defaultSamplingConfig(), populateDifferentDielectrics)
	s.Description = "Ice, water, oil, glass, sapphire and diamond side by side"
	return s
}

func populateDifferentDielectrics(s *Scene, sampler core.Sampler) {
	floor := s.AddMaterial(material.NewLambertian(core.NewVec3(0.0075, 0.3, 0.675)))
	s.AddSphere(core.NewVec3(0, -1e5, 0), 1e5, floor)

	const ringRadius = 5.5
	// Filler counts scale with the whole part of the ring radius
	const fillerUnit = 5
	diagonal := math.Sqrt2 * ringRadius / 2

	ring := []struct {
		center core.Vec3
		index  float64
	}{
		{core.NewVec3(diagonal, 0.5, diagonal), material.RefractiveIndexIce},
		{core.NewVec3(ringRadius, 0.6, 0), material.RefractiveIndexWater},
		{core.NewVec3(diagonal, 0.7, -diagonal), material.RefractiveIndexOliveOil},
		{core.NewVec3(0, 0.8, -ringRadius), material.RefractiveIndexWindowGlass},
		{core.NewVec3(-diagonal, 0.9, -diagonal), material.RefractiveIndexFlintGlass},
		{core.NewVec3(-ringRadius, 1.0, 0), material.RefractiveIndexSapphire},
		{core.NewVec3(-diagonal, 1.1, diagonal), material.RefractiveIndexDiamond},
	}
	for _, sphere := range ring {
		// Spheres rest on the floor, so the radius equals the height of the center
		mat := s.AddMaterial(material.NewDielectric(sphere.index))
		s.AddSphere(sphere.center, sphere.center.Y, mat)
	}

	// Inside the ring
	for i := 0; i < 4*fillerUnit; i++ {
		distance := (ringRadius - 1) * sampler.Get1D()
		radius := 0.1 + 0.35*sampler.Get1D()
		addFillerSphere(s, sampler, distance, radius)
	}

	// Around the ring
	for i := 0; i < 60*fillerUnit; i++ {
		distance := ringRadius + 1 + 40*sampler.Get1D()
		radius := 0.2 + 0.4*sampler.Get1D()
		addFillerSphere(s, sampler, distance, radius)
	}
}

// addFillerSphere places a diffuse or metal sphere on the floor at a random angle
func addFillerSphere(s *Scene, sampler core.Sampler, distance, radius float64) {
	angle := 2 * math.Pi * sampler.Get1D()
	center := core.NewVec3(distance*math.Cos(angle), radius, distance*math.Sin(angle))

	var mat material.ID
	if sampler.Get1D() < 0.25 {
		albedo := randomMetalAlbedo(sampler)
		mat = s.AddMaterial(material.NewMetal(albedo, 0.5*sampler.Get1D()))
	} else {
		mat = s.AddMaterial(material.NewLambertian(randomDiffuseAlbedo(sampler)))
	}
	s.AddSphere(center, radius, mat)
}

// randomDiffuseAlbedo favors dark colors by multiplying two uniform draws per channel
func randomDiffuseAlbedo(sampler core.Sampler) core.Vec3 {
	return core.NewVec3(
		sampler.Get1D()*sampler.Get1D(),
		sampler.Get1D()*sampler.Get1D(),
		sampler.Get1D()*sampler.Get1D(),
	)
}

// randomMetalAlbedo returns a bright color with every channel in [0.5, 1)
func randomMetalAlbedo(sampler core.Sampler) core.Vec3 {
	return core.NewVec3(
		0.5*(1+sampler.Get1D()),
		0.5*(1+sampler.Get1D()),
		0.5*(1+sampler.Get1D()),
	)
}
