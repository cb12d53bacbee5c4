package material

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Refractive indices of common transparent media
const (
	RefractiveIndexVacuum      = 1.0
	RefractiveIndexIce         = 1.31
	RefractiveIndexWater       = 4.0 / 3.0
	RefractiveIndexOliveOil    = 1.47
	RefractiveIndexWindowGlass = 1.52
	RefractiveIndexFlintGlass  = 1.62
	RefractiveIndexSapphire    = 1.77
	RefractiveIndexDiamond     = 2.42
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// The ray is either reflected or refracted, chosen with the Schlick reflectance
// as the reflection probability. Total internal reflection always reflects.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	direction := rayIn.Direction
	incidence := direction.Dot(hit.Normal)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if incidence > 0 {
		// Exiting the material
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * incidence / direction.Length()
	} else {
		// Entering the material
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -incidence / direction.Length()
	}

	reflected := Reflect(direction, hit.Normal)
	refracted, canRefract := Refract(direction, outwardNormal, niOverNt)

	scatteredDirection := reflected
	if canRefract && sampler.Get1D() >= Schlick(cosine, d.RefractiveIndex) {
		scatteredDirection = refracted
	}

	return ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, scatteredDirection, rayIn.Time),
		Attenuation: attenuation,
	}, true
}
