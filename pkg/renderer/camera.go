package renderer

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look from)
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height ratio
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter; 0 disables defocus blur
	FocusDistance float64   // Distance to the focal plane; 0 focuses on LookAt
	ShutterOpen   float64   // Earliest ray time
	ShutterClose  float64   // Latest ray time
}

// Height returns the image height implied by the width and aspect ratio
func (c CameraConfig) Height() int {
	return int(float64(c.Width) / c.AspectRatio)
}

// CameraOverride replaces selected fields of a camera configuration.
// Nil pointers and zero sizes keep the base value; a set pointer applies even when it holds zero.
type CameraOverride struct {
	Center        *core.Vec3
	LookAt        *core.Vec3
	Up            *core.Vec3
	Width         int
	AspectRatio   float64
	VFov          float64
	Aperture      *float64
	FocusDistance *float64
	Shutter       *[2]float64 // Open and close times
}

// MergeCameraConfig applies the set fields of override on top of base
func MergeCameraConfig(base CameraConfig, override CameraOverride) CameraConfig {
	result := base

	if override.Center != nil {
		result.Center = *override.Center
	}
	if override.LookAt != nil {
		result.LookAt = *override.LookAt
	}
	if override.Up != nil {
		result.Up = *override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.Aperture != nil {
		result.Aperture = *override.Aperture
	}
	if override.FocusDistance != nil {
		result.FocusDistance = *override.FocusDistance
	}
	if override.Shutter != nil {
		result.ShutterOpen, result.ShutterClose = override.Shutter[0], override.Shutter[1]
	}

	return result
}

// Camera generates rays through a thin lens with a finite shutter interval
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Camera basis
	lensRadius      float64
	shutterOpen     float64
	shutterClose    float64
	config          CameraConfig
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * focusDistance)).
		Subtract(v.Multiply(halfHeight * focusDistance)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focusDistance),
		vertical:        v.Multiply(2 * halfHeight * focusDistance),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		shutterOpen:     config.ShutterOpen,
		shutterClose:    config.ShutterClose,
		config:          config,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// The origin is jittered over the lens disc and the time over the shutter interval.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	time := core.SampleRange(sampler, c.shutterOpen, c.shutterClose)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRayAt(c.origin.Add(offset), direction, time)
}

// ShutterOpen returns the earliest time a ray can carry
func (c *Camera) ShutterOpen() float64 {
	return c.shutterOpen
}

// ShutterClose returns the latest time a ray can carry
func (c *Camera) ShutterClose() float64 {
	return c.shutterClose
}

// GetCameraForward returns the direction the camera is looking
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}
