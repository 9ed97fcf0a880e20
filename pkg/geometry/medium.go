package geometry

import "github.com/df07/go-scanline-raytracer/pkg/core"

// Medium is an isotropic participating volume bounded by another shape.
// Rays passing through it interact at exponentially distributed distances.
type Medium struct {
	Boundary Shape
	Density  float64 // interactions per unit distance
}

// NewMedium creates a medium of the given density filling boundary
func NewMedium(boundary Shape, density float64) *Medium {
	return &Medium{Boundary: boundary, Density: density}
}

// Hit samples a scattering event inside the boundary
func (m *Medium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*HitRecord, bool) {
	if m.Density <= 0 {
		return nil, false
	}

	var entry float64
	if m.Boundary.Contains(ray.At(tMin)) {
		entry = tMin
	} else {
		enter, ok := m.Boundary.Hit(ray, tMin, tMax, sampler)
		if !ok {
			return nil, false
		}
		entry = enter.T
	}

	exit := tMax
	if leave, ok := m.Boundary.Hit(ray, entry, tMax, sampler); ok {
		exit = leave.T
	}

	speed := ray.Direction.Length()
	if speed == 0 {
		return nil, false
	}

	// Free-flight distance is measured in world units; convert to ray parameter.
	freePath := core.SampleExponential(m.Density, sampler.Get1D())
	t := entry + freePath/speed
	if t >= exit {
		return nil, false
	}

	return &HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    ray.Direction.Normalize(),
		FrontFace: true,
	}, true
}

// Contains is always false: a medium has no surface to be inside of.
func (m *Medium) Contains(core.Vec3) bool {
	return false
}
