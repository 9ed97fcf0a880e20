package material

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
)

// Material interface for objects that can scatter rays.
// Scatter returns false when the ray is fully absorbed.
type Material interface {
	Scatter(rayIn core.Ray, hit geometry.HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The outgoing ray, starting at the hit point
	Attenuation core.Color // Per-channel fraction of the scattered light that survives
}
