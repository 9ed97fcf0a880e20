package material

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
)

// Opaque blends diffuse and mirror reflection.
// Polish 0 is fully diffuse, 1 is a perfect mirror.
type Opaque struct {
	Albedo core.Color
	Polish float64
}

// NewOpaque creates a new opaque material
func NewOpaque(albedo core.Color, polish float64) *Opaque {
	// Clamp polish to valid range
	if polish > 1.0 {
		polish = 1.0
	}
	if polish < 0.0 {
		polish = 0.0
	}
	return &Opaque{Albedo: albedo, Polish: polish}
}

// Scatter implements the Material interface for opaque scattering
func (o *Opaque) Scatter(rayIn core.Ray, hit geometry.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Ray is coming from inside the body
	if rayIn.Direction.Dot(hit.Normal) > 0 {
		return ScatterResult{}, false
	}

	diffusion := lambertianDirection(hit.Normal, sampler)
	reflection := rayIn.Direction.Normalize().Reflect(hit.Normal)

	// Not renormalized: the blend's length shapes the outgoing energy
	direction := diffusion.Multiply(1 - o.Polish).Add(reflection.Multiply(o.Polish))

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: o.Albedo,
	}, true
}

// lambertianDirection returns normal + a random unit vector, or the normal
// itself when the sum nearly cancels out.
func lambertianDirection(normal core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := normal.Add(core.RandomUnitVector(sampler))
	if direction.LengthSquared() < 1e-8 {
		return normal
	}
	return direction
}
