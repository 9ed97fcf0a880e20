package material

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
)

// Isotropic scatters uniformly in every direction. It is the phase function
// for participating media, where the hit normal carries no surface meaning.
type Isotropic struct {
	Albedo core.Color
}

// NewIsotropic creates a new isotropic material
func NewIsotropic(albedo core.Color) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements the Material interface
func (i *Isotropic) Scatter(_ core.Ray, hit geometry.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, core.RandomUnitVector(sampler)),
		Attenuation: i.Albedo,
	}, true
}
