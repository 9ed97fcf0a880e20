package material

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
)

// Transparent represents a clear dielectric such as glass or water
type Transparent struct {
	RefractionIndex float64 // Index relative to vacuum, e.g. 1.5 for glass
}

// NewTransparent creates a new transparent material
func NewTransparent(refractionIndex float64) *Transparent {
	return &Transparent{RefractionIndex: refractionIndex}
}

// Scatter implements the Material interface. Clear dielectrics never absorb.
func (tr *Transparent) Scatter(rayIn core.Ray, hit geometry.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := tr.refractionDirection(rayIn.Direction.Normalize(), hit.Normal, sampler)
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: core.White,
	}, true
}

// refractionDirection picks between reflection and refraction for a unit incoming direction
func (tr *Transparent) refractionDirection(unitDirection, normal core.Vec3, sampler core.Sampler) core.Vec3 {
	cosTheta := -unitDirection.Dot(normal)
	if math.Abs(cosTheta) < 1e-6 {
		// Close to parallel, just reflect to avoid numerical issues
		return unitDirection.Reflect(normal)
	}

	// Positive cosine means the ray enters through the outward side of the normal
	refractionRatio := tr.RefractionIndex
	if cosTheta > 0 {
		refractionRatio = 1.0 / tr.RefractionIndex
	}

	discriminant := RefractionDiscriminant(cosTheta, refractionRatio)
	if discriminant < 0 {
		// Total internal reflection
		return unitDirection.Reflect(normal)
	}

	if Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		// Partial (Fresnel) reflection
		return unitDirection.Reflect(normal)
	}

	parallelCoef := (refractionRatio - math.Sqrt(discriminant)) * cosTheta
	return unitDirection.Multiply(refractionRatio).Add(normal.Multiply(parallelCoef))
}

// RefractionDiscriminant returns ratio² + (1 - ratio²)/cos²θ, the squared length of
// the refracted normal component divided by cos²θ. It is negative exactly when
// Snell's law has no solution (ratio·sinθ > 1), i.e. total internal reflection.
func RefractionDiscriminant(cosTheta, refractionRatio float64) float64 {
	r2 := refractionRatio * refractionRatio
	return r2 + (1-r2)/(cosTheta*cosTheta)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-math.Abs(cosine), 5)
}
