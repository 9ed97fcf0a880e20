package geometry

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// Sphere represents a sphere shape.
// A negative radius keeps the same surface but turns the normal inward,
// which is how hollow shells are modelled.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, _ core.Sampler) (*HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	if a == 0 {
		return nil, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	// A tangent ray touches the surface without entering it
	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Prefer the nearer root; fall back to the far one when the ray starts inside
	root := (-halfB - sqrtD) / a
	if root <= tMin {
		root = (-halfB + sqrtD) / a
	}
	if root <= tMin || root >= tMax {
		return nil, false
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Divide(s.Radius)

	return &HitRecord{
		T:         root,
		Point:     point,
		Normal:    normal,
		FrontFace: normal.Dot(ray.Direction) < 0,
	}, true
}

// Contains reports whether point lies strictly inside the sphere
func (s *Sphere) Contains(point core.Vec3) bool {
	return point.Subtract(s.Center).LengthSquared() < s.Radius*s.Radius
}
