package geometry

import "github.com/df07/go-scanline-raytracer/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T         float64   // Parameter t along the ray, strictly inside the queried interval
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal; never flipped toward the ray
	FrontFace bool      // Whether the ray arrived against the normal
}

// Shape interface for objects that can be hit by rays.
//
// Hit returns the closest intersection with tMin < t < tMax. The sampler is
// only consumed by stochastic shapes such as Medium.
// Contains reports whether a point lies strictly inside the shape's volume;
// shapes without a well-defined interior return false.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*HitRecord, bool)
	Contains(point core.Vec3) bool
}
