package scene

import (
	"github.com/df07/go-scanline-raytracer/pkg/camera"
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// Object binds one shape to the material that shades it
type Object struct {
	Shape    geometry.Shape
	Material material.Material
}

// Scene contains all the elements needed for rendering.
// It is built once and then shared read-only by every render worker.
type Scene struct {
	Name       string
	Objects    []Object        // Objects in the scene; order only breaks exact ties
	Background Background      // Color seen by rays that escape; nil means black
	Bearings   camera.Bearings // Recommended viewpoint
}

// New creates an empty scene with the given background
func New(name string, background Background) *Scene {
	return &Scene{
		Name:       name,
		Objects:    make([]Object, 0),
		Background: background,
	}
}

// Add appends a shape/material pair to the scene
func (s *Scene) Add(shape geometry.Shape, mat material.Material) {
	s.Objects = append(s.Objects, Object{Shape: shape, Material: mat})
}

// FirstHit returns the nearest object hit by ray with tMin < t < tMax.
// Each accepted hit shrinks the search bound to its t, so a later object at
// exactly the same distance does not replace it.
func (s *Scene) FirstHit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*Object, *geometry.HitRecord, bool) {
	var closestObject *Object
	var closestHit *geometry.HitRecord
	closestSoFar := tMax

	for i := range s.Objects {
		object := &s.Objects[i]
		if hit, isHit := object.Shape.Hit(ray, tMin, closestSoFar, sampler); isHit {
			closestSoFar = hit.T
			closestHit = hit
			closestObject = object
		}
	}

	return closestObject, closestHit, closestHit != nil
}

// BackgroundColor returns the environment color for a ray that hit nothing
func (s *Scene) BackgroundColor(ray core.Ray) core.Color {
	if s.Background == nil {
		return core.Black
	}
	return s.Background(ray.Direction.Normalize())
}
