package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-scanline-raytracer/pkg/camera"
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// ErrUnknownScene is returned by ByName for names with no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

// DefaultBearings looks down +Z at the row of demo spheres
func DefaultBearings() camera.Bearings {
	return camera.Bearings{
		LookFrom:   core.NewVec3(0, 0, -3),
		LookAt:     core.NewVec3(0, 0, 1),
		Up:         core.NewVec3(0, 1, 0),
		FovDegrees: 28.1,
	}
}

// NewDefaultScene creates the demo scene: a diffuse sphere flanked by a hollow
// glass sphere and a polished metal sphere, resting on a large ground sphere.
func NewDefaultScene() *Scene {
	s := New("default", Sky())
	s.Bearings = DefaultBearings()

	// Create materials
	ground := material.NewOpaque(core.NewColor(0.8, 0.8, 0.0), 0.0)
	center := material.NewOpaque(core.NewColor(0.1, 0.2, 0.5), 0.0)
	glass := material.NewTransparent(1.5)
	metal := material.NewOpaque(core.NewColor(0.8, 0.6, 0.2), 0.9)

	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, 1), 100), ground)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 1), 0.5), center)

	// Hollow glass: the negative radius turns the inner surface inside out
	s.Add(geometry.NewSphere(core.NewVec3(-1, 0, 1), 0.5), glass)
	s.Add(geometry.NewSphere(core.NewVec3(-1, 0, 1), -0.4), glass)

	s.Add(geometry.NewSphere(core.NewVec3(1, 0, 1), 0.5), metal)

	return s
}

// NewFogScene is the default scene with a bank of white fog in front of the spheres
func NewFogScene() *Scene {
	s := NewDefaultScene()
	s.Name = "fog"

	boundary := geometry.NewSphere(core.NewVec3(0, 0, 0.2), 0.35)
	s.Add(geometry.NewMedium(boundary, 3.0), material.NewIsotropic(core.NewColor(0.9, 0.9, 0.9)))

	return s
}

type builtin struct {
	build       func() *Scene
	description string
}

var builtins = map[string]builtin{
	"default": {NewDefaultScene, "Diffuse, hollow glass and polished metal spheres on a ground sphere"},
	"fog":     {NewFogScene, "The default scene with a sphere of white fog in front"},
}

// ByName returns a freshly built copy of a built-in scene
func ByName(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	return b.build(), nil
}

// Names lists the built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
