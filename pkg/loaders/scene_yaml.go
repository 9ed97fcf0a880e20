package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-scanline-raytracer/pkg/camera"
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

var (
	ErrInvalidScene    = errors.New("invalid scene file")
	ErrUnknownShape    = errors.New("unknown shape type")
	ErrUnknownMaterial = errors.New("unknown material type")
)

// SceneFile is the YAML layout of a scene description
type SceneFile struct {
	Name       string         `yaml:"name"`
	Camera     *CameraSpec    `yaml:"camera"`
	Background BackgroundSpec `yaml:"background"`
	Objects    []ObjectSpec   `yaml:"objects"`
}

// CameraSpec is a partial set of bearings; missing fields come from the default viewpoint
type CameraSpec struct {
	LookFrom       []float64 `yaml:"look_from,flow"`
	LookAt         []float64 `yaml:"look_at,flow"`
	Up             []float64 `yaml:"up,flow"`
	FovDegrees     float64   `yaml:"fov_degrees"`
	DefocusDegrees float64   `yaml:"defocus_degrees"`
	FocusDistance  float64   `yaml:"focus_distance"`
}

// BackgroundSpec selects the environment seen by escaping rays
type BackgroundSpec struct {
	Type   string    `yaml:"type"` // gradient (default), flat or image
	Top    []float64 `yaml:"top,flow"`
	Bottom []float64 `yaml:"bottom,flow"`
	Color  []float64 `yaml:"color,flow"`
	Path   string    `yaml:"path"` // Equirectangular image, relative to the scene file
}

// ObjectSpec pairs one shape with one material
type ObjectSpec struct {
	Shape    ShapeSpec    `yaml:"shape"`
	Material MaterialSpec `yaml:"material"`
}

// ShapeSpec describes a sphere, or a medium bounded by another shape
type ShapeSpec struct {
	Type     string     `yaml:"type"`
	Center   []float64  `yaml:"center,flow"`
	Radius   float64    `yaml:"radius"`
	Density  float64    `yaml:"density"`
	Boundary *ShapeSpec `yaml:"boundary"`
}

// MaterialSpec describes how a surface scatters light
type MaterialSpec struct {
	Type            string    `yaml:"type"`
	Albedo          []float64 `yaml:"albedo,flow"`
	Polish          float64   `yaml:"polish"`
	RefractionIndex float64   `yaml:"refraction_index"`
}

// LoadScene reads a YAML scene file. Image paths inside it are resolved
// relative to the file's directory.
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := parseScene(file, filepath.Dir(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if s.Name == "" {
		s.Name = filepath.Base(filename)
	}
	return s, nil
}

// ParseScene builds a scene from YAML, resolving image paths against the working directory
func ParseScene(reader io.Reader) (*scene.Scene, error) {
	return parseScene(reader, ".")
}

func parseScene(reader io.Reader, baseDir string) (*scene.Scene, error) {
	var spec SceneFile
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScene)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	return spec.Build(baseDir)
}

// Build turns the parsed description into a scene
func (f *SceneFile) Build(baseDir string) (*scene.Scene, error) {
	background, err := f.Background.build(baseDir)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	s := scene.New(f.Name, background)
	s.Bearings, err = f.Camera.build(scene.DefaultBearings())
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	if len(f.Objects) == 0 {
		return nil, fmt.Errorf("%w: no objects", ErrInvalidScene)
	}
	for i, obj := range f.Objects {
		shape, err := obj.Shape.build()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		mat, err := obj.Material.build()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.Add(shape, mat)
	}
	return s, nil
}

func (c *CameraSpec) build(defaults camera.Bearings) (camera.Bearings, error) {
	b := defaults
	if c == nil {
		return b, nil
	}

	var err error
	if b.LookFrom, err = optionalVec(c.LookFrom, b.LookFrom, "look_from"); err != nil {
		return b, err
	}
	if b.LookAt, err = optionalVec(c.LookAt, b.LookAt, "look_at"); err != nil {
		return b, err
	}
	if b.Up, err = optionalVec(c.Up, b.Up, "up"); err != nil {
		return b, err
	}
	if c.FovDegrees != 0 {
		b.FovDegrees = c.FovDegrees
	}
	b.DefocusDegrees = c.DefocusDegrees
	b.FocusDistance = c.FocusDistance
	return b, nil
}

func (bg BackgroundSpec) build(baseDir string) (scene.Background, error) {
	switch bg.Type {
	case "", "gradient":
		top, err := optionalColor(bg.Top, scene.SkyBlue, "top")
		if err != nil {
			return nil, err
		}
		bottom, err := optionalColor(bg.Bottom, core.White, "bottom")
		if err != nil {
			return nil, err
		}
		return scene.Gradient(top, bottom), nil
	case "flat":
		c, err := requiredColor(bg.Color, "color")
		if err != nil {
			return nil, err
		}
		return scene.Flat(c), nil
	case "image":
		if bg.Path == "" {
			return nil, fmt.Errorf("%w: image background needs a path", ErrInvalidScene)
		}
		path := bg.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		return LoadEnvironment(path)
	default:
		return nil, fmt.Errorf("%w: unknown background type %q", ErrInvalidScene, bg.Type)
	}
}

func (s ShapeSpec) build() (geometry.Shape, error) {
	switch s.Type {
	case "sphere":
		center, err := requiredVec(s.Center, "center")
		if err != nil {
			return nil, err
		}
		if s.Radius == 0 {
			return nil, fmt.Errorf("%w: sphere radius must be non-zero", ErrInvalidScene)
		}
		return geometry.NewSphere(center, s.Radius), nil
	case "medium":
		if s.Density <= 0 {
			return nil, fmt.Errorf("%w: medium density must be positive, got %g", ErrInvalidScene, s.Density)
		}
		if s.Boundary == nil {
			return nil, fmt.Errorf("%w: medium needs a boundary", ErrInvalidScene)
		}
		boundary, err := s.Boundary.build()
		if err != nil {
			return nil, fmt.Errorf("boundary: %w", err)
		}
		return geometry.NewMedium(boundary, s.Density), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, s.Type)
	}
}

func (m MaterialSpec) build() (material.Material, error) {
	switch m.Type {
	case "opaque":
		albedo, err := requiredColor(m.Albedo, "albedo")
		if err != nil {
			return nil, err
		}
		if m.Polish < 0 || m.Polish > 1 {
			return nil, fmt.Errorf("%w: polish %g outside [0, 1]", ErrInvalidScene, m.Polish)
		}
		return material.NewOpaque(albedo, m.Polish), nil
	case "transparent":
		if m.RefractionIndex <= 0 {
			return nil, fmt.Errorf("%w: refraction index must be positive, got %g", ErrInvalidScene, m.RefractionIndex)
		}
		return material.NewTransparent(m.RefractionIndex), nil
	case "isotropic":
		albedo, err := requiredColor(m.Albedo, "albedo")
		if err != nil {
			return nil, err
		}
		return material.NewIsotropic(albedo), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMaterial, m.Type)
	}
}

func requiredVec(values []float64, field string) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidScene, field, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}

func optionalVec(values []float64, fallback core.Vec3, field string) (core.Vec3, error) {
	if len(values) == 0 {
		return fallback, nil
	}
	return requiredVec(values, field)
}

func requiredColor(values []float64, field string) (core.Color, error) {
	v, err := requiredVec(values, field)
	if err != nil {
		return core.Color{}, err
	}
	return core.NewColor(v.X, v.Y, v.Z), nil
}

func optionalColor(values []float64, fallback core.Color, field string) (core.Color, error) {
	if len(values) == 0 {
		return fallback, nil
	}
	return requiredColor(values, field)
}
