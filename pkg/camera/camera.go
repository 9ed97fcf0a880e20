package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

var (
	ErrInvalidBearings       = errors.New("invalid camera bearings")
	ErrInvalidImageSettings  = errors.New("invalid image settings")
	ErrInvalidRenderSettings = errors.New("invalid render settings")
	ErrUnknownPreset         = errors.New("unknown render preset")
)

// degenerateLength is the shortest view or up vector the camera accepts
const degenerateLength = 1e-9

// Bearings places the camera in the world
type Bearings struct {
	LookFrom       core.Vec3
	LookAt         core.Vec3
	Up             core.Vec3
	FovDegrees     float64 // Vertical field of view
	DefocusDegrees float64 // Cone angle of the thin lens; 0 disables depth of field
	FocusDistance  float64 // Distance to the plane of perfect focus; 0 means |LookAt-LookFrom|
}

// ImageSettings describes the output raster
type ImageSettings struct {
	ImageWidth  int
	AspectRatio float64
}

// Height returns the image height, rounded to the nearest pixel
func (s ImageSettings) Height() int {
	if s.AspectRatio <= 0 {
		return 0
	}
	return int(math.Round(float64(s.ImageWidth) / s.AspectRatio))
}

// RenderSettings controls sampling quality
type RenderSettings struct {
	SamplesPerPixel int
	MaxDepth        int
}

// Shallow is the quick preview preset
func Shallow() RenderSettings {
	return RenderSettings{SamplesPerPixel: 10, MaxDepth: 10}
}

// Deep is the final quality preset
func Deep() RenderSettings {
	return RenderSettings{SamplesPerPixel: 100, MaxDepth: 50}
}

// Preset returns the named render settings
func Preset(name string) (RenderSettings, error) {
	switch name {
	case "shallow":
		return Shallow(), nil
	case "deep":
		return Deep(), nil
	default:
		return RenderSettings{}, fmt.Errorf("%w: %q (available: shallow, deep)", ErrUnknownPreset, name)
	}
}

// Camera generates primary rays for pixel samples.
// The pixel vectors are pre-scaled so one unit of pixel offset is one pixel step in world space.
type Camera struct {
	position     core.Vec3
	center       core.Vec3 // Center of the image on the focal plane
	pixelRight   core.Vec3
	pixelUp      core.Vec3
	defocusRight core.Vec3
	defocusUp    core.Vec3
	defocus      bool

	ImageWidth      int
	ImageHeight     int
	SamplesPerPixel int
	MaxDepth        int

	filter Filter
}

// NewCamera validates the settings and builds the view basis
func NewCamera(b Bearings, img ImageSettings, rs RenderSettings) (*Camera, error) {
	height := img.Height()
	if img.ImageWidth <= 0 || img.AspectRatio <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width %d, aspect ratio %g", ErrInvalidImageSettings, img.ImageWidth, img.AspectRatio)
	}
	if rs.SamplesPerPixel <= 0 || rs.MaxDepth <= 0 {
		return nil, fmt.Errorf("%w: %d samples per pixel, max depth %d", ErrInvalidRenderSettings, rs.SamplesPerPixel, rs.MaxDepth)
	}
	if b.FovDegrees <= 0 || b.FovDegrees >= 180 {
		return nil, fmt.Errorf("%w: field of view %g must be in (0, 180)", ErrInvalidBearings, b.FovDegrees)
	}
	if b.DefocusDegrees < 0 || b.DefocusDegrees >= 180 {
		return nil, fmt.Errorf("%w: defocus angle %g must be in [0, 180)", ErrInvalidBearings, b.DefocusDegrees)
	}

	view := b.LookAt.Subtract(b.LookFrom)
	if view.Length() < degenerateLength {
		return nil, fmt.Errorf("%w: look-from and look-at coincide", ErrInvalidBearings)
	}
	w := view.Normalize()

	// Reproject up so it is perpendicular to the view direction
	up := b.Up.Subtract(w.Multiply(b.Up.Dot(w)))
	if up.Length() < degenerateLength {
		return nil, fmt.Errorf("%w: up vector is parallel to the view direction", ErrInvalidBearings)
	}
	u := up.Normalize()
	right := w.Cross(u)

	focus := b.FocusDistance
	if focus <= 0 {
		focus = view.Length()
	}

	step := 2 * math.Tan(degreesToRadians(b.FovDegrees)/2) * focus / float64(height)
	lensRadius := focus * math.Tan(degreesToRadians(b.DefocusDegrees)/2)

	return &Camera{
		position:        b.LookFrom,
		center:          b.LookFrom.Add(w.Multiply(focus)),
		pixelRight:      right.Multiply(step),
		pixelUp:         u.Multiply(step),
		defocusRight:    right.Multiply(lensRadius),
		defocusUp:       u.Multiply(lensRadius),
		defocus:         lensRadius > 0,
		ImageWidth:      img.ImageWidth,
		ImageHeight:     height,
		SamplesPerPixel: rs.SamplesPerPixel,
		MaxDepth:        rs.MaxDepth,
		filter:          BoxFilter{},
	}, nil
}

// SetFilter replaces the reconstruction filter; nil restores the box filter
func (c *Camera) SetFilter(filter Filter) {
	if filter == nil {
		filter = BoxFilter{}
	}
	c.filter = filter
}

// Filter returns the reconstruction filter in use
func (c *Camera) Filter() Filter {
	return c.filter
}

// Ray returns a jittered primary ray through pixel (x, y) and the filter weight of the sample.
// Row 0 is the top of the image.
func (c *Camera) Ray(x, y int, sampler core.Sampler) (core.Ray, float64) {
	fs := c.filter.Sample(sampler.Get2D())
	fx := float64(x) + 0.5 + fs.DX
	fy := float64(y) + 0.5 + fs.DY

	origin := c.position
	if c.defocus {
		d := core.SamplePointInUnitDisk(sampler.Get2D())
		origin = origin.Add(c.defocusRight.Multiply(d.X)).Add(c.defocusUp.Multiply(d.Y))
	}

	return c.rayFrom(origin, fx, fy), fs.Weight
}

// PrimaryRay returns the unjittered ray through continuous image coordinates (fx, fy),
// measured in pixels from the top-left corner.
func (c *Camera) PrimaryRay(fx, fy float64) core.Ray {
	return c.rayFrom(c.position, fx, fy)
}

func (c *Camera) rayFrom(origin core.Vec3, fx, fy float64) core.Ray {
	px := fx - float64(c.ImageWidth)/2
	py := float64(c.ImageHeight)/2 - fy

	target := c.center.Add(c.pixelRight.Multiply(px)).Add(c.pixelUp.Multiply(py))
	return core.NewRay(origin, target.Subtract(origin).Normalize())
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
