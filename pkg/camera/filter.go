package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

var ErrUnknownFilter = errors.New("unknown reconstruction filter")

// FilterSample is a sub-pixel offset and the weight of a sample taken there
type FilterSample struct {
	DX, DY float64
	Weight float64
}

// Filter turns a uniform 2D sample into a sub-pixel offset with a reconstruction weight
type Filter interface {
	Sample(u core.Vec2) FilterSample
	Radius() float64
}

// BoxFilter jitters uniformly over the pixel square with unit weight
type BoxFilter struct{}

func (BoxFilter) Sample(u core.Vec2) FilterSample {
	return FilterSample{DX: u.X - 0.5, DY: u.Y - 0.5, Weight: 1}
}

func (BoxFilter) Radius() float64 { return 0.5 }

// GaussianFilter weights samples with a truncated Gaussian, shifted to reach zero at the radius
type GaussianFilter struct {
	Width float64
	Alpha float64
}

// NewGaussianFilter creates a Gaussian filter with a 1.5 pixel radius and falloff 2
func NewGaussianFilter() GaussianFilter {
	return GaussianFilter{Width: 1.5, Alpha: 2}
}

func (g GaussianFilter) Sample(u core.Vec2) FilterSample {
	dx := (2*u.X - 1) * g.Width
	dy := (2*u.Y - 1) * g.Width
	return FilterSample{DX: dx, DY: dy, Weight: g.gaussian(dx) * g.gaussian(dy)}
}

func (g GaussianFilter) Radius() float64 { return g.Width }

func (g GaussianFilter) gaussian(d float64) float64 {
	edge := math.Exp(-g.Alpha * g.Width * g.Width)
	return math.Max(0, math.Exp(-g.Alpha*d*d)-edge)
}

// MitchellFilter is the Mitchell-Netravali cubic. Its weights go negative near the
// edge, which sharpens the result.
type MitchellFilter struct {
	Width float64
	B, C  float64
}

// NewMitchellFilter creates the recommended B = C = 1/3 filter with a 2 pixel radius
func NewMitchellFilter() MitchellFilter {
	return MitchellFilter{Width: 2, B: 1.0 / 3.0, C: 1.0 / 3.0}
}

func (m MitchellFilter) Sample(u core.Vec2) FilterSample {
	dx := (2*u.X - 1) * m.Width
	dy := (2*u.Y - 1) * m.Width
	return FilterSample{DX: dx, DY: dy, Weight: m.mitchell1D(dx/m.Width) * m.mitchell1D(dy/m.Width)}
}

func (m MitchellFilter) Radius() float64 { return m.Width }

// mitchell1D evaluates the cubic for x in [-1, 1], mapped onto its natural support [-2, 2]
func (m MitchellFilter) mitchell1D(x float64) float64 {
	x = math.Abs(2 * x)
	b, c := m.B, m.C
	switch {
	case x > 2:
		return 0
	case x > 1:
		return ((-b-6*c)*x*x*x + (6*b+30*c)*x*x + (-12*b-48*c)*x + (8*b + 24*c)) / 6
	default:
		return ((12-9*b-6*c)*x*x*x + (-18+12*b+6*c)*x*x + (6 - 2*b)) / 6
	}
}

// NewFilter returns the named filter: box, gaussian or mitchell
func NewFilter(name string) (Filter, error) {
	switch name {
	case "", "box":
		return BoxFilter{}, nil
	case "gaussian":
		return NewGaussianFilter(), nil
	case "mitchell":
		return NewMitchellFilter(), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: box, gaussian, mitchell)", ErrUnknownFilter, name)
	}
}
