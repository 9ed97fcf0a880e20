package scene

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// Background maps a unit direction to the color of the environment in that direction.
// Implementations must be pure: they are called concurrently by all workers.
type Background func(direction core.Vec3) core.Color

// SkyBlue is the top color of the default sky gradient
var SkyBlue = core.NewColor(0.5, 0.7, 1.0)

// Gradient blends vertically from bottom (straight down) to top (straight up)
func Gradient(top, bottom core.Color) Background {
	return func(direction core.Vec3) core.Color {
		// Map y from [-1,1] to [0,1]
		t := 0.5 * (direction.Y + 1.0)
		return core.Mix(bottom, top, t)
	}
}

// Flat returns the same color in every direction
func Flat(color core.Color) Background {
	return func(core.Vec3) core.Color {
		return color
	}
}

// Sky is the default white-to-blue gradient
func Sky() Background {
	return Gradient(SkyBlue, core.White)
}

// Equirectangular samples a latitude-longitude environment map stored row-major,
// top row first. Straight up maps to row 0; -Z is the left and right edge.
func Equirectangular(width, height int, pixels []core.Color) Background {
	return func(direction core.Vec3) core.Color {
		u := 0.5 + math.Atan2(direction.X, direction.Z)/(2*math.Pi)
		v := math.Acos(math.Max(-1, math.Min(1, direction.Y))) / math.Pi

		x := min(int(u*float64(width)), width-1)
		y := min(int(v*float64(height)), height-1)
		return pixels[y*width+max(x, 0)]
	}
}
