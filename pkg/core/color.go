package core

import "math"

// Color is a linear RGB radiance value. Channels may exceed 1 before encoding.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale multiplies every channel by s
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Attenuate returns the channel-wise product
func (c Color) Attenuate(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Mix linearly interpolates from a (t=0) to b (t=1)
func Mix(a, b Color, t float64) Color {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Average returns the arithmetic mean of the samples, or Black for none
func Average(samples []Color) Color {
	if len(samples) == 0 {
		return Black
	}
	var sum Color
	for _, s := range samples {
		sum = sum.Add(s)
	}
	return sum.Scale(1.0 / float64(len(samples)))
}

// minWeightFraction is the smallest |Σ wᵢ| / Σ |wᵢ| WeightedAverage will divide by
const minWeightFraction = 0.1

// WeightedAverage returns Σ wᵢcᵢ / Σ wᵢ, clamped per channel to the range spanned by
// the samples. Negative-lobed filters can nearly cancel their own weights; when
// |Σ wᵢ| drops below minWeightFraction of Σ |wᵢ| the plain mean is used instead.
func WeightedAverage(samples []Color, weights []float64) Color {
	if len(samples) == 0 {
		return Black
	}
	var sum Color
	var weightSum, absWeightSum float64
	lo, hi := samples[0], samples[0]
	for i, s := range samples {
		sum = sum.Add(s.Scale(weights[i]))
		weightSum += weights[i]
		absWeightSum += math.Abs(weights[i])
		lo = Color{min(lo.R, s.R), min(lo.G, s.G), min(lo.B, s.B)}
		hi = Color{max(hi.R, s.R), max(hi.G, s.G), max(hi.B, s.B)}
	}
	if absWeightSum == 0 || math.Abs(weightSum) < minWeightFraction*absWeightSum {
		return Average(samples)
	}
	mean := sum.Scale(1.0 / weightSum)
	return Color{
		R: max(lo.R, min(hi.R, mean.R)),
		G: max(lo.G, min(hi.G, mean.G)),
		B: max(lo.B, min(hi.B, mean.B)),
	}
}

// GammaEncode raises every non-negative channel to the given exponent.
// Negative channels become 0.
func (c Color) GammaEncode(exponent float64) Color {
	enc := func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		return math.Pow(x, exponent)
	}
	return Color{enc(c.R), enc(c.G), enc(c.B)}
}

// Luminance returns the perceptual luminance of the color
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}
