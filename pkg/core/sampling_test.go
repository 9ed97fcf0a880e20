package core

import (
	"math"
	"testing"
)

func TestSampleOnUnitSphere_UnitLength(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit vector, got %v with length %f", v, v.Length())
		}
	}
}

func TestSampleOnUnitSphere_Poles(t *testing.T) {
	tests := []struct {
		name     string
		sample   Vec2
		expected Vec3
	}{
		{"north pole", NewVec2(0, 0.3), NewVec3(0, 0, 1)},
		{"south pole", NewVec2(1, 0.7), NewVec3(0, 0, -1)},
		{"equator", NewVec2(0.5, 0), NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleOnUnitSphere(tt.sample)
			if result.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 {
			t.Fatalf("Expected point in XY plane, got %v", p)
		}
		if p.LengthSquared() > 1.0+1e-9 {
			t.Fatalf("Point %v lies outside unit disk", p)
		}
	}

	center := SamplePointInUnitDisk(NewVec2(0.5, 0.5))
	if center != NewVec3(0, 0, 0) {
		t.Errorf("Expected center sample to map to origin, got %v", center)
	}
}

func TestSampleExponential(t *testing.T) {
	if d := SampleExponential(2.0, 0); d != 0 {
		t.Errorf("Expected zero distance for u=0, got %f", d)
	}

	// Median of Exp(rate) is ln(2)/rate
	median := SampleExponential(4.0, 0.5)
	if math.Abs(median-math.Ln2/4.0) > 1e-12 {
		t.Errorf("Expected median %f, got %f", math.Ln2/4.0, median)
	}

	// Sample mean converges to 1/rate
	sampler := NewSeededSampler(1)
	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += SampleExponential(5.0, sampler.Get1D())
	}
	if mean := sum / n; math.Abs(mean-0.2) > 0.005 {
		t.Errorf("Expected mean near 0.2, got %f", mean)
	}
}
