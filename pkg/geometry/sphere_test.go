package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"perpendicular offset beyond radius", core.NewRay(core.NewVec3(1.01, 0, 5), core.NewVec3(0, 0, -1))},
		{"tangent", core.NewRay(core.NewVec3(1, 0, 5), core.NewVec3(0, 0, -1))},
		{"pointing away", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1))},
		{"parallel to surface", core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))},
		{"zero direction", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(tt.ray, 0.001, math.Inf(1), nil)
			if isHit {
				t.Errorf("Expected miss, but got hit at t=%f", hit.T)
			}
		})
	}
}

func TestSphere_Hit_AxisDistance(t *testing.T) {
	axes := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 0, -1),
	}
	const radius = 2.0
	const distance = 5.0

	for _, axis := range axes {
		sphere := NewSphere(core.NewVec3(0, 0, 0), radius)
		ray := core.NewRay(axis.Multiply(distance), axis.Negate())

		hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1), nil)
		if !isHit {
			t.Fatalf("Expected hit along axis %v", axis)
		}
		if math.Abs(hit.T-(distance-radius)) > 1e-9 {
			t.Errorf("Axis %v: expected t=%f, got t=%f", axis, distance-radius, hit.T)
		}
		if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
			t.Errorf("Axis %v: expected unit normal, got length %f", axis, hit.Normal.Length())
		}
		if !vecNear(hit.Normal, axis, 1e-9) {
			t.Errorf("Axis %v: expected outward normal %v, got %v", axis, axis, hit.Normal)
		}
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	tests := []struct {
		name           string
		radius         float64
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			radius:         1.0,
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit from inside keeps outward normal",
			radius:         1.0,
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "negative radius flips normal inward",
			radius:         -1.0,
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "negative radius seen from inside",
			radius:         -1.0,
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(core.NewVec3(0, 0, 0), tt.radius)
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0, nil)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			if !vecNear(hit.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	hit, isHit := sphere.Hit(ray, 0.001, 0.5, nil)
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	hit, isHit = sphere.Hit(ray, 3.5, 1000.0, nil)
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Both ends of the interval are exclusive
	hit, isHit = sphere.Hit(ray, 0.001, 1.0, nil)
	if isHit {
		t.Errorf("Expected miss when t equals tMax, but got hit at t=%f", hit.T)
	}

	hit, isHit = sphere.Hit(ray, 1.0, 1000.0, nil)
	if !isHit {
		t.Fatal("Expected far root when near root equals tMin")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root t=3, got t=%f", hit.T)
	}
}

func TestSphere_Contains(t *testing.T) {
	tests := []struct {
		name     string
		radius   float64
		point    core.Vec3
		expected bool
	}{
		{"center", 1.0, core.NewVec3(0, 0, 0), true},
		{"inside", 1.0, core.NewVec3(0.5, 0.5, 0), true},
		{"on surface", 1.0, core.NewVec3(1, 0, 0), false},
		{"outside", 1.0, core.NewVec3(2, 0, 0), false},
		{"negative radius interior", -1.0, core.NewVec3(0.2, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(core.NewVec3(0, 0, 0), tt.radius)
			if got := sphere.Contains(tt.point); got != tt.expected {
				t.Errorf("Expected Contains(%v)=%t, got %t", tt.point, tt.expected, got)
			}
		})
	}
}
