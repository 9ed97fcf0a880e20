package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// fixedSampler returns the same value for every draw
type fixedSampler struct {
	value float64
}

func (f fixedSampler) Get1D() float64 { return f.value }
func (f fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.value, f.value)
}

// samplerForDistance returns a sampler whose exponential draw yields distance for the given rate
func samplerForDistance(distance, rate float64) fixedSampler {
	return fixedSampler{value: 1 - math.Exp(-distance*rate)}
}

func TestMedium_Hit(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	medium := NewMedium(boundary, 1.0)

	tests := []struct {
		name      string
		ray       core.Ray
		tMax      float64
		distance  float64
		expectHit bool
		expectedT float64
	}{
		{
			name:      "interaction at entry",
			ray:       core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)),
			tMax:      math.Inf(1),
			distance:  0,
			expectHit: true,
			expectedT: 4,
		},
		{
			name:      "interaction inside volume",
			ray:       core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)),
			tMax:      math.Inf(1),
			distance:  1,
			expectHit: true,
			expectedT: 5,
		},
		{
			name:      "free path beyond exit",
			ray:       core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)),
			tMax:      math.Inf(1),
			distance:  3,
			expectHit: false,
		},
		{
			name:      "non-unit direction converts distance to ray parameter",
			ray:       core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 2)),
			tMax:      math.Inf(1),
			distance:  1,
			expectHit: true,
			expectedT: 2.5,
		},
		{
			name:      "origin inside boundary",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
			tMax:      math.Inf(1),
			distance:  0.5,
			expectHit: true,
			expectedT: 0.501,
		},
		{
			name:      "tMax closes the volume early",
			ray:       core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)),
			tMax:      5,
			distance:  1.5,
			expectHit: false,
		},
		{
			name:      "ray misses boundary",
			ray:       core.NewRay(core.NewVec3(3, 0, -5), core.NewVec3(0, 0, 1)),
			tMax:      math.Inf(1),
			distance:  0,
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := samplerForDistance(tt.distance, medium.Density)
			hit, isHit := medium.Hit(tt.ray, 0.001, tt.tMax, sampler)

			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if !hit.FrontFace {
				t.Error("Expected medium hits to be front facing")
			}
			if !vecNear(hit.Normal, tt.ray.Direction.Normalize(), 1e-12) {
				t.Errorf("Expected normal along ray direction, got %v", hit.Normal)
			}
			if !vecNear(hit.Point, tt.ray.At(hit.T), 1e-12) {
				t.Errorf("Expected hit point %v, got %v", tt.ray.At(hit.T), hit.Point)
			}
		})
	}
}

func TestMedium_ZeroDensity(t *testing.T) {
	medium := NewMedium(NewSphere(core.NewVec3(0, 0, 0), 1.0), 0)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	if _, isHit := medium.Hit(ray, 0.001, math.Inf(1), fixedSampler{value: 0}); isHit {
		t.Error("Expected zero-density medium to be transparent")
	}
}

func TestMedium_DenserScattersSooner(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	sampler := core.NewSeededSampler(42)

	hitRate := func(density float64) float64 {
		medium := NewMedium(NewSphere(core.NewVec3(0, 0, 0), 1.0), density)
		hits := 0
		for i := 0; i < 5000; i++ {
			if _, ok := medium.Hit(ray, 0.001, math.Inf(1), sampler); ok {
				hits++
			}
		}
		return float64(hits) / 5000
	}

	thin := hitRate(0.1)
	thick := hitRate(5.0)
	if thin >= thick {
		t.Errorf("Expected denser medium to scatter more often: thin=%f thick=%f", thin, thick)
	}

	// Probability of interacting within a chord of length 2 is 1 - exp(-2·density)
	if expected := 1 - math.Exp(-0.2); math.Abs(thin-expected) > 0.03 {
		t.Errorf("Expected thin hit rate near %f, got %f", expected, thin)
	}
}

func TestMedium_Contains(t *testing.T) {
	medium := NewMedium(NewSphere(core.NewVec3(0, 0, 0), 1.0), 1.0)
	if medium.Contains(core.NewVec3(0, 0, 0)) {
		t.Error("Expected medium to never report containment")
	}
}
