package renderer

import (
	"math"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/df07/go-scanline-raytracer/pkg/camera"
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

// MinHitDistance keeps scattered rays from re-hitting the surface they just left
const MinHitDistance = 0.001

// RowSink receives finished scanlines
type RowSink interface {
	SetRow(row []core.Color, y int)
}

// ProgressFunc is called by the collector after each finished row
type ProgressFunc func(done, total int)

// SamplerFactory creates the sampler owned by one worker
type SamplerFactory func(worker int) core.Sampler

// Raytracer handles the rendering process
type Raytracer struct {
	scene      *scene.Scene
	camera     *camera.Camera
	logger     *zap.Logger
	workers    int
	newSampler SamplerFactory
	progress   ProgressFunc
}

// NewRaytracer creates a raytracer for the scene as seen by cam.
// A nil logger disables logging.
func NewRaytracer(s *scene.Scene, cam *camera.Camera, logger *zap.Logger) *Raytracer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Raytracer{
		scene:      s,
		camera:     cam,
		logger:     logger,
		newSampler: ClockSeededSamplers,
	}
}

// ClockSeededSamplers gives every worker its own generator seeded from the clock
func ClockSeededSamplers(worker int) core.Sampler {
	return core.NewSeededSampler(time.Now().UnixNano() + int64(worker)*7919)
}

// SetWorkers sets the number of render goroutines; n <= 0 uses one per CPU
func (rt *Raytracer) SetWorkers(n int) {
	rt.workers = n
}

// SetSamplerFactory replaces the per-worker sampler source
func (rt *Raytracer) SetSamplerFactory(factory SamplerFactory) {
	if factory == nil {
		factory = ClockSeededSamplers
	}
	rt.newSampler = factory
}

// SetProgress installs a callback invoked after every collected row
func (rt *Raytracer) SetProgress(progress ProgressFunc) {
	rt.progress = progress
}

func (rt *Raytracer) workerCount() int {
	if rt.workers <= 0 {
		return runtime.NumCPU()
	}
	return rt.workers
}

// RayColor returns the radiance carried back along ray.
// Paths are cut off at the camera's max depth, contributing black.
func (rt *Raytracer) RayColor(ray core.Ray, depth int, sampler core.Sampler) core.Color {
	if depth >= rt.camera.MaxDepth {
		return core.Black
	}

	object, hit, isHit := rt.scene.FirstHit(ray, MinHitDistance, math.Inf(1), sampler)
	if !isHit {
		return rt.scene.BackgroundColor(ray)
	}
	if object.Material == nil {
		return core.Black
	}

	scatter, didScatter := object.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Black // Material absorbed the ray
	}

	return scatter.Attenuation.Attenuate(rt.RayColor(scatter.Scattered, depth+1, sampler))
}

// pixelScratch holds per-worker sample storage reused across pixels
type pixelScratch struct {
	colors  []core.Color
	weights []float64
}

func newPixelScratch(samples int) *pixelScratch {
	return &pixelScratch{
		colors:  make([]core.Color, samples),
		weights: make([]float64, samples),
	}
}

// SamplePixel returns the filter-weighted mean of the pixel's samples
func (rt *Raytracer) SamplePixel(x, y int, sampler core.Sampler) core.Color {
	return rt.samplePixel(x, y, sampler, newPixelScratch(rt.camera.SamplesPerPixel))
}

func (rt *Raytracer) samplePixel(x, y int, sampler core.Sampler, scratch *pixelScratch) core.Color {
	for s := 0; s < rt.camera.SamplesPerPixel; s++ {
		ray, weight := rt.camera.Ray(x, y, sampler)
		scratch.colors[s] = rt.RayColor(ray, 0, sampler)
		scratch.weights[s] = weight
	}
	return core.WeightedAverage(scratch.colors, scratch.weights)
}

// RenderRow renders scanline y from left to right
func (rt *Raytracer) RenderRow(y int, sampler core.Sampler) []core.Color {
	return rt.renderRow(y, sampler, newPixelScratch(rt.camera.SamplesPerPixel))
}

func (rt *Raytracer) renderRow(y int, sampler core.Sampler, scratch *pixelScratch) []core.Color {
	row := make([]core.Color, rt.camera.ImageWidth)
	for x := range row {
		row[x] = rt.samplePixel(x, y, sampler, scratch)
	}
	return row
}
