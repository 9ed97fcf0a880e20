package renderer

import (
	"time"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width            int
	Height           int
	Rows             int           // Rows collected so far
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of samples taken
	AverageSamples   float64       // Average samples per pixel
	AverageLuminance float64       // Mean luminance of the collected pixels
	Workers          int           // Number of render goroutines
	RowsByWorker     []int         // Rows rendered by each worker
	Duration         time.Duration // Wall time from start to the last collected row

	luminanceSum float64
}

// addRow records one collected scanline
func (s *RenderStats) addRow(worker int, row []core.Color, samplesPerPixel int) {
	pixels := len(row)
	s.Rows++
	s.TotalPixels += pixels
	s.TotalSamples += pixels * samplesPerPixel
	for _, c := range row {
		s.luminanceSum += c.Luminance()
	}
	if worker >= 0 && worker < len(s.RowsByWorker) {
		s.RowsByWorker[worker]++
	}
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
		s.AverageLuminance = s.luminanceSum / float64(s.TotalPixels)
	}
}

// RowsPerSecond returns the collection rate, or 0 before any time has elapsed
func (s RenderStats) RowsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Rows) / s.Duration.Seconds()
}
