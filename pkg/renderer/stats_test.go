package renderer

import (
	"math"
	"testing"
	"time"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

func uniformRow(width int, c core.Color) []core.Color {
	row := make([]core.Color, width)
	for i := range row {
		row[i] = c
	}
	return row
}

func TestRenderStats_AddRow(t *testing.T) {
	stats := RenderStats{RowsByWorker: make([]int, 2)}

	stats.addRow(0, uniformRow(10, core.White), 4)
	stats.addRow(1, uniformRow(10, core.Black), 4)
	stats.addRow(1, uniformRow(10, core.White), 4)

	if stats.Rows != 3 || stats.TotalPixels != 30 || stats.TotalSamples != 120 {
		t.Errorf("Unexpected totals %+v", stats)
	}
	if stats.AverageSamples != 4 {
		t.Errorf("Expected 4 average samples, got %f", stats.AverageSamples)
	}
	if math.Abs(stats.AverageLuminance-2.0/3.0) > 1e-9 {
		t.Errorf("Expected average luminance 2/3, got %f", stats.AverageLuminance)
	}
	if stats.RowsByWorker[0] != 1 || stats.RowsByWorker[1] != 2 {
		t.Errorf("Unexpected per-worker rows %v", stats.RowsByWorker)
	}
}

func TestRenderStats_RowsPerSecond(t *testing.T) {
	if got := (RenderStats{Rows: 10}).RowsPerSecond(); got != 0 {
		t.Errorf("Expected 0 with no elapsed time, got %f", got)
	}
	if got := (RenderStats{Rows: 10, Duration: 2 * time.Second}).RowsPerSecond(); got != 5 {
		t.Errorf("Expected 5 rows/s, got %f", got)
	}
}
