package renderer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/imagebuf"
)

// scanlineQueue hands out row indices to workers, one row per claim
type scanlineQueue struct {
	mu     sync.Mutex
	next   int
	height int
}

// claim returns the next unrendered row, or false once every row is taken
func (q *scanlineQueue) claim() (int, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.next >= q.height {
		return 0, false
	}
	y := q.next
	q.next++
	return y, true
}

// rowResult is one finished scanline sent from a worker to the collector
type rowResult struct {
	Y      int
	Worker int
	Pixels []core.Color
}

// Render renders the whole image into a new buffer
func (rt *Raytracer) Render(ctx context.Context) (*imagebuf.Buffer, RenderStats, error) {
	buf := imagebuf.New(rt.camera.ImageWidth, rt.camera.ImageHeight)
	stats, err := rt.RenderInto(ctx, buf)
	if err != nil {
		return nil, stats, err
	}
	return buf, stats, nil
}

// RenderInto renders every row exactly once and writes it to sink at its row index.
// Workers claim rows from a shared queue and send them to the calling goroutine,
// which is the only one that touches sink. Cancelling ctx abandons the render.
func (rt *Raytracer) RenderInto(ctx context.Context, sink RowSink) (RenderStats, error) {
	width, height := rt.camera.ImageWidth, rt.camera.ImageHeight
	workers := rt.workerCount()

	stats := RenderStats{
		Width:        width,
		Height:       height,
		Workers:      workers,
		RowsByWorker: make([]int, workers),
	}

	rt.logger.Info("render started",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("samples_per_pixel", rt.camera.SamplesPerPixel),
		zap.Int("max_depth", rt.camera.MaxDepth),
		zap.Int("workers", workers),
		zap.Int("objects", len(rt.scene.Objects)),
	)

	start := time.Now()
	queue := &scanlineQueue{height: height}

	// Buffered to the full image so a worker send never blocks
	results := make(chan rowResult, height)

	g, gctx := errgroup.WithContext(ctx)
	for worker := 0; worker < workers; worker++ {
		g.Go(func() error {
			sampler := rt.newSampler(worker)
			scratch := newPixelScratch(rt.camera.SamplesPerPixel)
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				y, ok := queue.claim()
				if !ok {
					return nil
				}
				results <- rowResult{Y: y, Worker: worker, Pixels: rt.renderRow(y, sampler, scratch)}
			}
		})
	}

	collectErr := rt.collect(gctx, results, sink, &stats)
	waitErr := g.Wait()
	stats.Duration = time.Since(start)

	if collectErr != nil {
		rt.logger.Warn("render cancelled",
			zap.Int("rows_done", stats.Rows),
			zap.Int("rows_total", height),
			zap.Error(collectErr),
		)
		return stats, collectErr
	}
	if waitErr != nil {
		return stats, fmt.Errorf("render failed: %w", waitErr)
	}

	rt.logger.Info("render complete",
		zap.Duration("duration", stats.Duration),
		zap.Int("total_samples", stats.TotalSamples),
		zap.Float64("rows_per_second", stats.RowsPerSecond()),
		zap.Float64("average_luminance", stats.AverageLuminance),
	)
	return stats, nil
}

// collect receives exactly one result per row, in completion order
func (rt *Raytracer) collect(ctx context.Context, results <-chan rowResult, sink RowSink, stats *RenderStats) error {
	height := rt.camera.ImageHeight
	for stats.Rows < height {
		select {
		case <-ctx.Done():
			return fmt.Errorf("render stopped after %d of %d rows: %w", stats.Rows, height, ctx.Err())
		case result := <-results:
			sink.SetRow(result.Pixels, result.Y)
			stats.addRow(result.Worker, result.Pixels, rt.camera.SamplesPerPixel)

			rt.logger.Debug("row complete",
				zap.Int("row", result.Y),
				zap.Int("worker", result.Worker),
				zap.Int("done", stats.Rows),
			)
			if rt.progress != nil {
				rt.progress(stats.Rows, height)
			}
		}
	}
	return nil
}
