// Package render drives a camera over a sample image, resolving rays against
// a world and accumulating the results.
package render

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"spheretrace/camera"
	"spheretrace/hit"
	"spheretrace/sampleimage"
	"spheretrace/trace"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

var ErrBadOptions = errors.New("bad render options")

type Options struct {
	// MaxDepth bounds the number of surface interactions per sample.
	MaxDepth int

	// TargetSamples is the number of samples every pixel should have when the
	// render finishes.  Pixels that already have that many are skipped.
	TargetSamples int

	// Workers is the number of chunks rendered at once.
	Workers int

	// RowsPerChunk sets the unit of work.  Chunk boundaries, not the worker
	// count, decide the random streams, so output is the same for any
	// Workers value.
	RowsPerChunk int

	Seed int64
}

func DefaultOptions() *Options {
	return &Options{
		MaxDepth:      50,
		TargetSamples: 100,
		Workers:       1,
		RowsPerChunk:  8,
	}
}

func (o *Options) Validate() error {
	if o.MaxDepth < 1 {
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrBadOptions, o.MaxDepth)
	}
	if o.TargetSamples < 1 {
		return fmt.Errorf("%w: target samples must be positive, got %d", ErrBadOptions, o.TargetSamples)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrBadOptions, o.Workers)
	}
	if o.RowsPerChunk < 1 {
		return fmt.Errorf("%w: rows per chunk must be positive, got %d", ErrBadOptions, o.RowsPerChunk)
	}
	return nil
}

// ProgressFunction receives the number of samples taken so far and the
// number the render will take in total.
type ProgressFunction func(cur, tot int)

type chunkWorker struct {
	sampleDB         *sampleimage.SampleImage
	rng              *rand.Rand
	progressFunction func(int)

	resolver *trace.Resolver
	cam      camera.Camera

	maxDepth      int
	targetSamples int

	// Dimensions of the whole image, not just this chunk.
	imgRows int
	imgCols int

	rowSrc int
	rowLim int
}

func (w *chunkWorker) render(ctx context.Context) error {
	for cr := w.rowSrc; cr < w.rowLim; cr++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("while rendering row %d: %w", cr, err)
		}

		samplesCollected := 0
		r := cr - w.rowSrc
		for cc := 0; cc < w.imgCols; cc++ {
			_, count := w.sampleDB.ReadSample(r, cc)
			for cs := count; cs < w.targetSamples; cs++ {
				u := (float64(cc) + w.rng.Float64()) / float64(w.imgCols)
				v := (float64(w.imgRows-1-cr) + w.rng.Float64()) / float64(w.imgRows)
				color := w.resolver.RayColor(w.cam.Ray(u, v), w.maxDepth, w.rng)
				w.sampleDB.RecordSample(r, cc, color)
				samplesCollected++
			}
		}

		w.progressFunction(samplesCollected)
	}
	return nil
}

// chunkSeed mixes the inputs with splitmix64 so that neighboring chunks get
// unrelated streams.
func chunkSeed(seed int64, chunk, existingSamples int) int64 {
	z := uint64(seed) + uint64(chunk)*0x9e3779b97f4a7c15 + uint64(existingSamples)*0xbf58476d1ce4e5b9
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

// RenderScene adds samples to sampleDB until every pixel has
// options.TargetSamples of them.  The world must not be modified while the
// render runs.
func RenderScene(ctx context.Context, world hit.Hittable, cam camera.Camera, options *Options, sampleDB *sampleimage.SampleImage, progressFunction ProgressFunction) error {
	tracer := otel.Tracer("spheretrace/render")
	var span oteltrace.Span
	ctx, span = tracer.Start(ctx, "RenderScene")
	defer span.End()

	if err := options.Validate(); err != nil {
		return err
	}
	if progressFunction == nil {
		progressFunction = func(int, int) {}
	}

	span.SetAttributes(
		attribute.Int("rows", sampleDB.RowSize),
		attribute.Int("cols", sampleDB.ColSize),
		attribute.Int("target-samples", options.TargetSamples),
		attribute.Int("workers", options.Workers),
	)

	sampleDB.MaxDepth = options.MaxDepth

	// When we resume a render, we don't want to repeat the same random
	// choices.
	existingSamples := sampleDB.TotalSamples()

	totalSamples := 0
	for _, c := range sampleDB.Counts {
		if int(c) < options.TargetSamples {
			totalSamples += options.TargetSamples - int(c)
		}
	}

	resolver := trace.NewResolver(world)

	curProgress := 0
	// progressMutex locks both curProgress and sampleDB.
	progressMutex := sync.Mutex{}

	eg, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(options.Workers))

	for chunk, rowSrc := 0, 0; rowSrc < sampleDB.RowSize; chunk, rowSrc = chunk+1, rowSrc+options.RowsPerChunk {
		rowLim := min(rowSrc+options.RowsPerChunk, sampleDB.RowSize)

		if err := sem.Acquire(ctx, 1); err != nil {
			// A failed worker cancels ctx; report its error rather than ours.
			if werr := eg.Wait(); werr != nil {
				return fmt.Errorf("while waiting for render workers: %w", werr)
			}
			return fmt.Errorf("while acquiring worker semaphore: %w", err)
		}

		progressMutex.Lock()
		cut := sampleDB.Cut(rowSrc, rowLim, 0, sampleDB.ColSize)
		progressMutex.Unlock()

		worker := &chunkWorker{
			sampleDB: cut,
			rng:      rand.New(rand.NewSource(chunkSeed(options.Seed, chunk, existingSamples))),
			progressFunction: func(subProgress int) {
				progressMutex.Lock()
				defer progressMutex.Unlock()
				curProgress += subProgress
				progressFunction(curProgress, totalSamples)
			},
			resolver:      resolver,
			cam:           cam,
			maxDepth:      options.MaxDepth,
			targetSamples: options.TargetSamples,
			imgRows:       sampleDB.RowSize,
			imgCols:       sampleDB.ColSize,
			rowSrc:        rowSrc,
			rowLim:        rowLim,
		}

		eg.Go(func() error {
			defer sem.Release(1)

			chunkCtx, chunkSpan := tracer.Start(ctx, "renderChunk")
			defer chunkSpan.End()
			chunkSpan.SetAttributes(
				attribute.Int("row-src", worker.rowSrc),
				attribute.Int("row-lim", worker.rowLim),
			)

			if err := worker.render(chunkCtx); err != nil {
				return fmt.Errorf("while rendering rows [%d, %d): %w", worker.rowSrc, worker.rowLim, err)
			}

			progressMutex.Lock()
			defer progressMutex.Unlock()
			sampleDB.Paste(worker.sampleDB, worker.rowSrc, 0)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("while waiting for render workers: %w", err)
	}

	return nil
}
