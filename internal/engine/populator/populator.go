// Package populator fills the histogram layers of a cache in one parallel sweep.
package populator

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"go.trai.ch/brot/internal/core/domain"
	"go.trai.ch/brot/internal/core/ports"
	"go.trai.ch/brot/internal/engine/histogram"
	"go.trai.ch/brot/internal/engine/orbit"
	"golang.org/x/sync/errgroup"
)

// BatchSize is the number of pixel centers a worker processes per unit of work.
const BatchSize = 1000

// Populator evaluates one orbit per pixel center and fans it into the accepting layers.
type Populator struct {
	workers      int
	batchSize    int
	skipInterior bool
	progress     ports.Progress
	buffers      sync.Pool
}

// Option configures a Populator.
type Option func(*Populator)

// WithWorkers sets the number of batches processed concurrently.
// Values below one select runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(p *Populator) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithBatchSize overrides BatchSize.
func WithBatchSize(n int) Option {
	return func(p *Populator) {
		if n > 0 {
			p.batchSize = n
		}
	}
}

// WithSkipInterior skips centers in the main cardioid and the period-2 bulb.
// Their orbits never diverge, so no layer would accept them.
func WithSkipInterior(skip bool) Option {
	return func(p *Populator) {
		p.skipInterior = skip
	}
}

// WithProgress reports completed centers to progress.
func WithProgress(progress ports.Progress) Option {
	return func(p *Populator) {
		if progress != nil {
			p.progress = progress
		}
	}
}

// New creates a Populator.
func New(opts ...Option) *Populator {
	p := &Populator{
		workers:   runtime.NumCPU(),
		batchSize: BatchSize,
		progress:  nopProgress{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Populate fills every layer of cache and marks it valid.
// The layers are incremented in place, so callers pass a zeroed cache.
// If ctx is canceled the pass stops early, the error is returned and cache stays invalid.
func (p *Populator) Populate(ctx context.Context, cache *domain.Cache) error {
	grids := make([][]uint32, len(cache.Layers))
	for i := range cache.Layers {
		grids[i] = cache.Layers[i].Counts
	}
	h, err := histogram.New(cache.Area, cache.Dimensions, grids)
	if err != nil {
		return err
	}

	thresholds := cache.Thresholds()
	maxIter := 0
	for _, t := range thresholds {
		maxIter = max(maxIter, t)
	}

	total := cache.Dimensions.Size()
	p.progress.Start(total, fmt.Sprintf("%d iterations per pixel", maxIter))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for start := 0; start < total; start += p.batchSize {
		if gctx.Err() != nil {
			break
		}
		end := min(start+p.batchSize, total)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p.runBatch(h, thresholds, maxIter, start, end)
			p.progress.Add(end - start)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p.progress.Finish()
	cache.Valid = true
	return nil
}

// runBatch processes the centers with flattened indices in [start, end).
func (p *Populator) runBatch(h *histogram.Histogram, thresholds []int, maxIter, start, end int) {
	buf := p.buffer(maxIter)
	defer p.buffers.Put(buf)

	for i := start; i < end; i++ {
		c := h.Center(i)
		if p.skipInterior && orbit.InInterior(c) {
			continue
		}
		*buf = orbit.Collect(c, maxIter, *buf)
		accumulate(h, thresholds, *buf)
	}
}

func (p *Populator) buffer(maxIter int) *[]complex128 {
	if v, ok := p.buffers.Get().(*[]complex128); ok && cap(*v) >= maxIter {
		return v
	}
	buf := make([]complex128, 0, maxIter)
	return &buf
}

// accumulate feeds the orbit into every layer whose threshold it escaped before.
func accumulate(h *histogram.Histogram, thresholds []int, points []complex128) {
	for layer, t := range thresholds {
		if len(points) >= t {
			continue
		}
		for _, z := range points {
			h.Fill(layer, real(z), imag(z))
		}
	}
}

type nopProgress struct{}

func (nopProgress) Start(int, string) {}
func (nopProgress) Add(int)           {}
func (nopProgress) Finish()           {}
