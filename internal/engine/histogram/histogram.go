package histogram

import (
	"iter"
	"sync"

	"go.trai.ch/brot/internal/core/domain"
	"go.trai.ch/zerr"
)

// Histogram is a pair of binnings over a set of equally shaped count grids.
// The grids are borrowed from the caller, which keeps ownership of the storage;
// a Histogram must not be used after the caller releases them.
type Histogram struct {
	x      Binning
	y      Binning
	layers []layer
}

// layer guards one borrowed grid.
type layer struct {
	mu     sync.Mutex
	counts []uint32
}

// New builds a histogram over area and dims that increments the given grids.
// Every grid must hold exactly dims.Size() counters.
func New(area domain.Area, dims domain.Dimensions, grids [][]uint32) (*Histogram, error) {
	size := dims.Size()
	h := &Histogram{
		x:      NewBinning(area.X.Min, area.X.Max, dims.X),
		y:      NewBinning(area.Y.Min, area.Y.Max, dims.Y),
		layers: make([]layer, len(grids)),
	}
	for i, g := range grids {
		if len(g) != size {
			err := zerr.With(zerr.Wrap(domain.ErrHistogramShape, "layer storage has wrong length"), "layer", i)
			err = zerr.With(err, "len", len(g))
			return nil, zerr.With(err, "size", size)
		}
		h.layers[i].counts = g
	}
	return h, nil
}

// Width returns the number of cells along x.
func (h *Histogram) Width() int {
	return h.x.Len()
}

// Height returns the number of cells along y.
func (h *Histogram) Height() int {
	return h.y.Len()
}

// Layers returns the number of grids.
func (h *Histogram) Layers() int {
	return len(h.layers)
}

// Index returns the flattened cell index of the point (x, y).
func (h *Histogram) Index(x, y float64) (int, bool) {
	bx, ok := h.x.Bin(x)
	if !ok {
		return 0, false
	}
	by, ok := h.y.Bin(y)
	if !ok {
		return 0, false
	}
	return FlatIndex(bx, by, h.x.Len()), true
}

// Fill increments the cell of layer containing (x, y).
// Points outside the area are dropped.
func (h *Histogram) Fill(layerIndex int, x, y float64) {
	idx, ok := h.Index(x, y)
	if !ok {
		return
	}
	l := &h.layers[layerIndex]
	l.mu.Lock()
	l.counts[idx]++
	l.mu.Unlock()
}

// Center returns the center of the cell with flattened index i.
func (h *Histogram) Center(i int) complex128 {
	w := h.x.Len()
	return complex(h.x.Center(i%w), h.y.Center(i/w))
}

// Centers yields every cell center as a complex number, row by row:
// y is the outer index and x the inner one, matching FlatIndex.
func (h *Histogram) Centers() iter.Seq[complex128] {
	return func(yield func(complex128) bool) {
		for _, c := range cells(h.x, h.y) {
			if !yield(c) {
				return
			}
		}
	}
}

// FlatIndex returns the row-major index of cell (bx, by) in a grid of the given width.
func FlatIndex(bx, by, width int) int {
	return bx + by*width
}

// Cells yields the center of every cell of area and dims with its flattened index,
// in the order of Histogram.Centers.
func Cells(area domain.Area, dims domain.Dimensions) iter.Seq2[int, complex128] {
	return cells(
		NewBinning(area.X.Min, area.X.Max, dims.X),
		NewBinning(area.Y.Min, area.Y.Max, dims.Y),
	)
}

func cells(xb, yb Binning) iter.Seq2[int, complex128] {
	return func(yield func(int, complex128) bool) {
		for by := range yb.Len() {
			y := yb.Center(by)
			for bx := range xb.Len() {
				if !yield(FlatIndex(bx, by, xb.Len()), complex(xb.Center(bx), y)) {
					return
				}
			}
		}
	}
}
