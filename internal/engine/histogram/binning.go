// Package histogram discretizes the complex plane into layered count grids.
package histogram

import (
	"iter"
	"math"
)

// Binning maps coordinates on one axis to cell indices.
type Binning struct {
	scale float64
	lo    float64
	n     int
}

// NewBinning returns the binning of [lo, hi) into n cells.
func NewBinning(lo, hi float64, n int) Binning {
	return Binning{
		scale: float64(n) / (hi - lo),
		lo:    lo,
		n:     n,
	}
}

// Len returns the number of cells.
func (b Binning) Len() int {
	return b.n
}

// Bin returns the cell holding v.
// Values outside the range report false; they are never clamped.
func (b Binning) Bin(v float64) (int, bool) {
	f := math.Floor((v - b.lo) * b.scale)
	// The float comparison also rejects NaN.
	if !(f >= 0 && f < float64(b.n)) {
		return 0, false
	}
	return int(f), true
}

// Center returns the coordinate of the center of cell i.
func (b Binning) Center(i int) float64 {
	return b.lo + (float64(i)+0.5)/b.scale
}

// Centers yields the cell centers from the first cell to the last.
func (b Binning) Centers() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := range b.n {
			if !yield(b.Center(i)) {
				return
			}
		}
	}
}
