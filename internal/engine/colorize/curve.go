// Package colorize turns populated histogram layers into images.
package colorize

import (
	"math"

	"go.trai.ch/brot/internal/core/domain"
)

// maxLUTSize bounds the lookup tables; brighter layers evaluate the curve per cell.
const maxLUTSize = 1 << 22

// Curve maps a cell count to a brightness in [0, 255] on a logarithmic scale.
// Counts at or below the threshold are black and the layer maximum is full brightness.
type Curve struct {
	upper     float64
	threshold float64
	exponent  float64
}

// NewCurve returns the curve of a layer whose highest count is maxCount.
func NewCurve(maxCount uint32, params domain.Colorization) Curve {
	return Curve{
		upper:     math.Log2(max(float64(maxCount)-params.Threshold, 1)),
		threshold: params.Threshold,
		exponent:  params.Exponent,
	}
}

// Brightness returns the brightness of count.
// A layer with no count above threshold+1 has a zero upper bound and stays black.
func (c Curve) Brightness(count uint32) uint8 {
	if c.upper <= 0 {
		return 0
	}
	value := math.Log2(max(float64(count)-c.threshold, 1))
	mapped := math.Pow(min(value/c.upper, 1), c.exponent)
	return uint8(mapped * 255)
}

// LUT returns the brightness of every count in [0, maxCount].
func LUT(maxCount uint32, params domain.Colorization) []uint8 {
	curve := NewCurve(maxCount, params)
	lut := make([]uint8, int(maxCount)+1)
	for i := range lut {
		lut[i] = curve.Brightness(uint32(i))
	}
	return lut
}
