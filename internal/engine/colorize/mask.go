package colorize

import (
	"image"
	"image/color"

	"go.trai.ch/brot/internal/core/domain"
	"go.trai.ch/brot/internal/engine/histogram"
	"go.trai.ch/brot/internal/engine/orbit"
)

var (
	interiorColor = color.NRGBA{A: 0xff}
	exteriorColor = color.NRGBA{R: 200, G: 200, B: 200, A: 0xff}
)

// Mask paints every pixel whose center lies in the main cardioid or the
// period-2 bulb black, and every other pixel light gray.
func Mask(area domain.Area, dims domain.Dimensions) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, dims.X, dims.Y))
	for i, c := range histogram.Cells(area, dims) {
		px := exteriorColor
		if orbit.InInterior(c) {
			px = interiorColor
		}
		img.SetNRGBA(i%dims.X, i/dims.X, px)
	}
	return img
}
