package colorize

import (
	"context"
	"image"
	"image/color"
	"runtime"

	"go.trai.ch/brot/internal/core/domain"
	"go.trai.ch/brot/internal/engine/histogram"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// shader colors the cells of one layer.
type shader struct {
	color  domain.Color
	counts []uint32
	lut    []uint8
	curve  Curve
}

func newShader(spec domain.LayerSpec, data domain.LayerData, params domain.Colorization) shader {
	m := data.Max()
	s := shader{
		color:  spec.Color,
		counts: data.Counts,
		curve:  NewCurve(m, params),
	}
	if m < maxLUTSize {
		s.lut = LUT(m, params)
	}
	return s
}

func (s *shader) brightness(i int) uint8 {
	if s.lut != nil {
		return s.lut[s.counts[i]]
	}
	return s.curve.Brightness(s.counts[i])
}

// Image composes the layers of a populated cache into an opaque image.
// Every channel of a pixel is the maximum over layers of the layer color
// capped by the layer brightness of the pixel's cell.
// Pixel (x, y) shows the cell with flattened index histogram.FlatIndex(x, y, width).
func Image(ctx context.Context, cfg *domain.Configuration, cache *domain.Cache) (*image.NRGBA, error) {
	if !cache.Valid {
		return nil, domain.ErrCacheNotPopulated
	}
	if !cache.Compatible(cfg) {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheIncompatible, "cannot colorize"),
			"fingerprint", cache.Fingerprint().String())
	}

	shaders := make([]shader, len(cfg.Layers))
	for i := range cfg.Layers {
		shaders[i] = newShader(cfg.Layers[i], cache.Layers[i], cfg.Colorization)
	}

	w, h := cache.Dimensions.X, cache.Dimensions.Y
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for y := range h {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for x := range w {
				img.SetNRGBA(x, y, compose(shaders, histogram.FlatIndex(x, y, w)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

func compose(shaders []shader, i int) color.NRGBA {
	var px [3]uint8
	for s := range shaders {
		v := shaders[s].brightness(i)
		for j, c := range shaders[s].color {
			px[j] = max(px[j], min(c, v))
		}
	}
	return color.NRGBA{R: px[0], G: px[1], B: px[2], A: 0xff}
}
