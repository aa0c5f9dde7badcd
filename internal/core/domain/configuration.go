package domain

import (
	"math"

	"go.trai.ch/zerr"
)

const (
	// DefaultExponent is the brightness curve exponent used when none is configured.
	DefaultExponent = 1.0

	// DefaultThreshold is the count offset below which cells stay black.
	DefaultThreshold = 5.0

	// MaxLayerIterations bounds a layer threshold so it fits an int on every platform
	// and the uint32 field of the cache file layout.
	MaxLayerIterations = math.MaxInt32

	// MaxCells bounds the number of cells of a grid.
	MaxCells = math.MaxInt32
)

// Colorization holds the parameters of the brightness lookup table.
type Colorization struct {
	Exponent  float64
	Threshold float64
}

// DefaultColorization returns the colorization used when the configuration omits it.
func DefaultColorization() Colorization {
	return Colorization{Exponent: DefaultExponent, Threshold: DefaultThreshold}
}

// Population holds options of the population pass that do not change its result.
type Population struct {
	// SkipInterior skips centers inside the main cardioid and the period-2 bulb.
	SkipInterior bool
}

// Configuration is a validated render configuration.
type Configuration struct {
	Area         Area
	Dimensions   Dimensions
	Layers       []LayerSpec
	Colorization Colorization
	Population   Population
}

// MaxIterations returns the largest threshold across all layers.
func (c *Configuration) MaxIterations() int {
	m := 0
	for _, l := range c.Layers {
		m = max(m, l.Iterations)
	}
	return m
}

// Thresholds returns the layer thresholds in layer order.
func (c *Configuration) Thresholds() []int {
	out := make([]int, len(c.Layers))
	for i, l := range c.Layers {
		out[i] = l.Iterations
	}
	return out
}

// Fingerprint returns the fingerprint a compatible cache must carry.
func (c *Configuration) Fingerprint() Fingerprint {
	return NewFingerprint(c.Area, c.Dimensions, c.Thresholds())
}

// Validate checks the structural constraints of the configuration.
func (c *Configuration) Validate() error {
	if err := validateInterval("area.x", c.Area.X); err != nil {
		return err
	}
	if err := validateInterval("area.y", c.Area.Y); err != nil {
		return err
	}

	if c.Dimensions.X <= 0 || c.Dimensions.Y <= 0 {
		err := zerr.Wrap(ErrInvalidConfig, "dimensions must be positive")
		err = zerr.With(err, "x", c.Dimensions.X)
		return zerr.With(err, "y", c.Dimensions.Y)
	}
	if c.Dimensions.X > MaxCells/c.Dimensions.Y {
		err := zerr.Wrap(ErrInvalidConfig, "dimensions are too large")
		err = zerr.With(err, "x", c.Dimensions.X)
		return zerr.With(err, "y", c.Dimensions.Y)
	}

	if len(c.Layers) == 0 {
		return zerr.Wrap(ErrInvalidConfig, "at least one layer is required")
	}
	for i, l := range c.Layers {
		if l.Iterations <= 0 {
			err := zerr.Wrap(ErrInvalidConfig, "layer iterations must be positive")
			err = zerr.With(err, "layer", i)
			return zerr.With(err, "iterations", l.Iterations)
		}
		if int64(l.Iterations) > MaxLayerIterations {
			err := zerr.Wrap(ErrInvalidConfig, "layer iterations are too large")
			err = zerr.With(err, "layer", i)
			return zerr.With(err, "iterations", l.Iterations)
		}
	}

	if !(c.Colorization.Exponent > 0) || math.IsInf(c.Colorization.Exponent, 0) {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "colorization exponent must be positive"),
			"exponent", c.Colorization.Exponent)
	}
	if !(c.Colorization.Threshold >= 0) || math.IsInf(c.Colorization.Threshold, 0) {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "colorization threshold must not be negative"),
			"threshold", c.Colorization.Threshold)
	}

	return nil
}

func validateInterval(name string, i Interval) error {
	if math.IsNaN(i.Min) || math.IsNaN(i.Max) || math.IsInf(i.Min, 0) || math.IsInf(i.Max, 0) {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, name+" bounds must be finite"), "interval", i)
	}
	if i.Min >= i.Max {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, name+" must have min < max"), "interval", i)
	}
	return nil
}
