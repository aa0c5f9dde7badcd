package domain

// Cache is the persisted snapshot of all histogram layers of a configuration.
// Valid is set only after a complete population pass.
type Cache struct {
	Area       Area
	Dimensions Dimensions
	Layers     []LayerData
	Valid      bool
}

// NewCache returns a zero-filled, invalid cache shaped to the configuration.
func NewCache(cfg *Configuration) *Cache {
	size := cfg.Dimensions.Size()
	layers := make([]LayerData, len(cfg.Layers))
	for i, l := range cfg.Layers {
		layers[i] = LayerData{
			Iterations: l.Iterations,
			Counts:     make([]uint32, size),
		}
	}
	return &Cache{
		Area:       cfg.Area,
		Dimensions: cfg.Dimensions,
		Layers:     layers,
	}
}

// Thresholds returns the layer thresholds in layer order.
func (c *Cache) Thresholds() []int {
	out := make([]int, len(c.Layers))
	for i, l := range c.Layers {
		out[i] = l.Iterations
	}
	return out
}

// Fingerprint returns the fingerprint the cache was computed against.
func (c *Cache) Fingerprint() Fingerprint {
	return NewFingerprint(c.Area, c.Dimensions, c.Thresholds())
}

// Compatible reports whether the cache can serve the configuration.
// Colors and colorization parameters are not part of the comparison.
func (c *Cache) Compatible(cfg *Configuration) bool {
	if !c.Fingerprint().Equal(cfg.Fingerprint()) {
		return false
	}
	size := c.Dimensions.Size()
	for _, l := range c.Layers {
		if len(l.Counts) != size {
			return false
		}
	}
	return true
}
