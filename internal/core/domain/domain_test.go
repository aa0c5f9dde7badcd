package domain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brot/internal/core/domain"
)

func newConfig() *domain.Configuration {
	return &domain.Configuration{
		Area: domain.Area{
			X: domain.Interval{Min: -2, Max: 1},
			Y: domain.Interval{Min: -1.5, Max: 1.5},
		},
		Dimensions: domain.Dimensions{X: 4, Y: 3},
		Layers: []domain.LayerSpec{
			{Iterations: 20, Color: domain.Color{0, 0, 255}},
			{Iterations: 200, Color: domain.Color{0, 255, 0}},
		},
		Colorization: domain.DefaultColorization(),
	}
}

func TestConfiguration_MaxIterations(t *testing.T) {
	cfg := newConfig()
	assert.Equal(t, 200, cfg.MaxIterations())
	assert.Equal(t, []int{20, 200}, cfg.Thresholds())
}

func TestConfiguration_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Configuration)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*domain.Configuration) {},
		},
		{
			name:    "inverted x interval",
			mutate:  func(c *domain.Configuration) { c.Area.X = domain.Interval{Min: 1, Max: -2} },
			wantErr: "area.x must have min < max",
		},
		{
			name:    "empty y interval",
			mutate:  func(c *domain.Configuration) { c.Area.Y = domain.Interval{Min: 1, Max: 1} },
			wantErr: "area.y must have min < max",
		},
		{
			name:    "nan bound",
			mutate:  func(c *domain.Configuration) { c.Area.X.Max = math.NaN() },
			wantErr: "area.x bounds must be finite",
		},
		{
			name:    "zero width",
			mutate:  func(c *domain.Configuration) { c.Dimensions.X = 0 },
			wantErr: "dimensions must be positive",
		},
		{
			name:    "overflowing grid",
			mutate:  func(c *domain.Configuration) { c.Dimensions = domain.Dimensions{X: 1 << 20, Y: 1 << 20} },
			wantErr: "dimensions are too large",
		},
		{
			name:    "no layers",
			mutate:  func(c *domain.Configuration) { c.Layers = nil },
			wantErr: "at least one layer is required",
		},
		{
			name:    "zero iterations",
			mutate:  func(c *domain.Configuration) { c.Layers[1].Iterations = 0 },
			wantErr: "layer iterations must be positive",
		},
		{
			name: "iterations above int32",
			mutate: func(c *domain.Configuration) {
				limit := int64(domain.MaxLayerIterations)
				c.Layers[0].Iterations = int(limit + 1)
			},
			wantErr: "layer iterations",
		},
		{
			name:    "zero exponent",
			mutate:  func(c *domain.Configuration) { c.Colorization.Exponent = 0 },
			wantErr: "colorization exponent must be positive",
		},
		{
			name:    "negative threshold",
			mutate:  func(c *domain.Configuration) { c.Colorization.Threshold = -1 },
			wantErr: "colorization threshold must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFingerprint(t *testing.T) {
	base := newConfig()

	t.Run("ignores colors and colorization", func(t *testing.T) {
		other := newConfig()
		other.Layers[0].Color = domain.Color{255, 0, 0}
		other.Colorization.Exponent = 0.25
		other.Population.SkipInterior = true

		assert.True(t, base.Fingerprint().Equal(other.Fingerprint()))
		assert.Equal(t, base.Fingerprint().String(), other.Fingerprint().String())
	})

	t.Run("folds negative zero", func(t *testing.T) {
		a := newConfig()
		a.Area.Y = domain.Interval{Min: 0, Max: 1}
		b := newConfig()
		b.Area.Y = domain.Interval{Min: math.Copysign(0, -1), Max: 1}

		assert.True(t, a.Fingerprint().Equal(b.Fingerprint()))
	})

	changes := map[string]func(*domain.Configuration){
		"area x min":   func(c *domain.Configuration) { c.Area.X.Min = -2.5 },
		"area y max":   func(c *domain.Configuration) { c.Area.Y.Max = 1.25 },
		"width":        func(c *domain.Configuration) { c.Dimensions.X = 5 },
		"height":       func(c *domain.Configuration) { c.Dimensions.Y = 2 },
		"threshold":    func(c *domain.Configuration) { c.Layers[0].Iterations = 21 },
		"layer count":  func(c *domain.Configuration) { c.Layers = c.Layers[:1] },
		"layer order":  func(c *domain.Configuration) { c.Layers[0], c.Layers[1] = c.Layers[1], c.Layers[0] },
		"swapped dims": func(c *domain.Configuration) { c.Dimensions = domain.Dimensions{X: 3, Y: 4} },
	}
	for name, mutate := range changes {
		t.Run("differs on "+name, func(t *testing.T) {
			other := newConfig()
			mutate(other)
			assert.False(t, base.Fingerprint().Equal(other.Fingerprint()))
		})
	}
}

func TestNewCache(t *testing.T) {
	cfg := newConfig()
	cache := domain.NewCache(cfg)

	assert.False(t, cache.Valid)
	assert.Equal(t, cfg.Area, cache.Area)
	assert.Equal(t, cfg.Dimensions, cache.Dimensions)
	require.Len(t, cache.Layers, 2)
	for i, l := range cache.Layers {
		assert.Equal(t, cfg.Layers[i].Iterations, l.Iterations)
		assert.Len(t, l.Counts, 12)
		assert.Equal(t, uint32(0), l.Max())
	}
	assert.True(t, cache.Compatible(cfg))
	assert.True(t, cache.Fingerprint().Equal(cfg.Fingerprint()))
}

func TestCache_Compatible(t *testing.T) {
	t.Run("threshold change", func(t *testing.T) {
		cache := domain.NewCache(newConfig())
		cfg := newConfig()
		cfg.Layers[1].Iterations = 300
		assert.False(t, cache.Compatible(cfg))
	})

	t.Run("short layer storage", func(t *testing.T) {
		cfg := newConfig()
		cache := domain.NewCache(cfg)
		cache.Layers[0].Counts = cache.Layers[0].Counts[:5]
		assert.False(t, cache.Compatible(cfg))
	})

	t.Run("color change", func(t *testing.T) {
		cache := domain.NewCache(newConfig())
		cfg := newConfig()
		cfg.Layers[0].Color = domain.Color{1, 2, 3}
		assert.True(t, cache.Compatible(cfg))
	})
}

func TestLayerData_Stats(t *testing.T) {
	l := domain.LayerData{Iterations: 10, Counts: []uint32{3, 0, 7, 1}}
	assert.Equal(t, uint32(7), l.Max())
	assert.Equal(t, uint64(11), l.Total())

	empty := domain.LayerData{}
	assert.Equal(t, uint32(0), empty.Max())
	assert.Equal(t, uint64(0), empty.Total())
}
