package histogram_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/brot/internal/engine/histogram"
)

func TestBinning_Centers(t *testing.T) {
	// scale 2, min 0, two cells
	b := histogram.NewBinning(0, 1, 2)

	assert.Equal(t, []float64{0.25, 0.75}, slices.Collect(b.Centers()))
	// Restartable.
	assert.Equal(t, []float64{0.25, 0.75}, slices.Collect(b.Centers()))
}

func TestBinning_Bin(t *testing.T) {
	// scale 1, min 0, two cells
	b := histogram.NewBinning(0, 2, 2)

	tests := []struct {
		name   string
		v      float64
		want   int
		wantOK bool
	}{
		{name: "first cell", v: 0.1, want: 0, wantOK: true},
		{name: "lower bound", v: 0, want: 0, wantOK: true},
		{name: "second cell", v: 1.9, want: 1, wantOK: true},
		{name: "upper bound excluded", v: 2, wantOK: false},
		{name: "far above", v: 5, wantOK: false},
		{name: "just below", v: -0.001, wantOK: false},
		{name: "far below", v: -7.5, wantOK: false},
		{name: "nan", v: math.NaN(), wantOK: false},
		{name: "inf", v: math.Inf(1), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.Bin(tt.v)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBinning_CenterRoundTrip(t *testing.T) {
	b := histogram.NewBinning(-2, 1, 317)
	i := 0
	for c := range b.Centers() {
		got, ok := b.Bin(c)
		if assert.True(t, ok, "center %d", i) {
			assert.Equal(t, i, got)
		}
		i++
	}
	assert.Equal(t, 317, i)
}
