package domain_test

import (
	"testing"

	"go.trai.ch/brot/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultCachePath",
			got:      domain.DefaultCachePath("scenes/nebula.yaml"),
			expected: "nebula.cache",
		},
		{
			name:     "DefaultImagePath",
			got:      domain.DefaultImagePath("scenes/nebula.yaml"),
			expected: "nebula.png",
		},
		{
			name:     "DefaultMaskPath",
			got:      domain.DefaultMaskPath("nebula.yml"),
			expected: "nebula-mask.png",
		},
		{
			name:     "ConfigStem without extension",
			got:      domain.ConfigStem("/tmp/render"),
			expected: "render",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}
