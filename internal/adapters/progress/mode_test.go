package progress_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brot/internal/adapters/progress"
)

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name string
		ci   string
	}{
		{name: "no CI", ci: ""},
		{name: "CI=true", ci: "true"},
		{name: "CI=1", ci: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ci)
			f, err := os.Create(filepath.Join(t.TempDir(), "out"))
			require.NoError(t, err)
			defer func() { _ = f.Close() }()

			assert.Equal(t, progress.ModeLinear, progress.DetectMode(f))
		})
	}
}
