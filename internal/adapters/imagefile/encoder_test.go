package imagefile_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brot/internal/adapters/imagefile"
	"go.trai.ch/brot/internal/core/domain"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := range 3 {
		for x := range 4 {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 100), B: 10, A: 255})
		}
	}
	return img
}

func decode(t *testing.T, path string) (image.Image, string) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(f)
	require.NoError(t, err)
	return img, format
}

func TestEncoder_Formats(t *testing.T) {
	tests := []struct {
		file     string
		format   string
		lossless bool
	}{
		{file: "out.png", format: "png", lossless: true},
		{file: "out.PNG", format: "png", lossless: true},
		{file: "out.jpg", format: "jpeg"},
		{file: "out.jpeg", format: "jpeg"},
		{file: "out.tif", format: "tiff", lossless: true},
		{file: "out.tiff", format: "tiff", lossless: true},
		{file: "out.bmp", format: "bmp", lossless: true},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			src := testImage()

			require.NoError(t, imagefile.NewEncoder().Encode(path, src))

			got, format := decode(t, path)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, src.Bounds(), got.Bounds())
			if tt.lossless {
				for y := range 3 {
					for x := range 4 {
						assert.Equal(t, src.NRGBAAt(x, y), color.NRGBAModel.Convert(got.At(x, y)))
					}
				}
			}
		})
	}
}

func TestEncoder_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.gif")

	err := imagefile.NewEncoder().Encode(path, testImage())

	require.ErrorIs(t, err, domain.ErrUnsupportedImageFormat)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEncoder_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renders", "out.png")

	require.NoError(t, imagefile.NewEncoder().Encode(path, testImage()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestEncoder_FailureLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	require.NoError(t, os.Mkdir(path, domain.DirPerm))

	err := imagefile.NewEncoder().Encode(path, testImage())

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrImageEncodeFailed.Error())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, []string{".bmp", ".jpeg", ".jpg", ".png", ".tif", ".tiff"}, imagefile.Extensions())
}
