// Package imagefile writes rendered images in a format chosen by file extension.
package imagefile

import (
	"bufio"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/brot/internal/core/domain"
	"go.trai.ch/brot/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// JPEGQuality is the quality used for JPEG output.
const JPEGQuality = 95

var _ ports.ImageEncoder = (*Encoder)(nil)

type encodeFunc func(io.Writer, image.Image) error

var formats = map[string]encodeFunc{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
	".bmp":  bmp.Encode,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// Extensions returns the supported file extensions in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(formats))
	for ext := range formats {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Encoder implements ports.ImageEncoder on the local file system.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes img to path. The file is written next to path and renamed into place.
func (e *Encoder) Encode(path string, img image.Image) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	encode, ok := formats[ext]
	if !ok {
		err := zerr.Wrap(domain.ErrUnsupportedImageFormat, "unknown extension")
		return zerr.With(zerr.With(err, "path", path), "extension", ext)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return encodeError(err, path)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return encodeError(err, path)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err := encode(w, img); err != nil {
		return encodeError(err, path)
	}
	if err := w.Flush(); err != nil {
		return encodeError(err, path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		return encodeError(err, path)
	}
	if err := tmp.Close(); err != nil {
		return encodeError(err, path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return encodeError(err, path)
	}
	return nil
}

func encodeError(err error, path string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrImageEncodeFailed.Error()), "path", path)
}
