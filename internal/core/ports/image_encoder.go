package ports

import "image"

// ImageEncoder defines the interface for writing rendered images.
//
//go:generate go run go.uber.org/mock/mockgen -source=image_encoder.go -destination=mocks/mock_image_encoder.go -package=mocks
type ImageEncoder interface {
	// Encode writes img to path, choosing the format from the path extension.
	Encode(path string, img image.Image) error
}
