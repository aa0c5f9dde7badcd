package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the render configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration")

	// ErrConfigParseFailed is returned when the render configuration is not valid YAML for the schema.
	ErrConfigParseFailed = zerr.New("failed to parse configuration")

	// ErrInvalidConfig is returned when a parsed configuration violates a structural constraint.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrCacheReadFailed is returned when a persisted cache file cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache")

	// ErrCacheDecodeFailed is returned when a persisted cache file is corrupt or truncated.
	ErrCacheDecodeFailed = zerr.New("failed to decode cache")

	// ErrCacheWriteFailed is returned when a cache cannot be persisted.
	ErrCacheWriteFailed = zerr.New("failed to write cache")

	// ErrCacheNotPopulated is returned when an operation needs a fully populated cache.
	ErrCacheNotPopulated = zerr.New("cache is not populated")

	// ErrCacheIncompatible is returned when a cache does not match the configuration it is used with.
	ErrCacheIncompatible = zerr.New("cache does not match configuration")

	// ErrHistogramShape is returned when a histogram is built over storage of the wrong length.
	ErrHistogramShape = zerr.New("histogram storage does not match dimensions")

	// ErrImageEncodeFailed is returned when an image cannot be encoded or written.
	ErrImageEncodeFailed = zerr.New("failed to encode image")

	// ErrUnsupportedImageFormat is returned when the output path has an unknown image extension.
	ErrUnsupportedImageFormat = zerr.New("unsupported image format")

	// ErrWatcherFailed is returned when the configuration watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to watch configuration")
)
