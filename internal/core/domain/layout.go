package domain

import (
	"path/filepath"
	"strings"
)

const (
	// CacheFileExt is the extension of persisted histogram caches.
	CacheFileExt = ".cache"

	// ImageFileExt is the extension of the default rendered image.
	ImageFileExt = ".png"

	// MaskFileSuffix is appended to the configuration stem for the default mask image.
	MaskFileSuffix = "-mask"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ConfigStem returns the configuration file name without directory and extension.
func ConfigStem(configPath string) string {
	base := filepath.Base(configPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DefaultCachePath returns the cache path used for a configuration when none is given.
// The cache lives in the working directory and is named after the configuration stem.
func DefaultCachePath(configPath string) string {
	return ConfigStem(configPath) + CacheFileExt
}

// DefaultImagePath returns the image path used for a configuration when none is given.
func DefaultImagePath(configPath string) string {
	return ConfigStem(configPath) + ImageFileExt
}

// DefaultMaskPath returns the mask image path used for a configuration when none is given.
func DefaultMaskPath(configPath string) string {
	return ConfigStem(configPath) + MaskFileSuffix + ImageFileExt
}
