// Package cachefile persists histogram caches as compact binary files.
package cachefile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/brot/internal/core/domain"
	"go.trai.ch/brot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore on the local file system.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new Store.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// Load returns the cache at path when it matches cfg, and a fresh cache otherwise.
// A missing file or a mismatching configuration is expected and not reported;
// an unreadable or corrupt file is reported as a warning.
func (s *Store) Load(path string, cfg *domain.Configuration) *domain.Cache {
	cache, err := s.read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn(fmt.Sprintf("ignoring cache %s: %v", path, err))
		}
		return domain.NewCache(cfg)
	}
	if !cache.Compatible(cfg) {
		return domain.NewCache(cfg)
	}
	return cache
}

func (s *Store) read(path string) (*domain.Cache, error) {
	//nolint:gosec // Path is provided by the user on the command line
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}
	defer func() { _ = f.Close() }()

	return Decode(bufio.NewReader(f))
}

// Dump writes cache to path, replacing any previous file atomically.
// The cache is written to a temporary file in the same directory and renamed into place.
func (s *Store) Dump(path string, cache *domain.Cache) (err error) {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return writeError(err, path)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return writeError(err, path)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err := Encode(w, cache); err != nil {
		return writeError(err, path)
	}
	if err := w.Flush(); err != nil {
		return writeError(err, path)
	}
	if err := tmp.Sync(); err != nil {
		return writeError(err, path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		return writeError(err, path)
	}
	if err := tmp.Close(); err != nil {
		return writeError(err, path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return writeError(err, path)
	}
	return nil
}

func writeError(err error, path string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
}
