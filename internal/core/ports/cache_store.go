package ports

import "go.trai.ch/brot/internal/core/domain"

// CacheStore defines the interface for persisting histogram caches.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache_store.go -destination=mocks/mock_cache_store.go -package=mocks
type CacheStore interface {
	// Load returns the cache persisted at path if it is compatible with cfg.
	// Any read failure, decode failure or mismatch yields domain.NewCache(cfg).
	Load(path string, cfg *domain.Configuration) *domain.Cache

	// Dump persists a populated cache at path, replacing any prior content.
	Dump(path string, cache *domain.Cache) error
}
