// Package memory implements the explain.CacheStorage interface with an
// in-process map. It is the default backend when no Redis address is
// configured; entries do not survive a restart.
package memory

import (
	"context"
	"sync"

	"github.com/otterhq/suilens/internal/explain"
)

type storage struct {
	mu      sync.RWMutex
	entries map[string]explain.CacheEntry
}

// Compile-time assertion to ensure *storage satisfies the explain.CacheStorage interface.
var _ explain.CacheStorage = (*storage)(nil)

// NewStorage creates an empty in-memory explanation cache.
func NewStorage() *storage {
	return &storage{
		entries: make(map[string]explain.CacheEntry),
	}
}

// GetExplanation returns the entry for the digest, or explain.ErrCacheMiss
// when none is stored.
func (s *storage) GetExplanation(_ context.Context, digest string) (explain.CacheEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[digest]
	if !ok {
		return explain.CacheEntry{}, explain.ErrCacheMiss
	}
	return entry, nil
}

// SaveExplanation stores the entry, replacing any previous one for the same
// digest.
func (s *storage) SaveExplanation(_ context.Context, entry explain.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entry.Digest] = entry
	return nil
}

// DeleteExplanation removes the entry for the digest, if present.
func (s *storage) DeleteExplanation(_ context.Context, digest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, digest)
	return nil
}
