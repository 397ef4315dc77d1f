package explain

import (
	"context"
	"errors"
	"time"

	"github.com/otterhq/suilens/internal/decoder"
)

// ErrCacheMiss indicates that no entry exists for the requested digest.
// Cache backends must return it (possibly wrapped) so the service can tell
// a miss apart from a backend failure.
var ErrCacheMiss = errors.New("explanation not found in cache")

// CacheEntry is the unit stored per transaction digest. Entries are never
// mutated in place; a refresh replaces the record wholesale.
type CacheEntry struct {
	// Digest is the transaction digest the entry belongs to.
	Digest string `json:"digest"`
	// Explanation is the narrative produced for the transaction.
	Explanation string `json:"explanation"`
	// Details holds the decoded transaction the narrative was built from.
	Details decoder.TransactionDetails `json:"details"`
	// CreatedAt records when the entry was written, for age-based expiry.
	CreatedAt time.Time `json:"createdAt"`
}

// CacheStorage defines the persistence interface for explanation entries.
//
// Implementations may discard entries at any time (eviction, restart); the
// service treats every failure short of corruption as a miss and rebuilds
// the entry.
type CacheStorage interface {
	// GetExplanation returns the entry stored for the given digest.
	//
	// Returns:
	//   - The stored CacheEntry on a hit.
	//   - ErrCacheMiss when no entry exists for the digest.
	GetExplanation(ctx context.Context, digest string) (CacheEntry, error)

	// SaveExplanation stores the entry under its digest, replacing any
	// previous entry for the same digest.
	SaveExplanation(ctx context.Context, entry CacheEntry) error

	// DeleteExplanation removes the entry for the given digest. Deleting a
	// digest that has no entry is not an error.
	DeleteExplanation(ctx context.Context, digest string) error
}
