// Package explain coordinates the full explanation pipeline: fetch a raw
// transaction by digest, decode it, narrate it, and cache the result so
// repeat lookups for the same digest skip both the node and the LLM.
package explain

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/otterhq/suilens/internal/decoder"
	"github.com/otterhq/suilens/internal/narrator"
	"github.com/otterhq/suilens/internal/pkg/logger"
)

// defaultMaxEntryAge is how long a cached explanation stays valid before a
// lookup rebuilds it.
const defaultMaxEntryAge = 24 * time.Hour

// Explanation is the caller-facing result of an explanation lookup.
type Explanation struct {
	// Digest is the transaction digest the narrative describes.
	Digest string `json:"digest"`
	// Explanation is the narrative text.
	Explanation string `json:"explanation"`
	// Cached reports whether the narrative was served from the cache.
	Cached bool `json:"cached"`
	// Timestamp is when the narrative was produced.
	Timestamp time.Time `json:"timestamp"`
}

// Service defines the explanation pipeline operations.
type Service interface {
	// DecodeTransaction fetches and decodes the transaction for the given
	// digest without narrating or caching it.
	//
	// Returns:
	//   - ErrTransactionNotFound (possibly wrapped) when the digest is unknown.
	//   - Any other error for fetch failures.
	DecodeTransaction(ctx context.Context, digest string) (decoder.TransactionDetails, error)

	// ExplainTransaction returns a narrative for the given digest, serving
	// from the cache when a fresh entry exists and building (and caching) a
	// new one otherwise. Concurrent calls for the same digest coalesce so
	// the pipeline runs at most once per digest at a time.
	ExplainTransaction(ctx context.Context, digest string, mctx narrator.Context) (Explanation, error)

	// Invalidate removes the cached explanation for the given digest, if any.
	Invalidate(ctx context.Context, digest string) error

	// Cached returns the cache entry for the given digest without building
	// anything.
	//
	// Returns:
	//   - ErrCacheMiss when no entry exists or the entry has expired.
	Cached(ctx context.Context, digest string) (CacheEntry, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	fetcher     TransactionFetcher
	dec         *decoder.Decoder
	narr        *narrator.Narrator
	cache       CacheStorage // nil disables caching
	maxEntryAge time.Duration
	now         func() time.Time

	mu       sync.Mutex
	inFlight map[string]*digestLock
}

// digestLock serializes pipeline runs for one digest. The holder count lets
// the map entry be dropped once the last waiter releases it.
type digestLock struct {
	sync.Mutex
	holders int
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// Option customizes the explanation service during construction.
type Option func(*service)

// WithCache configures the cache backend. Without it every lookup rebuilds
// the explanation.
func WithCache(cache CacheStorage) Option {
	return func(s *service) {
		s.cache = cache
	}
}

// WithMaxEntryAge overrides how long cached entries stay valid. Zero or
// negative disables age-based expiry. Default: 24 hours.
func WithMaxEntryAge(d time.Duration) Option {
	return func(s *service) {
		s.maxEntryAge = d
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// New creates the explanation service from its collaborators.
//
// This constructor is intended to be used by dependency injection during
// application wiring.
func New(fetcher TransactionFetcher, dec *decoder.Decoder, narr *narrator.Narrator, opts ...Option) *service {
	s := &service{
		fetcher:     fetcher,
		dec:         dec,
		narr:        narr,
		maxEntryAge: defaultMaxEntryAge,
		now:         time.Now,
		inFlight:    make(map[string]*digestLock),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// lockDigest acquires the per-digest lock, creating it on first use. The
// returned function releases the lock and drops the map entry once no other
// caller holds or awaits it.
func (s *service) lockDigest(digest string) func() {
	s.mu.Lock()
	dl, ok := s.inFlight[digest]
	if !ok {
		dl = new(digestLock)
		s.inFlight[digest] = dl
	}
	dl.holders++
	s.mu.Unlock()

	dl.Lock()

	return func() {
		dl.Unlock()

		s.mu.Lock()
		dl.holders--
		if dl.holders == 0 {
			delete(s.inFlight, digest)
		}
		s.mu.Unlock()
	}
}

// DecodeTransaction fetches the raw transaction and decodes it.
func (s *service) DecodeTransaction(ctx context.Context, digest string) (decoder.TransactionDetails, error) {
	tx, err := s.fetcher.FetchTransaction(ctx, digest)
	if err != nil {
		return decoder.TransactionDetails{}, err
	}

	return s.dec.Decode(tx), nil
}

// fresh reports whether the entry is still within the configured age limit.
func (s *service) fresh(entry CacheEntry) bool {
	if s.maxEntryAge <= 0 {
		return true
	}
	return s.now().Sub(entry.CreatedAt) < s.maxEntryAge
}

// lookup returns a fresh cached entry for the digest. Backend failures are
// logged and reported as misses so a flaky cache never blocks explanations.
func (s *service) lookup(ctx context.Context, digest string) (CacheEntry, bool) {
	if s.cache == nil {
		return CacheEntry{}, false
	}

	entry, err := s.cache.GetExplanation(ctx, digest)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			logger.Warn(ctx, "explanation cache lookup failed",
				"tx.digest", digest,
				"error", err,
			)
		}
		return CacheEntry{}, false
	}

	if !s.fresh(entry) {
		return CacheEntry{}, false
	}
	return entry, true
}

// ExplainTransaction serves the narrative for the digest, from cache when
// possible. On a miss it fetches, decodes, narrates and stores the result;
// a cache write failure is logged but does not fail the call.
func (s *service) ExplainTransaction(ctx context.Context, digest string, mctx narrator.Context) (Explanation, error) {
	unlock := s.lockDigest(digest)
	defer unlock()

	if entry, ok := s.lookup(ctx, digest); ok {
		return Explanation{
			Digest:      digest,
			Explanation: entry.Explanation,
			Cached:      true,
			Timestamp:   entry.CreatedAt,
		}, nil
	}

	details, err := s.DecodeTransaction(ctx, digest)
	if err != nil {
		return Explanation{}, err
	}

	narrative := s.narr.Narrate(ctx, details, mctx)
	createdAt := s.now()

	if s.cache != nil {
		entry := CacheEntry{
			Digest:      digest,
			Explanation: narrative,
			Details:     details,
			CreatedAt:   createdAt,
		}
		if err := s.cache.SaveExplanation(ctx, entry); err != nil {
			logger.Warn(ctx, "failed to cache explanation",
				"tx.digest", digest,
				"error", err,
			)
		}
	}

	return Explanation{
		Digest:      digest,
		Explanation: narrative,
		Cached:      false,
		Timestamp:   createdAt,
	}, nil
}

// Invalidate removes the cached entry for the digest.
func (s *service) Invalidate(ctx context.Context, digest string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.DeleteExplanation(ctx, digest)
}

// Cached returns the stored entry for the digest; expired entries count as
// misses.
func (s *service) Cached(ctx context.Context, digest string) (CacheEntry, error) {
	if s.cache == nil {
		return CacheEntry{}, ErrCacheMiss
	}

	entry, err := s.cache.GetExplanation(ctx, digest)
	if err != nil {
		return CacheEntry{}, err
	}
	if !s.fresh(entry) {
		return CacheEntry{}, ErrCacheMiss
	}
	return entry, nil
}
