package explain

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otterhq/suilens/internal/decoder"
	"github.com/otterhq/suilens/internal/narrator"
	"github.com/otterhq/suilens/internal/pkg/logger"
	"github.com/otterhq/suilens/internal/registry"
)

// fetcherFunc adapts a function to the TransactionFetcher interface.
type fetcherFunc func(ctx context.Context, digest string) (decoder.RawTransaction, error)

func (f fetcherFunc) FetchTransaction(ctx context.Context, digest string) (decoder.RawTransaction, error) {
	return f(ctx, digest)
}

// cacheStub is an in-memory CacheStorage with injectable failures.
type cacheStub struct {
	mu      sync.Mutex
	entries map[string]CacheEntry
	getErr  error
	saveErr error
	gets    int
	saves   int
}

func newCacheStub() *cacheStub {
	return &cacheStub{entries: make(map[string]CacheEntry)}
}

func (c *cacheStub) GetExplanation(_ context.Context, digest string) (CacheEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gets++
	if c.getErr != nil {
		return CacheEntry{}, c.getErr
	}
	entry, ok := c.entries[digest]
	if !ok {
		return CacheEntry{}, ErrCacheMiss
	}
	return entry, nil
}

func (c *cacheStub) SaveExplanation(_ context.Context, entry CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.saves++
	if c.saveErr != nil {
		return c.saveErr
	}
	c.entries[entry.Digest] = entry
	return nil
}

func (c *cacheStub) DeleteExplanation(_ context.Context, digest string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, digest)
	return nil
}

func sampleRawTx(digest string) decoder.RawTransaction {
	return decoder.RawTransaction{
		Digest: digest,
		Sender: "0xaaaa567890abcdef1234567890abcdef1234567890abcdef1234567890bbbb",
		BalanceChanges: []decoder.BalanceChange{
			{Owner: "0xaaaa567890abcdef1234567890abcdef1234567890abcdef1234567890bbbb"},
		},
		Gas: decoder.GasSummary{ComputationCost: 1000000},
	}
}

func newTestService(fetcher TransactionFetcher, opts ...Option) *service {
	dec := decoder.New(registry.New())
	narr := narrator.New(dec)
	return New(fetcher, dec, narr, opts...)
}

func TestService_DecodeTransaction(t *testing.T) {
	require.NoError(t, logger.Init(logger.WithLevel("error")))

	t.Run("should fetch and decode the transaction", func(t *testing.T) {
		svc := newTestService(fetcherFunc(func(ctx context.Context, digest string) (decoder.RawTransaction, error) {
			return sampleRawTx(digest), nil
		}))

		details, err := svc.DecodeTransaction(context.Background(), "digest-1")
		require.NoError(t, err)
		assert.Equal(t, "digest-1", details.Digest)
		assert.Len(t, details.Operations, 2)
	})

	t.Run("should propagate a not-found error", func(t *testing.T) {
		svc := newTestService(fetcherFunc(func(ctx context.Context, digest string) (decoder.RawTransaction, error) {
			return decoder.RawTransaction{}, ErrTransactionNotFound
		}))

		_, err := svc.DecodeTransaction(context.Background(), "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestService_ExplainTransaction(t *testing.T) {
	require.NoError(t, logger.Init(logger.WithLevel("error")))

	t.Run("should build and cache an explanation on a miss", func(t *testing.T) {
		cache := newCacheStub()
		svc := newTestService(fetcherFunc(func(ctx context.Context, digest string) (decoder.RawTransaction, error) {
			return sampleRawTx(digest), nil
		}), WithCache(cache))

		result, err := svc.ExplainTransaction(context.Background(), "digest-1", narrator.Context{SubjectName: "alice"})
		require.NoError(t, err)
		assert.False(t, result.Cached)
		assert.Contains(t, result.Explanation, "Transaction by alice:")
		assert.Equal(t, 1, cache.saves)
	})

	t.Run("should serve a fresh entry from the cache", func(t *testing.T) {
		fetches := 0
		cache := newCacheStub()
		svc := newTestService(fetcherFunc(func(ctx context.Context, digest string) (decoder.RawTransaction, error) {
			fetches++
			return sampleRawTx(digest), nil
		}), WithCache(cache))

		first, err := svc.ExplainTransaction(context.Background(), "digest-1", narrator.Context{})
		require.NoError(t, err)

		second, err := svc.ExplainTransaction(context.Background(), "digest-1", narrator.Context{})
		require.NoError(t, err)

		assert.True(t, second.Cached)
		assert.Equal(t, first.Explanation, second.Explanation)
		assert.Equal(t, 1, fetches)
	})

	t.Run("should rebuild an expired entry", func(t *testing.T) {
		now := time.Unix(1_700_000_000, 0)
		fetches := 0
		cache := newCacheStub()
		svc := newTestService(fetcherFunc(func(ctx context.Context, digest string) (decoder.RawTransaction, error) {
			fetches++
			return sampleRawTx(digest), nil
		}),
			WithCache(cache),
			WithMaxEntryAge(time.Hour),
			WithClock(func() time.Time { return now }),
		)

		_, err := svc.ExplainTransaction(context.Background(), "digest-1", narrator.Context{})
		require.NoError(t, err)

		now = now.Add(2 * time.Hour)
		result, err := svc.ExplainTransaction(context.Background(), "digest-1", narrator.Context{})
		require.NoError(t, err)

		assert.False(t, result.Cached)
		assert.Equal(t, 2, fetches)
	})

	t.Run("should treat a cache backend failure as a miss", func(t *testing.T) {
		cache := newCacheStub()
		cache.getErr = errors.New("connection refused")

		svc := newTestService(fetcherFunc(func(ctx context.Context, digest string) (decoder.RawTransaction, error) {
			return sampleRawTx(digest), nil
		}), WithCache(cache))

		result, err := svc.ExplainTransaction(context.Background(), "digest-1", narrator.Context{})
		require.NoError(t, err)
		assert.False(t, result.Cached)
	})

	t.Run("should not fail when the cache write fails", func(t *testing.T) {
		cache := newCacheStub()
		cache.saveErr = errors.New("connection refused")

		svc := newTestService(fetcherFunc(func(ctx context.Context, digest string) (decoder.RawTransaction, error) {
			return sampleRawTx(digest), nil
		}), WithCache(cache))

		result, err := svc.ExplainTransaction(context.Background(), "digest-1", narrator.Context{})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Explanation)
	})

	t.Run("should propagate a not-found error without caching", func(t *testing.T) {
		cache := newCacheStub()
		svc := newTestService(fetcherFunc(func(ctx context.Context, digest string) (decoder.RawTransaction, error) {
			return decoder.RawTransaction{}, ErrTransactionNotFound
		}), WithCache(cache))

		_, err := svc.ExplainTransaction(context.Background(), "missing", narrator.Context{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
		assert.Equal(t, 0, cache.saves)
	})

	t.Run("should coalesce concurrent lookups for the same digest", func(t *testing.T) {
		fetches := 0
		cache := newCacheStub()
		svc := newTestService(fetcherFunc(func(ctx context.Context, digest string) (decoder.RawTransaction, error) {
			fetches++
			time.Sleep(10 * time.Millisecond)
			return sampleRawTx(digest), nil
		}), WithCache(cache))

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.ExplainTransaction(context.Background(), "digest-1", narrator.Context{})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, fetches)
		assert.Empty(t, svc.inFlight)
	})
}

func TestService_Invalidate(t *testing.T) {
	require.NoError(t, logger.Init(logger.WithLevel("error")))

	t.Run("should remove the cached entry", func(t *testing.T) {
		cache := newCacheStub()
		svc := newTestService(fetcherFunc(func(ctx context.Context, digest string) (decoder.RawTransaction, error) {
			return sampleRawTx(digest), nil
		}), WithCache(cache))

		_, err := svc.ExplainTransaction(context.Background(), "digest-1", narrator.Context{})
		require.NoError(t, err)

		require.NoError(t, svc.Invalidate(context.Background(), "digest-1"))

		_, err = svc.Cached(context.Background(), "digest-1")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("should be a no-op without a cache", func(t *testing.T) {
		svc := newTestService(fetcherFunc(nil))
		assert.NoError(t, svc.Invalidate(context.Background(), "digest-1"))
	})
}

func TestService_Cached(t *testing.T) {
	require.NoError(t, logger.Init(logger.WithLevel("error")))

	t.Run("should return the stored entry", func(t *testing.T) {
		cache := newCacheStub()
		svc := newTestService(fetcherFunc(func(ctx context.Context, digest string) (decoder.RawTransaction, error) {
			return sampleRawTx(digest), nil
		}), WithCache(cache))

		_, err := svc.ExplainTransaction(context.Background(), "digest-1", narrator.Context{})
		require.NoError(t, err)

		entry, err := svc.Cached(context.Background(), "digest-1")
		require.NoError(t, err)
		assert.Equal(t, "digest-1", entry.Digest)
		assert.NotEmpty(t, entry.Explanation)
	})

	t.Run("should report a miss without a cache", func(t *testing.T) {
		svc := newTestService(fetcherFunc(nil))
		_, err := svc.Cached(context.Background(), "digest-1")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("should report an expired entry as a miss", func(t *testing.T) {
		now := time.Unix(1_700_000_000, 0)
		cache := newCacheStub()
		svc := newTestService(fetcherFunc(func(ctx context.Context, digest string) (decoder.RawTransaction, error) {
			return sampleRawTx(digest), nil
		}),
			WithCache(cache),
			WithMaxEntryAge(time.Hour),
			WithClock(func() time.Time { return now }),
		)

		_, err := svc.ExplainTransaction(context.Background(), "digest-1", narrator.Context{})
		require.NoError(t, err)

		now = now.Add(2 * time.Hour)
		_, err = svc.Cached(context.Background(), "digest-1")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}
