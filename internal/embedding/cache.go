package embedding

import (
	"container/list"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/job-recommender/internal/parsing"
)

// DefaultCacheSize is the maximum number of cached vectors when no size is configured.
const DefaultCacheSize = 512

// CacheConfig holds configuration for the embedding cache.
type CacheConfig struct {
	MaxEntries int
	Logger     *zap.Logger
}

// DefaultCacheConfig returns sensible defaults.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		MaxEntries: DefaultCacheSize,
		Logger:     zap.NewNop(),
	}
}

// cacheEntry is a cached vector keyed by the hash of its normalized text.
// Entries are owned exclusively by the cache and never exposed to callers.
type cacheEntry struct {
	key      string
	vector   Vector
	storedAt time.Time
}

// Cache memoizes provider embeddings keyed by a stable hash of the
// normalized input text, evicting least-recently-used entries at capacity.
//
// Lookups and the insert/evict step are guarded by one mutex; the provider
// call itself runs outside the lock so a slow network call never blocks
// cache hits. Concurrent misses for the same text share a single provider
// call via singleflight. Failed provider calls are never stored.
type Cache struct {
	provider   Provider
	maxEntries int
	log        *zap.Logger

	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front = most recently used

	group singleflight.Group
}

// NewCache creates an embedding cache backed by the given provider.
func NewCache(provider Provider, config *CacheConfig) *Cache {
	if config == nil {
		config = DefaultCacheConfig()
	}
	if config.MaxEntries <= 0 {
		config.MaxEntries = DefaultCacheSize
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &Cache{
		provider:   provider,
		maxEntries: config.MaxEntries,
		log:        config.Logger,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
	}
}

// GetOrCompute returns the embedding for text, computing it via the
// provider on a cache miss. Fails with *EmptyInputError if the text is
// empty after normalization and propagates *ProviderUnavailableError from
// the provider without caching anything.
func (c *Cache) GetOrCompute(ctx context.Context, text string) (Vector, error) {
	normalized := parsing.NormalizeText(text)
	if normalized == "" {
		return nil, &EmptyInputError{}
	}
	key := hashKey(normalized)

	if vector, ok := c.lookup(key); ok {
		c.log.Debug("embedding cache hit", zap.String("key", key[:12]))
		return vector, nil
	}

	c.log.Debug("embedding cache miss", zap.String("key", key[:12]))

	// Misses for the same key share one in-flight provider call. The call
	// runs outside the cache lock.
	result, err, _ := c.group.Do(key, func() (any, error) {
		vector, err := c.provider.Embed(ctx, normalized)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			// Cancelled mid-flight: discard the partial result.
			return nil, err
		}
		c.store(key, vector)
		return vector, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(Vector), nil
}

// Len returns the current number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// lookup returns the cached vector for key, refreshing its recency.
func (c *Cache) lookup(key string) (Vector, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).vector, true
}

// store inserts a vector under key, evicting the least-recently-used entry
// if the cache is at capacity.
func (c *Cache) store(key string, vector Vector) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).vector = vector
		return
	}

	if c.order.Len() >= c.maxEntries {
		oldest := c.order.Back()
		if oldest != nil {
			evicted := oldest.Value.(*cacheEntry)
			c.order.Remove(oldest)
			delete(c.entries, evicted.key)
			c.log.Debug("embedding cache evict", zap.String("key", evicted.key[:12]))
		}
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{
		key:      key,
		vector:   vector,
		storedAt: time.Now(),
	})
}

// hashKey returns a stable cache key for normalized text.
func hashKey(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
