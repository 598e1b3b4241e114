package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Loader fetches the existing key set for a scope (e.g. a language code).
type Loader func(ctx context.Context, scope string) (KeySet, error)

// KeyCache holds existing key sets per scope with a TTL.
// Returned sets are shared and must be treated as read-only.
type KeyCache struct {
	ttl  time.Duration
	load Loader
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]cachedKeys
	sf      singleflight.Group
}

type cachedKeys struct {
	keys  KeySet
	built time.Time
}

// NewKeyCache creates a cache. A zero ttl disables caching.
func NewKeyCache(ttl time.Duration, load Loader) *KeyCache {
	return &KeyCache{
		ttl:     ttl,
		load:    load,
		now:     time.Now,
		entries: make(map[string]cachedKeys),
	}
}

func (c *KeyCache) expired(e cachedKeys) bool {
	if c.ttl == 0 {
		return true
	}
	return c.now().Sub(e.built) > c.ttl
}

// Get returns the key set for scope, loading it if missing or expired.
// Concurrent loads of the same scope are collapsed into one.
func (c *KeyCache) Get(ctx context.Context, scope string) (KeySet, error) {
	c.mu.RLock()
	entry, ok := c.entries[scope]
	c.mu.RUnlock()

	if ok && !c.expired(entry) {
		return entry.keys, nil
	}

	result, err, _ := c.sf.Do(scope, func() (any, error) {
		c.mu.RLock()
		entry, ok := c.entries[scope]
		c.mu.RUnlock()
		if ok && !c.expired(entry) {
			return entry.keys, nil
		}

		keys, err := c.load(ctx, scope)
		if err != nil {
			return nil, err
		}
		if keys == nil {
			keys = KeySet{}
		}

		c.mu.Lock()
		c.entries[scope] = cachedKeys{keys: keys, built: c.now()}
		c.mu.Unlock()

		return keys, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(KeySet), nil
}

// Invalidate drops the cached set for scope.
func (c *KeyCache) Invalidate(scope string) {
	c.mu.Lock()
	delete(c.entries, scope)
	c.mu.Unlock()
}
