// Package cache provides a minimal in-memory TTL cache keyed by a SHA-256
// hash of the serialized lookup value. Entries expire lazily on read.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Key hashes any JSON-serializable value into a stable cache key. Object
// keys are sorted before hashing so equivalent values always collide.
func Key(data any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("cache: serializing key data: %w", err)
	}

	// Round-trip through any so map keys marshal in sorted order regardless
	// of the source type's field layout.
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return "", fmt.Errorf("cache: normalizing key data: %w", err)
	}
	canonical, err := json.Marshal(normalized)
	if err != nil {
		return "", fmt.Errorf("cache: canonicalizing key data: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a mutex-guarded key/value store with per-entry TTL.
type Cache[V any] struct {
	mu    sync.Mutex
	store map[string]entry[V]
	ttl   time.Duration
	now   func() time.Time
}

// New creates a Cache with the given entry lifetime.
func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		store: make(map[string]entry[V]),
		ttl:   ttl,
		now:   time.Now,
	}
}

// SetClock overrides the cache's time source. Intended for tests.
func (c *Cache[V]) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Get returns the cached value for keyData. Expired entries are removed on
// lookup and reported as misses.
func (c *Cache[V]) Get(keyData any) (V, bool) {
	var zero V
	key, err := Key(keyData)
	if err != nil {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.store[key]
	if !ok {
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.store, key)
		return zero, false
	}
	return e.value, true
}

// Set stores a value under keyData with the configured TTL.
func (c *Cache[V]) Set(keyData any, value V) {
	key, err := Key(keyData)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = entry[V]{value: value, expiresAt: c.now().Add(c.ttl)}
}

// Clear removes every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]entry[V])
}

// Len reports the number of stored entries, including any not yet purged.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.store)
}
