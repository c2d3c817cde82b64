// In-process key/value cache with optional lazy TTL expiration
package simplecache

import (
	"time"

	"github.com/sirupsen/logrus"
)

// entry pairs a stored value with the instant it was inserted.
type entry[V any] struct {
	value      V
	insertedAt time.Time
}

// Item is a key/value pair accepted by InsertBatch.
type Item[K comparable, V any] struct {
	Key   K
	Value V
}

// Cache maps keys to values, expiring entries lazily once they are
// older than the cache's TTL. Expired entries are detected and removed
// on Get only; Keys, Values and Len may still observe them.
//
// A Cache is not safe for concurrent use. It assumes a single owner;
// use Synced to share one across goroutines.
type Cache[K comparable, V any] struct {
	entries map[K]entry[V]
	ttl     time.Duration
}

// New creates an empty cache. ttl <= 0 means entries never expire and
// must be removed explicitly via Delete.
func New[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]entry[V]),
		ttl:     ttl,
	}
}

// Get returns the value stored for key. If the entry is older than the
// cache TTL it is removed here and now, and Get reports a miss. This is
// the only method that consults the TTL.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	if c.ttl > 0 && time.Since(e.insertedAt) >= c.ttl {
		delete(c.entries, key)
		logrus.Debugf("Purged expired cache entry: %v", key)
		var zero V
		return zero, false
	}

	return e.value, true
}

// Insert stores value under key, stamped with the current time, and
// overwrites any existing entry. It returns the previous value and
// true when the key was already present. Re-insertion restarts the
// entry's TTL window.
func (c *Cache[K, V]) Insert(key K, value V) (V, bool) {
	prev, existed := c.entries[key]
	c.entries[key] = entry[V]{
		value:      value,
		insertedAt: time.Now(),
	}
	return prev.value, existed
}

// InsertBatch inserts every item in order, all stamped with a single
// timestamp captured before the loop, so the whole batch shares one
// expiration horizon. Duplicate keys within the batch resolve to the
// last occurrence.
func (c *Cache[K, V]) InsertBatch(items []Item[K, V]) {
	now := time.Now()
	for _, item := range items {
		c.entries[item.Key] = entry[V]{
			value:      item.Value,
			insertedAt: now,
		}
	}
}

// Delete removes the entry for key regardless of its expiration state
// and returns the stored value, or false if the key was absent.
func (c *Cache[K, V]) Delete(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	delete(c.entries, key)
	return e.value, true
}

// Keys returns a snapshot of all keys in the mapping, including keys
// whose entries are expired but not yet purged. Order is unspecified.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

// Values returns a snapshot of all stored values, without expiration
// filtering. Order is unspecified.
func (c *Cache[K, V]) Values() []V {
	values := make([]V, 0, len(c.entries))
	for _, e := range c.entries {
		values = append(values, e.value)
	}
	return values
}

// Len returns the number of entries in the mapping, counting expired
// entries that have not been purged yet.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// PurgeExpired sweeps the whole mapping and removes every expired
// entry, returning the number removed. It is an optional complement to
// the lazy expiration done by Get; a cache without a TTL never purges.
func (c *Cache[K, V]) PurgeExpired() int {
	if c.ttl <= 0 {
		return 0
	}

	removed := 0
	for k, e := range c.entries {
		if time.Since(e.insertedAt) >= c.ttl {
			delete(c.entries, k)
			removed++
		}
	}

	if removed > 0 {
		logrus.Debugf("Purged %d expired cache entries", removed)
	}
	return removed
}
