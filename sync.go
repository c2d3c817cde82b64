package simplecache

import (
	"sync"
	"time"
)

// Synced wraps a Cache with a mutex so multiple goroutines can share
// it. Every operation takes the lock, Get included, since a Get may
// purge an expired entry.
type Synced[K comparable, V any] struct {
	mu    sync.Mutex
	cache *Cache[K, V]
}

// NewSynced creates an empty concurrency-safe cache. TTL semantics are
// the same as New.
func NewSynced[K comparable, V any](ttl time.Duration) *Synced[K, V] {
	return &Synced[K, V]{
		cache: New[K, V](ttl),
	}
}

func (s *Synced[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(key)
}

func (s *Synced[K, V]) Insert(key K, value V) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Insert(key, value)
}

func (s *Synced[K, V]) InsertBatch(items []Item[K, V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.InsertBatch(items)
}

func (s *Synced[K, V]) Delete(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Delete(key)
}

func (s *Synced[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Keys()
}

func (s *Synced[K, V]) Values() []V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Values()
}

func (s *Synced[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

func (s *Synced[K, V]) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.PurgeExpired()
}
