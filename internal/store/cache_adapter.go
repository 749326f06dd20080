package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"fuji-trip/tripmap/internal/common"
)

var keyLocks sync.Map

func lockFor(key string) *sync.Mutex {
	mu, _ := keyLocks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// CacheAdapter keeps every entry of a store as one JSON document under a
// single cache key. It backs the local fallback.
type CacheAdapter[V any] struct {
	cache common.CacheInterface
	key   string
}

var _ Adapter[string] = (*CacheAdapter[string])(nil)

// NewCacheAdapter stores entries under key in cache. The cache should not
// expire entries.
func NewCacheAdapter[V any](cache common.CacheInterface, key string) *CacheAdapter[V] {
	return &CacheAdapter[V]{cache: cache, key: key}
}

func (a *CacheAdapter[V]) Name() string {
	return "local"
}

func (a *CacheAdapter[V]) Load(ctx context.Context) (map[string]Entry[V], error) {
	mu := lockFor(a.key)
	mu.Lock()
	defer mu.Unlock()

	return a.read()
}

func (a *CacheAdapter[V]) Save(ctx context.Context, entries map[string]Entry[V]) error {
	mu := lockFor(a.key)
	mu.Lock()
	defer mu.Unlock()

	current, err := a.read()
	if err != nil {
		// Corrupt documents are replaced rather than blocking every write.
		current = make(map[string]Entry[V])
	}
	for k, e := range entries {
		current[k] = e
	}
	return a.write(current)
}

func (a *CacheAdapter[V]) Clear(ctx context.Context, keys []string) error {
	mu := lockFor(a.key)
	mu.Lock()
	defer mu.Unlock()

	current, err := a.read()
	if err != nil || len(current) == 0 {
		return err
	}
	for _, k := range keys {
		delete(current, k)
	}
	if len(current) == 0 {
		a.cache.Delete(a.key)
		return nil
	}
	return a.write(current)
}

func (a *CacheAdapter[V]) read() (map[string]Entry[V], error) {
	doc, found := common.GetAs[string](a.cache, a.key)
	if !found || doc == "" {
		return make(map[string]Entry[V]), nil
	}

	entries := make(map[string]Entry[V])
	if err := json.Unmarshal([]byte(doc), &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", a.key, err)
	}
	return entries, nil
}

func (a *CacheAdapter[V]) write(entries map[string]Entry[V]) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode %s: %w", a.key, err)
	}
	a.cache.Set(a.key, string(data), 0)
	return nil
}
