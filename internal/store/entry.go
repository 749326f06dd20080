package store

import (
	"context"
	"time"
)

// Entry is one stored value with the metadata needed to merge adapters.
// A Deleted entry is a tombstone: it hides older copies of the key.
type Entry[V any] struct {
	Value     V         `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
	Deleted   bool      `json:"deleted,omitempty"`
}

// newer reports whether e should replace current.
func (e Entry[V]) newer(current Entry[V]) bool {
	return e.UpdatedAt.After(current.UpdatedAt)
}

// Adapter is one storage backend of a PersistentStore.
type Adapter[V any] interface {
	// Name identifies the adapter in logs and metrics ("remote", "local").
	Name() string

	// Load returns every entry the adapter holds, tombstones included.
	Load(ctx context.Context) (map[string]Entry[V], error)

	// Save upserts the given entries. Adapters that cannot keep tombstones
	// may delete the key instead.
	Save(ctx context.Context, entries map[string]Entry[V]) error

	// Clear drops the keys entirely.
	Clear(ctx context.Context, keys []string) error
}

// Observer receives store outcomes. The metrics registry implements it.
type Observer interface {
	StoreSaved(store, adapter string)
	StoreFellBack(store, adapter string)
	StoreLoadFailed(store, adapter string)
}

type nopObserver struct{}

func (nopObserver) StoreSaved(string, string)      {}
func (nopObserver) StoreFellBack(string, string)   {}
func (nopObserver) StoreLoadFailed(string, string) {}
