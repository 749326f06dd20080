package store

import (
	"context"

	"fuji-trip/tripmap/internal/logging"
)

// Overrides is a loaded snapshot of an override layer.
type Overrides[V any] map[string]V

// Resolve returns the override for key, or builtin when none exists.
func (o Overrides[V]) Resolve(key string, builtin V) V {
	if v, ok := o[key]; ok {
		return v
	}
	return builtin
}

// OverrideStore shadows built-in values with persisted per-key overrides.
// Notes and locations are both instances of it.
type OverrideStore[V any] struct {
	store *PersistentStore[V]
}

func NewOverrideStore[V any](store *PersistentStore[V]) *OverrideStore[V] {
	return &OverrideStore[V]{store: store}
}

// Snapshot loads the overrides. When nothing can be read the snapshot is
// empty and every lookup falls back to the built-in value.
func (o *OverrideStore[V]) Snapshot(ctx context.Context) Overrides[V] {
	values, err := o.store.Load(ctx)
	if err != nil {
		logging.Warn("Override load failed, using built-in values",
			"store", o.store.Name(),
			"error", err.Error(),
		)
		return Overrides[V]{}
	}
	return Overrides[V](values)
}

// Set persists an override for key.
func (o *OverrideStore[V]) Set(ctx context.Context, key string, value V) error {
	return o.store.Save(ctx, key, value)
}
