package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fuji-trip/tripmap/internal/logging"
)

// PersistentStore writes through an ordered list of adapters. The first
// adapter is the primary; the rest are fallbacks in precedence order.
type PersistentStore[V any] struct {
	name     string
	adapters []Adapter[V]
	observer Observer
	now      func() time.Time
}

// NewPersistentStore builds a store over adapters, highest precedence first.
func NewPersistentStore[V any](name string, adapters ...Adapter[V]) *PersistentStore[V] {
	return &PersistentStore[V]{
		name:     name,
		adapters: adapters,
		observer: nopObserver{},
		now:      time.Now,
	}
}

// WithObserver sets the observer notified on saves, fallbacks and failed loads.
func (s *PersistentStore[V]) WithObserver(o Observer) *PersistentStore[V] {
	if o != nil {
		s.observer = o
	}
	return s
}

// WithClock replaces the timestamp source.
func (s *PersistentStore[V]) WithClock(now func() time.Time) *PersistentStore[V] {
	s.now = now
	return s
}

func (s *PersistentStore[V]) Name() string {
	return s.name
}

func (s *PersistentStore[V]) timestamp() time.Time {
	// Postgres keeps microseconds; truncating keeps local and remote copies comparable.
	return s.now().UTC().Truncate(time.Microsecond)
}

// Save stores a single value.
func (s *PersistentStore[V]) Save(ctx context.Context, key string, value V) error {
	return s.SaveAll(ctx, map[string]V{key: value})
}

// SaveAll stores every value under one timestamp.
func (s *PersistentStore[V]) SaveAll(ctx context.Context, values map[string]V) error {
	if len(values) == 0 {
		return nil
	}
	ts := s.timestamp()
	entries := make(map[string]Entry[V], len(values))
	for k, v := range values {
		entries[k] = Entry[V]{Value: v, UpdatedAt: ts}
	}
	return s.write(ctx, entries)
}

// Delete writes tombstones for keys.
func (s *PersistentStore[V]) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	ts := s.timestamp()
	entries := make(map[string]Entry[V], len(keys))
	for _, k := range keys {
		entries[k] = Entry[V]{UpdatedAt: ts, Deleted: true}
	}
	return s.write(ctx, entries)
}

// write tries adapters in order until one accepts the entries, then clears
// the keys from every adapter below it so a stale copy cannot win later.
func (s *PersistentStore[V]) write(ctx context.Context, entries map[string]Entry[V]) error {
	var errs []error

	for i, adapter := range s.adapters {
		if err := adapter.Save(ctx, entries); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", adapter.Name(), err))
			s.observer.StoreFellBack(s.name, adapter.Name())
			logging.Warn("Store save failed, falling back",
				"store", s.name,
				"adapter", adapter.Name(),
				"error", err.Error(),
			)
			continue
		}

		s.observer.StoreSaved(s.name, adapter.Name())
		s.clearBelow(ctx, i, keysOf(entries))
		return nil
	}

	if len(errs) == 0 {
		return fmt.Errorf("store %s has no adapters", s.name)
	}
	return fmt.Errorf("store %s: all adapters failed: %w", s.name, errors.Join(errs...))
}

func (s *PersistentStore[V]) clearBelow(ctx context.Context, idx int, keys []string) {
	for _, lower := range s.adapters[idx+1:] {
		if err := lower.Clear(ctx, keys); err != nil {
			logging.Debug("Store clear failed",
				"store", s.name,
				"adapter", lower.Name(),
				"error", err.Error(),
			)
		}
	}
}

// Load merges every adapter. Per key the newest entry wins; ties go to the
// higher precedence adapter. Tombstones are dropped from the result.
// An error is returned only when no adapter could be read.
func (s *PersistentStore[V]) Load(ctx context.Context) (map[string]V, error) {
	type winner struct {
		entry  Entry[V]
		source int
	}

	merged := make(map[string]winner)
	var errs []error
	primaryOK := false

	for i, adapter := range s.adapters {
		entries, err := adapter.Load(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", adapter.Name(), err))
			s.observer.StoreLoadFailed(s.name, adapter.Name())
			logging.Warn("Store load failed",
				"store", s.name,
				"adapter", adapter.Name(),
				"error", err.Error(),
			)
			continue
		}
		if i == 0 {
			primaryOK = true
		}
		for k, e := range entries {
			current, seen := merged[k]
			if !seen || e.newer(current.entry) {
				merged[k] = winner{entry: e, source: i}
			}
		}
	}

	if len(errs) == len(s.adapters) {
		return nil, fmt.Errorf("store %s: all adapters failed: %w", s.name, errors.Join(errs...))
	}

	repairs := make(map[string]Entry[V])
	result := make(map[string]V, len(merged))
	for k, w := range merged {
		if w.source > 0 {
			repairs[k] = w.entry
		}
		if !w.entry.Deleted {
			result[k] = w.entry.Value
		}
	}

	if primaryOK && len(repairs) > 0 {
		s.repair(ctx, repairs)
	}

	return result, nil
}

// repair pushes entries that only a fallback held up to the primary.
func (s *PersistentStore[V]) repair(ctx context.Context, entries map[string]Entry[V]) {
	primary := s.adapters[0]
	if err := primary.Save(ctx, entries); err != nil {
		logging.Debug("Store read repair failed",
			"store", s.name,
			"adapter", primary.Name(),
			"error", err.Error(),
		)
		return
	}
	logging.Info("Store read repair applied", "store", s.name, "keys", len(entries))
	s.clearBelow(ctx, 0, keysOf(entries))
}

func keysOf[V any](entries map[string]Entry[V]) []string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	return keys
}
