package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"fuji-trip/tripmap/internal/auth"
	"fuji-trip/tripmap/internal/common"
	"fuji-trip/tripmap/internal/constants"
	"fuji-trip/tripmap/internal/itinerary"
	"fuji-trip/tripmap/internal/logging"
	"fuji-trip/tripmap/internal/models/entities"
	"fuji-trip/tripmap/internal/store"
)

func init() {
	logging.SetLogger(zap.NewNop().Sugar())
}

var errRemoteDown = errors.New("remote unavailable")

// remoteTable stands in for a database table and can be taken offline.
type remoteTable[V any] struct {
	mu       sync.Mutex
	entries  map[string]store.Entry[V]
	down     bool
	readOnly bool
}

func newRemoteTable[V any]() *remoteTable[V] {
	return &remoteTable[V]{entries: make(map[string]store.Entry[V])}
}

func (r *remoteTable[V]) setDown(down bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.down = down
}

func (r *remoteTable[V]) setReadOnly(readOnly bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readOnly = readOnly
}

func (r *remoteTable[V]) Name() string { return "remote" }

func (r *remoteTable[V]) Load(ctx context.Context) (map[string]store.Entry[V], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.down {
		return nil, errRemoteDown
	}
	out := make(map[string]store.Entry[V], len(r.entries))
	for k, e := range r.entries {
		out[k] = e
	}
	return out, nil
}

func (r *remoteTable[V]) Save(ctx context.Context, entries map[string]store.Entry[V]) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.down || r.readOnly {
		return errRemoteDown
	}
	for k, e := range entries {
		if e.Deleted {
			delete(r.entries, k)
			continue
		}
		r.entries[k] = e
	}
	return nil
}

func (r *remoteTable[V]) Clear(ctx context.Context, keys []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.down || r.readOnly {
		return errRemoteDown
	}
	for _, k := range keys {
		delete(r.entries, k)
	}
	return nil
}

// steppingClock advances one millisecond per call so saves never tie.
type steppingClock struct {
	mu sync.Mutex
	t  time.Time
}

func newSteppingClock() *steppingClock {
	return &steppingClock{t: time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)}
}

func (c *steppingClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

// memChecklistStores keeps one remote table per user, like the
// repositories partitioned by user_id.
type memChecklistStores struct {
	mu     sync.Mutex
	local  common.CacheInterface
	clock  *steppingClock
	states map[string]*remoteTable[bool]
	custom map[string]*remoteTable[entities.CustomChecklistItem]
	down   bool
}

func newMemChecklistStores() *memChecklistStores {
	return &memChecklistStores{
		local:  common.NewDurableCacheService(),
		clock:  newSteppingClock(),
		states: make(map[string]*remoteTable[bool]),
		custom: make(map[string]*remoteTable[entities.CustomChecklistItem]),
	}
}

func (m *memChecklistStores) setRemoteDown(down bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.down = down
	for _, t := range m.states {
		t.setDown(down)
	}
	for _, t := range m.custom {
		t.setDown(down)
	}
}

// setRemoteReadOnly keeps reads working while every write fails.
func (m *memChecklistStores) setRemoteReadOnly(readOnly bool) {
	for _, t := range m.states {
		t.setReadOnly(readOnly)
	}
	for _, t := range m.custom {
		t.setReadOnly(readOnly)
	}
}

func (m *memChecklistStores) stateTable(user string) *remoteTable[bool] {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.states[user]; !ok {
		m.states[user] = newRemoteTable[bool]()
		m.states[user].down = m.down
	}
	return m.states[user]
}

func (m *memChecklistStores) customTable(user string) *remoteTable[entities.CustomChecklistItem] {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.custom[user]; !ok {
		m.custom[user] = newRemoteTable[entities.CustomChecklistItem]()
		m.custom[user].down = m.down
	}
	return m.custom[user]
}

func (m *memChecklistStores) CheckStates(user string) *store.PersistentStore[bool] {
	return store.NewPersistentStore[bool](constants.StoreCheckStates,
		m.stateTable(user),
		store.NewCacheAdapter[bool](m.local, constants.StorageKeyPackingChecklist+user),
	).WithClock(m.clock.now)
}

func (m *memChecklistStores) CustomItems(user string) *store.PersistentStore[entities.CustomChecklistItem] {
	return store.NewPersistentStore[entities.CustomChecklistItem](constants.StoreCustomItems,
		m.customTable(user),
		store.NewCacheAdapter[entities.CustomChecklistItem](m.local, constants.StorageKeyCustomItems+user),
	).WithClock(m.clock.now)
}

type itineraryFixture struct {
	svc          *ItineraryService
	notesRemote  *remoteTable[string]
	placesRemote *remoteTable[entities.LatLng]
	local        *common.CacheService
}

func newItineraryFixture(t *testing.T) *itineraryFixture {
	t.Helper()
	clock := newSteppingClock()
	local := common.NewDurableCacheService()
	notesRemote := newRemoteTable[string]()
	placesRemote := newRemoteTable[entities.LatLng]()

	notes := store.NewOverrideStore(store.NewPersistentStore[string](constants.StoreNotes,
		notesRemote,
		store.NewCacheAdapter[string](local, constants.StorageKeyEventDetails),
	).WithClock(clock.now))
	places := store.NewOverrideStore(store.NewPersistentStore[entities.LatLng](constants.StoreLocations,
		placesRemote,
		store.NewCacheAdapter[entities.LatLng](local, constants.StorageKeyLocationOverrides),
	).WithClock(clock.now))

	return &itineraryFixture{
		svc:          NewItineraryService(itinerary.Default(), notes, places),
		notesRemote:  notesRemote,
		placesRemote: placesRemote,
		local:        local,
	}
}

func loggedIn(t *testing.T, username string) *auth.Session {
	t.Helper()
	s := auth.NewSession("session-"+username, time.Now())
	name, err := auth.Authenticate(username, "neihu")
	if err != nil {
		t.Fatalf("login %s: %v", username, err)
	}
	s.SignIn(name)
	return s
}
