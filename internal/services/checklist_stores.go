package services

import (
	"fuji-trip/tripmap/internal/common"
	"fuji-trip/tripmap/internal/constants"
	"fuji-trip/tripmap/internal/db/repositories"
	"fuji-trip/tripmap/internal/models/entities"
	"fuji-trip/tripmap/internal/store"
)

// ChecklistStores builds the per-user stores behind the checklist.
type ChecklistStores interface {
	CheckStates(user string) *store.PersistentStore[bool]
	CustomItems(user string) *store.PersistentStore[entities.CustomChecklistItem]
}

// RepositoryChecklistStores pairs the database repositories with the local
// fallback cache.
type RepositoryChecklistStores struct {
	packing  *repositories.PackingStateRepository
	custom   *repositories.CustomItemRepository
	local    common.CacheInterface
	observer store.Observer
}

func NewRepositoryChecklistStores(
	packing *repositories.PackingStateRepository,
	custom *repositories.CustomItemRepository,
	local common.CacheInterface,
	observer store.Observer,
) *RepositoryChecklistStores {
	return &RepositoryChecklistStores{
		packing:  packing,
		custom:   custom,
		local:    local,
		observer: observer,
	}
}

func (s *RepositoryChecklistStores) CheckStates(user string) *store.PersistentStore[bool] {
	return store.NewPersistentStore[bool](constants.StoreCheckStates,
		s.packing.ForUser(user),
		store.NewCacheAdapter[bool](s.local, constants.StorageKeyPackingChecklist+user),
	).WithObserver(s.observer)
}

func (s *RepositoryChecklistStores) CustomItems(user string) *store.PersistentStore[entities.CustomChecklistItem] {
	return store.NewPersistentStore[entities.CustomChecklistItem](constants.StoreCustomItems,
		s.custom.ForUser(user),
		store.NewCacheAdapter[entities.CustomChecklistItem](s.local, constants.StorageKeyCustomItems+user),
	).WithObserver(s.observer)
}
