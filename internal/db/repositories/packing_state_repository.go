package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	gormModels "fuji-trip/tripmap/internal/models/gorm"
	"fuji-trip/tripmap/internal/store"
)

// PackingStateRepository stores checklist check state in packing_items.
type PackingStateRepository struct {
	db *gorm.DB
}

// NewPackingStateRepository creates a new GORM-based check state repository
func NewPackingStateRepository(db *gorm.DB) *PackingStateRepository {
	return &PackingStateRepository{db: db}
}

// ForUser returns a store adapter scoped to one user's rows.
func (r *PackingStateRepository) ForUser(userID string) store.Adapter[bool] {
	return &userPackingStates{repo: r, userID: userID}
}

func rowID(userID, itemID string) string {
	return userID + "_" + itemID
}

// GetByUser fetches every check state row of a user
func (r *PackingStateRepository) GetByUser(ctx context.Context, userID string) ([]gormModels.PackingItemState, error) {
	var rows []gormModels.PackingItemState

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch packing items: %w", err)
	}

	return rows, nil
}

// UpsertBatch performs bulk upsert with conflict resolution on item_id
func (r *PackingStateRepository) UpsertBatch(ctx context.Context, rows []gormModels.PackingItemState) error {
	if len(rows) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_id",
				"original_item_id",
				"checked",
				"updated_at",
			}),
		}).
		Create(&rows).Error

	if err != nil {
		return fmt.Errorf("failed to upsert packing items batch: %w", err)
	}

	return nil
}

// DeleteItems removes a user's rows for the given item ids
func (r *PackingStateRepository) DeleteItems(ctx context.Context, userID string, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND original_item_id IN ?", userID, itemIDs).
		Delete(&gormModels.PackingItemState{}).Error

	if err != nil {
		return fmt.Errorf("failed to delete packing items: %w", err)
	}

	return nil
}

type userPackingStates struct {
	repo   *PackingStateRepository
	userID string
}

func (u *userPackingStates) Name() string {
	return "remote"
}

func (u *userPackingStates) Load(ctx context.Context) (map[string]store.Entry[bool], error) {
	rows, err := u.repo.GetByUser(ctx, u.userID)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]store.Entry[bool], len(rows))
	for _, row := range rows {
		entries[row.OriginalItemID] = store.Entry[bool]{Value: row.Checked, UpdatedAt: row.UpdatedAt.UTC()}
	}
	return entries, nil
}

func (u *userPackingStates) Save(ctx context.Context, entries map[string]store.Entry[bool]) error {
	var rows []gormModels.PackingItemState
	var deleted []string
	for itemID, e := range entries {
		if e.Deleted {
			deleted = append(deleted, itemID)
			continue
		}
		rows = append(rows, gormModels.PackingItemState{
			ItemID:         rowID(u.userID, itemID),
			UserID:         u.userID,
			OriginalItemID: itemID,
			Checked:        e.Value,
			UpdatedAt:      e.UpdatedAt,
		})
	}

	return u.repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := NewPackingStateRepository(tx)
		if err := txRepo.UpsertBatch(ctx, rows); err != nil {
			return err
		}
		return txRepo.DeleteItems(ctx, u.userID, deleted)
	})
}

func (u *userPackingStates) Clear(ctx context.Context, keys []string) error {
	return u.repo.DeleteItems(ctx, u.userID, keys)
}
