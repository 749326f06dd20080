package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fuji-trip/tripmap/internal/models/entities"
	gormModels "fuji-trip/tripmap/internal/models/gorm"
	"fuji-trip/tripmap/internal/store"
)

// CustomItemRepository stores user-added checklist items.
type CustomItemRepository struct {
	db *gorm.DB
}

// NewCustomItemRepository creates a new GORM-based custom item repository
func NewCustomItemRepository(db *gorm.DB) *CustomItemRepository {
	return &CustomItemRepository{db: db}
}

// ForUser returns a store adapter scoped to one user's items.
func (r *CustomItemRepository) ForUser(userID string) store.Adapter[entities.CustomChecklistItem] {
	return &userCustomItems{repo: r, userID: userID}
}

// GetByUser fetches a user's custom items, oldest first
func (r *CustomItemRepository) GetByUser(ctx context.Context, userID string) ([]gormModels.CustomChecklistItem, error) {
	var items []gormModels.CustomChecklistItem

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch custom items: %w", err)
	}

	return items, nil
}

// UpsertBatch performs bulk upsert with conflict resolution on id
func (r *CustomItemRepository) UpsertBatch(ctx context.Context, items []gormModels.CustomChecklistItem) error {
	if len(items) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"category_id",
				"name",
				"note",
				"updated_at",
			}),
		}).
		Create(&items).Error

	if err != nil {
		return fmt.Errorf("failed to upsert custom items batch: %w", err)
	}

	return nil
}

// DeleteByIDs removes a user's items
func (r *CustomItemRepository) DeleteByIDs(ctx context.Context, userID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Delete(&gormModels.CustomChecklistItem{}).Error

	if err != nil {
		return fmt.Errorf("failed to delete custom items: %w", err)
	}

	return nil
}

type userCustomItems struct {
	repo   *CustomItemRepository
	userID string
}

func (u *userCustomItems) Name() string {
	return "remote"
}

func (u *userCustomItems) Load(ctx context.Context) (map[string]store.Entry[entities.CustomChecklistItem], error) {
	rows, err := u.repo.GetByUser(ctx, u.userID)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]store.Entry[entities.CustomChecklistItem], len(rows))
	for _, row := range rows {
		entries[row.ID] = store.Entry[entities.CustomChecklistItem]{
			Value: entities.CustomChecklistItem{
				ID:         row.ID,
				CategoryID: row.CategoryID,
				Name:       row.Name,
				Note:       row.Note,
			},
			UpdatedAt: row.UpdatedAt.UTC(),
		}
	}
	return entries, nil
}

func (u *userCustomItems) Save(ctx context.Context, entries map[string]store.Entry[entities.CustomChecklistItem]) error {
	var rows []gormModels.CustomChecklistItem
	var deleted []string
	for id, e := range entries {
		if e.Deleted {
			deleted = append(deleted, id)
			continue
		}
		rows = append(rows, gormModels.CustomChecklistItem{
			ID:         id,
			CategoryID: e.Value.CategoryID,
			Name:       e.Value.Name,
			Note:       e.Value.Note,
			UserID:     u.userID,
			UpdatedAt:  e.UpdatedAt,
		})
	}

	return u.repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := NewCustomItemRepository(tx)
		if err := txRepo.UpsertBatch(ctx, rows); err != nil {
			return err
		}
		return txRepo.DeleteByIDs(ctx, u.userID, deleted)
	})
}

func (u *userCustomItems) Clear(ctx context.Context, keys []string) error {
	return u.repo.DeleteByIDs(ctx, u.userID, keys)
}
