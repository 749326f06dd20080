package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"fuji-trip/tripmap/internal/constants"
	"fuji-trip/tripmap/internal/models/entities"
	"fuji-trip/tripmap/internal/store"
)

// NoteRepository stores per-event note overrides in trip_notes.
type NoteRepository struct {
	db *sqlx.DB
}

var _ store.Adapter[string] = (*NoteRepository)(nil)

func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db}
}

func (r *NoteRepository) Name() string {
	return "remote"
}

func (r *NoteRepository) Load(ctx context.Context) (map[string]store.Entry[string], error) {
	var rows []entities.TripNoteRow
	if err := r.db.SelectContext(ctx, &rows, constants.GetAllTripNotes); err != nil {
		return nil, fmt.Errorf("failed to load trip notes: %w", err)
	}

	entries := make(map[string]store.Entry[string], len(rows))
	for _, row := range rows {
		entries[row.EventID] = store.Entry[string]{Value: row.Details, UpdatedAt: row.UpdatedAt.UTC()}
	}
	return entries, nil
}

// Save upserts notes in one transaction. Tombstones delete the row.
func (r *NoteRepository) Save(ctx context.Context, entries map[string]store.Entry[string]) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	upsert := r.db.Rebind(constants.UpsertTripNote)
	var deleted []string
	for eventID, e := range entries {
		if e.Deleted {
			deleted = append(deleted, eventID)
			continue
		}
		if _, err := tx.ExecContext(ctx, upsert, eventID, e.Value, e.UpdatedAt); err != nil {
			return fmt.Errorf("failed to upsert note %s: %w", eventID, err)
		}
	}
	if err := deleteIn(ctx, tx, constants.DeleteTripNotes, deleted); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *NoteRepository) Clear(ctx context.Context, keys []string) error {
	return deleteIn(ctx, r.db, constants.DeleteTripNotes, keys)
}

// deleteIn expands an IN (?) query for ids and runs it.
func deleteIn(ctx context.Context, db sqlx.ExtContext, query string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	q, args, err := sqlx.In(query, ids)
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}
	if _, err := db.ExecContext(ctx, db.Rebind(q), args...); err != nil {
		return fmt.Errorf("failed to delete rows: %w", err)
	}
	return nil
}
