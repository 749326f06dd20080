package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"fuji-trip/tripmap/internal/constants"
	"fuji-trip/tripmap/internal/models/entities"
	"fuji-trip/tripmap/internal/store"
)

// LocationRepository stores per-event coordinate overrides in trip_locations.
type LocationRepository struct {
	db *sqlx.DB
}

var _ store.Adapter[entities.LatLng] = (*LocationRepository)(nil)

func NewLocationRepository(db *sqlx.DB) *LocationRepository {
	return &LocationRepository{db}
}

func (r *LocationRepository) Name() string {
	return "remote"
}

func (r *LocationRepository) Load(ctx context.Context) (map[string]store.Entry[entities.LatLng], error) {
	var rows []entities.TripLocationRow
	if err := r.db.SelectContext(ctx, &rows, constants.GetAllTripLocations); err != nil {
		return nil, fmt.Errorf("failed to load trip locations: %w", err)
	}

	entries := make(map[string]store.Entry[entities.LatLng], len(rows))
	for _, row := range rows {
		entries[row.EventID] = store.Entry[entities.LatLng]{
			Value:     entities.LatLng{Lat: row.Lat, Lng: row.Lng},
			UpdatedAt: row.UpdatedAt.UTC(),
		}
	}
	return entries, nil
}

func (r *LocationRepository) Save(ctx context.Context, entries map[string]store.Entry[entities.LatLng]) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	upsert := r.db.Rebind(constants.UpsertTripLocation)
	var deleted []string
	for eventID, e := range entries {
		if e.Deleted {
			deleted = append(deleted, eventID)
			continue
		}
		if _, err := tx.ExecContext(ctx, upsert, eventID, e.Value.Lat, e.Value.Lng, e.UpdatedAt); err != nil {
			return fmt.Errorf("failed to upsert location %s: %w", eventID, err)
		}
	}
	if err := deleteIn(ctx, tx, constants.DeleteTripLocations, deleted); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *LocationRepository) Clear(ctx context.Context, keys []string) error {
	return deleteIn(ctx, r.db, constants.DeleteTripLocations, keys)
}
