package entities

import "time"

// Rows scanned by sqlx from the override tables.

type TripNoteRow struct {
	EventID   string    `db:"event_id"`
	Details   string    `db:"details"`
	UpdatedAt time.Time `db:"updated_at"`
}

type TripLocationRow struct {
	EventID   string    `db:"event_id"`
	Lat       float64   `db:"lat"`
	Lng       float64   `db:"lng"`
	UpdatedAt time.Time `db:"updated_at"`
}
