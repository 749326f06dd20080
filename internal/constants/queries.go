package constants

// Queries use ? placeholders and go through sqlx Rebind, so the same text
// runs on Postgres and SQLite.
const (
	CreateTripNotesTable = `
	CREATE TABLE IF NOT EXISTS trip_notes (
		event_id   TEXT PRIMARY KEY,
		details    TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMP NOT NULL
	)
	`

	CreateTripLocationsTable = `
	CREATE TABLE IF NOT EXISTS trip_locations (
		event_id   TEXT PRIMARY KEY,
		lat        DOUBLE PRECISION NOT NULL,
		lng        DOUBLE PRECISION NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)
	`

	GetAllTripNotes = `
	SELECT event_id, details, updated_at FROM trip_notes
	`

	UpsertTripNote = `
	INSERT INTO trip_notes (event_id, details, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT (event_id) DO UPDATE
	SET details = excluded.details, updated_at = excluded.updated_at
	`

	DeleteTripNotes = `
	DELETE FROM trip_notes WHERE event_id IN (?)
	`

	GetAllTripLocations = `
	SELECT event_id, lat, lng, updated_at FROM trip_locations
	`

	UpsertTripLocation = `
	INSERT INTO trip_locations (event_id, lat, lng, updated_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (event_id) DO UPDATE
	SET lat = excluded.lat, lng = excluded.lng, updated_at = excluded.updated_at
	`

	DeleteTripLocations = `
	DELETE FROM trip_locations WHERE event_id IN (?)
	`
)
