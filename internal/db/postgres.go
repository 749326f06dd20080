package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"fuji-trip/tripmap/internal/config"
	"fuji-trip/tripmap/internal/constants"
)

// Open returns a lazily connected handle for the configured driver.
func Open(cfg *config.Config) (*sqlx.DB, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlx.Open("sqlite3", cfg.Database.SQLitePath+"?_busy_timeout=5000")
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// SQLite allows one writer; a single connection avoids lock errors.
		db.SetMaxOpenConns(1)
		return db, nil
	default:
		db, err := sqlx.Open("postgres", cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetConnMaxIdleTime(5 * time.Minute)
		return db, nil
	}
}

// WaitForConnection pings the database a few times while it starts up.
func WaitForConnection(ctx context.Context, db *sqlx.DB) error {
	var err error

	for i := 0; i < 10; i++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
	return err
}

// EnsureSchema creates the override tables.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, ddl := range []string{constants.CreateTripNotesTable, constants.CreateTripLocationsTable} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
