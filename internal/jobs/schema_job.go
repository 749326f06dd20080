package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"fuji-trip/tripmap/internal/db"
	"fuji-trip/tripmap/internal/logging"
)

// SchemaJob creates the remote tables. When the database is down at
// startup it keeps retrying in the background; until then every store
// runs on its local fallback.
type SchemaJob struct {
	db  *sqlx.DB
	orm *gorm.DB
}

func NewSchemaJob(database *sqlx.DB, orm *gorm.DB) *SchemaJob {
	return &SchemaJob{db: database, orm: orm}
}

// Run creates the sqlx tables and migrates the GORM models once.
func (j *SchemaJob) Run(ctx context.Context) error {
	if err := db.EnsureSchema(ctx, j.db); err != nil {
		return err
	}
	if err := db.Migrate(ctx, j.orm); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// RunUntilReady retries Run every interval until it succeeds or ctx ends.
func (j *SchemaJob) RunUntilReady(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		err := j.Run(ctx)
		if err == nil {
			logging.Info("Database schema ready", "attempts", attempt)
			return nil
		}
		logging.Warn("Database schema not ready, running on local fallback",
			"attempt", attempt,
			"error", err.Error(),
		)

		select {
		case <-ticker.C:
		case <-ctx.Done():
			logging.Info("Schema job shutting down")
			return ctx.Err()
		}
	}
}
