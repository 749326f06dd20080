package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fuji-trip/tripmap/internal/config"
	gormModels "fuji-trip/tripmap/internal/models/gorm"
)

// OpenORM wraps the existing sqlx connection pool in GORM so both share
// one pool and one driver.
func OpenORM(driver string, db *sqlx.DB) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverSQLite:
		dialector = sqlite.New(sqlite.Config{Conn: db.DB})
	default:
		dialector = postgres.New(postgres.Config{Conn: db.DB})
	}

	orm, err := gorm.Open(dialector, &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}
	return orm, nil
}

// Migrate creates the checklist tables.
func Migrate(ctx context.Context, orm *gorm.DB) error {
	if err := orm.WithContext(ctx).AutoMigrate(
		&gormModels.PackingItemState{},
		&gormModels.CustomChecklistItem{},
	); err != nil {
		return fmt.Errorf("failed to migrate checklist tables: %w", err)
	}
	return nil
}
