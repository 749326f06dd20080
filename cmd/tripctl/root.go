package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"fuji-trip/tripmap/internal/api"
	"fuji-trip/tripmap/internal/common"
	"fuji-trip/tripmap/internal/config"
	"fuji-trip/tripmap/internal/db"
	"fuji-trip/tripmap/internal/logging"
	"fuji-trip/tripmap/internal/metrics"
)

var (
	configFile string
	offline    bool
)

var rootCmd = &cobra.Command{
	Use:           "tripctl",
	Short:         "Inspect and export the Fuji trip itinerary",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (overrides CONFIG_FILE)")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "skip the database and show built-in notes and locations only")

	rootCmd.AddCommand(exportCmd, itineraryCmd, weatherCmd)
}

// loadDependencies wires the same services the server uses, backed by
// in-memory caches. Saved notes and locations are read from the database
// unless --offline is set or it cannot be reached.
func loadDependencies(ctx context.Context) (*api.Dependencies, func(), error) {
	if configFile != "" {
		if err := os.Setenv("CONFIG_FILE", configFile); err != nil {
			return nil, nil, err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := logging.Init(cfg.AppEnv); err != nil {
		return nil, nil, err
	}

	if offline {
		cfg.Database.Driver = config.DriverSQLite
		cfg.Database.SQLitePath = ":memory:"
	}

	database, err := db.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	cleanup := func() {
		database.Close()
		_ = logging.Close()
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := database.PingContext(pingCtx); err != nil {
		logging.Warn("Database unreachable, showing built-in values", "error", err.Error())
	}

	orm, err := db.OpenORM(cfg.Database.Driver, database)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	if offline {
		if err := db.EnsureSchema(ctx, database); err != nil {
			cleanup()
			return nil, nil, err
		}
		if err := db.Migrate(ctx, orm); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	deps, err := api.InitDependencies(cfg, database, orm,
		common.NewDurableCacheService(),
		common.NewDurableCacheService(),
		metrics.NewMetricsRegistry(prometheus.NewRegistry()),
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return deps, cleanup, nil
}
