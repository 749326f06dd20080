package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"fuji-trip/tripmap/internal/api"
	"fuji-trip/tripmap/internal/common"
	"fuji-trip/tripmap/internal/config"
	"fuji-trip/tripmap/internal/db"
	"fuji-trip/tripmap/internal/jobs"
	"fuji-trip/tripmap/internal/logging"
	"fuji-trip/tripmap/internal/metrics"
	"fuji-trip/tripmap/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("tripmap starting up",
		"environment", cfg.AppEnv,
		"db_driver", cfg.Database.Driver,
		"redis", cfg.RedisEnabled(),
		"timestamp", time.Now().Format(time.RFC3339),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Sessions and the weather result live in Redis when configured, so
	// several instances share them. The local fallback does too.
	var cache, local common.CacheInterface
	var redisPinger api.Pinger
	if cfg.RedisEnabled() {
		client := common.NewRedisClient(cfg.Redis)
		redisCache := common.NewRedisCacheService(client, "tripmap:")
		cache = redisCache
		local = common.NewRedisCacheService(client, "tripmap:local:")
		redisPinger = redisCache
	} else {
		cache = common.NewCacheService(3600, 600)
		local = common.NewDurableCacheService()
	}
	defer cache.Close()

	database, err := db.Open(cfg)
	if err != nil {
		logging.Fatal("Failed to open database handle", "error", err.Error())
	}
	defer database.Close()

	if err := db.WaitForConnection(ctx, database); err != nil {
		logging.Warn("Database unreachable, starting on local fallback", "error", err.Error())
	} else {
		logging.Info("Connected to database", "driver", cfg.Database.Driver)
	}

	orm, err := db.OpenORM(cfg.Database.Driver, database)
	if err != nil {
		logging.Fatal("Failed to initialize GORM", "error", err.Error())
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsReg := metrics.NewMetricsRegistry(reg)

	deps, err := api.InitDependencies(cfg, database, orm, cache, local, metricsReg)
	if err != nil {
		logging.Fatal("Failed to initialize dependencies", "error", err.Error())
	}

	background := jobs.InitializeJobs(ctx, database, orm, deps.Services.Weather)

	upSince := time.Now()
	server := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           routes.RegisterRoutes(deps, reg, redisPinger, upSince),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logging.Warn("Server shutdown", "error", err.Error())
		}
	}()

	logging.Info("Server starting", "addr", cfg.ListenAddr(), "environment", cfg.AppEnv)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Fatal("Server stopped", "error", err.Error())
	}

	background.Wait()
	logging.Info("tripmap stopped")
}
