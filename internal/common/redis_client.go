package common

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fuji-trip/tripmap/internal/config"
	"fuji-trip/tripmap/internal/logging"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	port := cfg.Port
	if port == "" {
		port = "6379"
	}

	redisDB := 0 // Default DB

	addr := fmt.Sprintf("%s:%s", cfg.Host, port)
	logging.Info("Initializing Redis client", "addr", addr, "db", redisDB)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           redisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warn("Failed to ping Redis", "error", err.Error())
		return client // Still return the client, connection pool will try to reconnect
	}

	logging.Info("Connected to Redis", "addr", addr)
	return client
}
