// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/CorprexAhmed/Corprex-Scheduler/config"
)

// StatsCacheClient is the dedicated client for usage-stat counters.
var StatsCacheClient *redis.Client

// InitStatsCache initializes the Redis client for usage counters (using DB
// from AppConfig).
func InitStatsCache() {
	StatsCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStatsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := StatsCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Stats): %v", err)
	}
}

// GetStatsCacheClient returns the Redis client for usage counters.
func GetStatsCacheClient() *redis.Client {
	if StatsCacheClient == nil {
		InitStatsCache()
	}
	return StatsCacheClient
}
