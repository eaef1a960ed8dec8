package utils

import (
	"context"
	"log"
	"time"

	"mesafy/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient caches short-lived availability sessions produced by the
// booking flow. The availability engine itself never reads it.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client for availability sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (session cache): %v", err)
	}
}

// GetSessionCacheClient returns the availability session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
