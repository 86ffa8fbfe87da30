// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"priisme/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// WizardCacheClient is the dedicated client for booking-wizard session state.
	WizardCacheClient *redis.Client
	// StylingCacheClient is the dedicated client for styling-advisor conversation context.
	StylingCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitCache initializes all Redis clients.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	WizardCacheClient = newRedisClient(config.AppConfig.RedisWizardDB)
	StylingCacheClient = newRedisClient(config.AppConfig.RedisStylingDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetWizardCacheClient returns the Redis client holding booking-wizard sessions.
func GetWizardCacheClient() *redis.Client {
	if WizardCacheClient == nil {
		WizardCacheClient = newRedisClient(config.AppConfig.RedisWizardDB)
	}
	return WizardCacheClient
}

// GetStylingCacheClient returns the Redis client holding styling conversations.
func GetStylingCacheClient() *redis.Client {
	if StylingCacheClient == nil {
		StylingCacheClient = newRedisClient(config.AppConfig.RedisStylingDB)
	}
	return StylingCacheClient
}
