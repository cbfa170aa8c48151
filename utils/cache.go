// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"travelsure/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds conversation sessions.
	SessionCacheClient *redis.Client
	// TaskCacheClient is the Redis database backing the reminder queue.
	TaskCacheClient *redis.Client
)

func newRedisClient(db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// InitSessionCache initializes the Redis client used by the session store.
func InitSessionCache() error {
	client, err := newRedisClient(config.AppConfig.RedisSessionDB)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis (Sessions): %w", err)
	}
	SessionCacheClient = client
	return nil
}

// InitTaskCache initializes the Redis client of the reminder queue database.
func InitTaskCache() error {
	client, err := newRedisClient(config.AppConfig.RedisTaskDB)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis (Tasks): %w", err)
	}
	TaskCacheClient = client
	return nil
}
