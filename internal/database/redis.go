package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/localnerve/decideforme/internal/config"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates a Redis client and verifies the connection
func ConnectRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("Connected to redis: %s/%d", cfg.RedisAddr, cfg.RedisDB)

	return client, nil
}
