package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/ratulalahy/med-debt-collector/internal/config"
)

// NewRedisClient connects to cfg.Addr and checks it with a ping.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
