package infra

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/customer-accounts/internal/config"
)

func Redis(ctx context.Context, cfg config.RedisCfg) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("didn't get response from redis after sending ping request - %w", err)
	}
	return client, nil
}
