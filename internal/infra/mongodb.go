package infra

import (
	"context"
	"fmt"

	"github.com/umalmyha/customer-accounts/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func Mongodb(ctx context.Context, cfg config.MongoCfg) (*mongo.Client, error) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%d/?maxPoolSize=%d", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to establish connection to mongodb - %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("didn't get response from mongodb after sending ping request - %w", err)
	}
	return client, nil
}
