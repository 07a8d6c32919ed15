package infra

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-accounts/internal/cache"
	"github.com/umalmyha/customer-accounts/internal/config"
	"github.com/umalmyha/customer-accounts/internal/repository"
	"github.com/umalmyha/customer-accounts/pkg/db/transactor"
)

// Storage holds customer repository and optional cache with function releasing their connections
type Storage struct {
	CustomerRps   repository.CustomerRepository
	CustomerCache cache.CustomerCacheRepository
	closers       []func(context.Context)
}

// Close releases all opened connections
func (s *Storage) Close(ctx context.Context) {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i](ctx)
	}
}

// OpenStorage connects to storage selected by config
func OpenStorage(ctx context.Context, cfg config.Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.StorageCfg.ConnectTimeout)
	defer cancel()

	s := &Storage{}

	switch cfg.StorageCfg.Driver {
	case config.StoragePostgres:
		pool, err := Postgresql(ctx, cfg.PostgresCfg)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) { pool.Close() })
		s.CustomerRps = repository.NewPostgresCustomerRepository(transactor.NewPgxTransactor(pool), transactor.NewPgxWithinTransactionExecutor(pool))
	case config.StorageMongo:
		client, err := Mongodb(ctx, cfg.MongoCfg)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func(ctx context.Context) {
			if err := client.Disconnect(ctx); err != nil {
				logrus.Errorf("failed to disconnect from mongodb - %v", err)
			}
		})
		s.CustomerRps = repository.NewMongoCustomerRepository(client)
	case config.StorageMemory:
		g, err := repository.LoadCustomerGraph(cfg.StorageCfg.FixtureFile)
		if err != nil {
			return nil, err
		}
		logrus.Infof("loaded %d customers in %d trees from %s", g.Len(), len(g.Roots()), cfg.StorageCfg.FixtureFile)
		s.CustomerRps = repository.NewMemoryCustomerRepository(g)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageCfg.Driver)
	}

	if !cfg.CacheEnabled() {
		return s, nil
	}

	client, err := Redis(ctx, cfg.RedisCfg)
	if err != nil {
		s.Close(ctx)
		return nil, err
	}
	s.closers = append(s.closers, func(context.Context) {
		if err := client.Close(); err != nil {
			logrus.Errorf("failed to close connection to redis - %v", err)
		}
	})
	s.CustomerCache = cache.NewRedisCustomerCache(client, cfg.RedisCfg.TimeToLive)

	return s, nil
}
