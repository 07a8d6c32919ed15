package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/customer-accounts/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

const cachedCustomerTimeToLive = 10 * time.Minute

// CustomerCacheRepository represents behavior for customer cache.
// FindByID returns nil customer without error on cache miss.
type CustomerCacheRepository interface {
	FindByID(context.Context, int64) (*model.Customer, error)
	Create(context.Context, *model.Customer) error
	DeleteByID(context.Context, int64) error
}

type redisCustomerCache struct {
	client     *redis.Client
	timeToLive time.Duration
}

// NewRedisCustomerCache builds redis customer cache, ttl <= 0 falls back to default one
func NewRedisCustomerCache(client *redis.Client, ttl time.Duration) CustomerCacheRepository {
	if ttl <= 0 {
		ttl = cachedCustomerTimeToLive
	}
	return &redisCustomerCache{client: client, timeToLive: ttl}
}

func (r *redisCustomerCache) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	res, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var cc cachedCustomer
	if err := msgpack.Unmarshal(res, &cc); err != nil {
		return nil, err
	}

	return cc.customer()
}

func (r *redisCustomerCache) Create(ctx context.Context, c *model.Customer) error {
	encoded, err := msgpack.Marshal(newCachedCustomer(c))
	if err != nil {
		return err
	}

	if _, err := r.client.SetNX(ctx, r.key(c.ID), encoded, r.timeToLive).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisCustomerCache) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.client.Del(ctx, r.key(id)).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisCustomerCache) key(id int64) string {
	return fmt.Sprintf("customer:%d", id)
}
