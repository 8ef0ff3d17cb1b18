package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisclient "github.com/muhammadheryan/inventory-ledger/cmd/redis"
	"github.com/muhammadheryan/inventory-ledger/constant"
)

// Repository caches ledger aggregates. The cache is purely derived: every
// append deletes the touched key and a TTL bounds staleness, so it can
// always be rebuilt from the ledger.
type Repository interface {
	GetQuantity(ctx context.Context, itemID, locationID uint64, bucket constant.BucketType) (int64, bool, error)
	SetQuantity(ctx context.Context, itemID, locationID uint64, bucket constant.BucketType, quantity int64, ttl time.Duration) error
	InvalidateQuantity(ctx context.Context, itemID, locationID uint64, bucket constant.BucketType) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func quantityKey(itemID, locationID uint64, bucket constant.BucketType) string {
	return fmt.Sprintf("stock:%d:%d:%s", itemID, locationID, bucket)
}

// GetQuantity returns the cached aggregate and whether it was present.
// A nil client (redis disabled) reads as a cache miss.
func (r *redis) GetQuantity(ctx context.Context, itemID, locationID uint64, bucket constant.BucketType) (int64, bool, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, false, nil
	}
	val, err := client.Get(ctx, quantityKey(itemID, locationID, bucket)).Result()
	if err == goredis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	qty, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return qty, true, nil
}

func (r *redis) SetQuantity(ctx context.Context, itemID, locationID uint64, bucket constant.BucketType, quantity int64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, quantityKey(itemID, locationID, bucket), quantity, ttl).Err()
}

func (r *redis) InvalidateQuantity(ctx context.Context, itemID, locationID uint64, bucket constant.BucketType) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, quantityKey(itemID, locationID, bucket)).Err()
}
