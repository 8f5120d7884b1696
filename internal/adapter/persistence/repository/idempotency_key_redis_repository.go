package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront_payments/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKeyPrefix = "payment:idempotency:"

// redisKV is the subset of *redis.Client the repository needs.
type redisKV interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// IdempotencyKeyRedisRepository keeps one idempotence key per order in Redis.
// Suitable when several proxy instances must agree on the key for an order.
type IdempotencyKeyRedisRepository struct {
	client    redisKV
	keyPrefix string
}

var _ interfaces.IIdempotencyKeyRepository = (*IdempotencyKeyRedisRepository)(nil)

func NewIdempotencyKeyRedisRepository(client redisKV, keyPrefix string) *IdempotencyKeyRedisRepository {
	if keyPrefix == "" {
		keyPrefix = defaultRedisKeyPrefix
	}
	return &IdempotencyKeyRedisRepository{client: client, keyPrefix: keyPrefix}
}

// GetOrCreate uses SETNX so concurrent first calls for an order agree on one key.
func (r *IdempotencyKeyRedisRepository) GetOrCreate(ctx context.Context, orderID, candidate string, ttl time.Duration) (string, error) {
	key := r.keyPrefix + orderID

	created, err := r.client.SetNX(ctx, key, candidate, ttlOrDefault(ttl)).Result()
	if err != nil {
		return "", fmt.Errorf("failed to store idempotence key: %w", err)
	}
	if created {
		return candidate, nil
	}

	stored, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		// Expired between SETNX and GET.
		return candidate, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read idempotence key: %w", err)
	}
	return stored, nil
}
