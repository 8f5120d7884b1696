package usecase

import (
	"context"
	"fmt"
	"time"

	"storefront_payments/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// TimestampKeyStrategy mints "<orderId>-<unixMillis>".
//
// Every call gets a fresh key, so two calls for the same logical payment are two
// attempts from the gateway's point of view. This is the storefront's historical
// behavior and remains the default; StoredKeyStrategy is the idempotent alternative.
type TimestampKeyStrategy struct {
	now func() time.Time
}

var _ interfaces.IIdempotencyKeyStrategy = (*TimestampKeyStrategy)(nil)

func NewTimestampKeyStrategy(now func() time.Time) *TimestampKeyStrategy {
	if now == nil {
		now = time.Now
	}
	return &TimestampKeyStrategy{now: now}
}

func (s *TimestampKeyStrategy) NewKey(_ context.Context, orderID string) (string, error) {
	return timestampKey(orderID, s.now()), nil
}

func timestampKey(orderID string, t time.Time) string {
	return fmt.Sprintf("%s-%d", orderID, t.UnixMilli())
}

// StoredKeyStrategy reuses the first key minted for an order for ttl, so a caller that
// retries a failed checkout hits the gateway's deduplication instead of creating a
// second payment.
//
// If the store is unavailable it degrades to a fresh timestamp key.
type StoredKeyStrategy struct {
	repo   interfaces.IIdempotencyKeyRepository
	ttl    time.Duration
	now    func() time.Time
	logger zerolog.Logger
}

var _ interfaces.IIdempotencyKeyStrategy = (*StoredKeyStrategy)(nil)

func NewStoredKeyStrategy(repo interfaces.IIdempotencyKeyRepository, ttl time.Duration, now func() time.Time, logger zerolog.Logger) *StoredKeyStrategy {
	if now == nil {
		now = time.Now
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &StoredKeyStrategy{repo: repo, ttl: ttl, now: now, logger: logger}
}

func (s *StoredKeyStrategy) NewKey(ctx context.Context, orderID string) (string, error) {
	candidate := timestampKey(orderID, s.now())
	key, err := s.repo.GetOrCreate(ctx, orderID, candidate, s.ttl)
	if err != nil {
		s.logger.Warn().Err(err).Str("order_id", orderID).Msg("idempotency store unavailable; using a fresh key")
		return candidate, nil
	}
	if key == "" {
		return candidate, nil
	}
	return key, nil
}
