package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -source=idempotency_key_repository_interface.go -destination=mocks/mock_idempotency_key_repository.go -package=mocks

// IIdempotencyKeyRepository remembers the idempotence key issued for an order.
//
// GetOrCreate stores candidate for orderID when nothing is stored (or the stored key
// expired) and returns the key that is stored after the call: either candidate or the
// key an earlier attempt stored.
type IIdempotencyKeyRepository interface {
	GetOrCreate(ctx context.Context, orderID, candidate string, ttl time.Duration) (string, error)
}

// IIdempotencyKeyStrategy mints the Idempotence-Key header value for one call.
type IIdempotencyKeyStrategy interface {
	NewKey(ctx context.Context, orderID string) (string, error)
}
