// Package bootstrap wires the payment use case from configuration. Both entry points
// build it the same way so they cannot drift.
package bootstrap

import (
	"context"
	"fmt"

	"storefront_payments/internal/adapter/persistence/repository"
	"storefront_payments/internal/config"
	"storefront_payments/internal/infrastructure/cache"
	"storefront_payments/internal/infrastructure/database"
	"storefront_payments/internal/infrastructure/payments"
	"storefront_payments/internal/usecase"
	"storefront_payments/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// PaymentUseCase builds the use case and returns a cleanup for the connections it opened.
func PaymentUseCase(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*usecase.PaymentUseCase, func(), error) {
	cleanup := func() {}

	gateway := payments.NewYooKassaGateway(NewSender(cfg.Gateway, logger), logger)

	keys, closeStore, err := NewKeyStrategy(ctx, cfg, logger)
	if err != nil {
		return nil, cleanup, err
	}
	if closeStore != nil {
		cleanup = closeStore
	}

	uc := usecase.NewPaymentUseCase(gateway, logger,
		usecase.WithKeyStrategy(keys),
		usecase.WithRetryPolicy(usecase.NewRetryPolicy(cfg.Retry.MaxAttempts, cfg.Retry.Backoff)),
		usecase.WithDeadline(cfg.Gateway.Deadline),
	)
	return uc, cleanup, nil
}

// NewSender picks the real transport or, with PAYMENT_GATEWAY_MOCK, the in-process mock.
func NewSender(cfg config.GatewayConfig, logger zerolog.Logger) payments.Sender {
	if cfg.Mock {
		return payments.NewMockTransport(logger)
	}
	t := payments.NewTransport(payments.WithEndpoint(cfg.APIURL), payments.WithTimeout(cfg.Timeout))
	logger.Info().Str("endpoint", t.Endpoint()).Dur("timeout", cfg.Timeout).Msg("payment gateway configured")
	return t
}

// NewKeyStrategy selects how idempotence keys are minted. The returned func closes the
// backing store, if any.
func NewKeyStrategy(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (interfaces.IIdempotencyKeyStrategy, func(), error) {
	var repo interfaces.IIdempotencyKeyRepository
	var closer func()

	switch cfg.Idempotency.Store {
	case config.StoreRedis:
		client, err := cache.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("idempotency store: %w", err)
		}
		repo = repository.NewIdempotencyKeyRedisRepository(client, "")
		closer = func() { _ = client.Close() }
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, fmt.Errorf("idempotency store: %w", err)
		}
		repo = repository.NewIdempotencyKeyDynamoRepository(ddb, cfg.Idempotency.Table)
	default:
		return usecase.NewTimestampKeyStrategy(nil), nil, nil
	}

	logger.Info().Str("store", cfg.Idempotency.Store).Dur("ttl", cfg.Idempotency.TTL).Msg("stored idempotence keys enabled")
	return usecase.NewStoredKeyStrategy(repo, cfg.Idempotency.TTL, nil, logger.With().Str("component", "payment.idempotency").Logger()), closer, nil
}
