package usecase

import (
	"context"
	"errors"
	"time"

	"storefront_payments/internal/domain/entities"
	"storefront_payments/internal/infrastructure/metrics"
	"storefront_payments/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/mock_payment_usecase.go -package=mocks

// IPaymentUseCase is the single payment-creation operation both proxy entry points share.
//
// The returned error is non-nil only for input the gateway must never see
// (*entities.ValidationError) or a miswired use case. Every gateway outcome, including
// failures, comes back as the GatewayResult.
type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, cfg entities.GatewayConfig, intent entities.OrderIntent) (entities.GatewayResult, error)
}

type PaymentUseCase struct {
	gateway  interfaces.IPaymentGateway
	keys     interfaces.IIdempotencyKeyStrategy
	retry    RetryPolicy
	deadline time.Duration
	logger   zerolog.Logger
	sleep    func(ctx context.Context, d time.Duration) error
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

type PaymentUseCaseOption func(*PaymentUseCase)

func WithRetryPolicy(p RetryPolicy) PaymentUseCaseOption {
	return func(u *PaymentUseCase) {
		if p != nil {
			u.retry = p
		}
	}
}

func WithKeyStrategy(s interfaces.IIdempotencyKeyStrategy) PaymentUseCaseOption {
	return func(u *PaymentUseCase) {
		if s != nil {
			u.keys = s
		}
	}
}

// WithDeadline bounds one CreatePayment call, every attempt and backoff included. When it
// expires the last outcome (normally a timeout) is returned.
func WithDeadline(d time.Duration) PaymentUseCaseOption {
	return func(u *PaymentUseCase) {
		if d > 0 {
			u.deadline = d
		}
	}
}

func NewPaymentUseCase(gateway interfaces.IPaymentGateway, logger zerolog.Logger, opts ...PaymentUseCaseOption) *PaymentUseCase {
	u := &PaymentUseCase{
		gateway: gateway,
		keys:    NewTimestampKeyStrategy(nil),
		retry:   NoRetry{},
		logger:  logger.With().Str("component", "payment.usecase").Logger(),
		sleep:   sleepContext,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *PaymentUseCase) CreatePayment(ctx context.Context, cfg entities.GatewayConfig, intent entities.OrderIntent) (entities.GatewayResult, error) {
	if u.gateway == nil {
		u.logger.Error().Msg("gateway not configured")
		return nil, ErrPaymentGatewayNotConfigured
	}
	log := u.logger.With().Str("order_id", intent.OrderID).Str("mode", intent.ConfirmationMode.String()).Logger()
	if u.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.deadline)
		defer cancel()
	}

	req, err := u.gateway.BuildPaymentRequest(cfg, intent)
	if err != nil {
		if ve, ok := entities.AsValidationError(err); ok {
			metrics.IncValidationFailure(string(ve.Kind))
			log.Info().Str("kind", string(ve.Kind)).Str("field", ve.Field).Msg("payment request rejected")
		} else {
			log.Error().Err(err).Msg("payment request build failed")
		}
		return nil, err
	}

	key, err := u.keys.NewKey(ctx, req.OrderID)
	if err != nil {
		log.Error().Err(err).Msg("idempotence key strategy failed")
		return nil, err
	}
	req.IdempotenceKey = key
	log = log.With().Str("idempotence_key", key).Logger()

	var result entities.GatewayResult
	for attempt := 1; ; attempt++ {
		result = u.gateway.SendPaymentRequest(ctx, req)
		wait, again := u.retry.Next(attempt, result)
		if !again {
			break
		}
		log.Warn().Int("attempt", attempt).Dur("wait", wait).Msg("transient gateway failure; retrying with the same key")
		if err := u.sleep(ctx, wait); err != nil {
			log.Warn().Err(err).Msg("retry abandoned")
			break
		}
	}

	metrics.IncPaymentCreated(req.Mode.String(), outcomeOf(result))
	return result, nil
}

func outcomeOf(r entities.GatewayResult) string {
	switch r.(type) {
	case *entities.PaymentSuccess:
		return "success"
	case *entities.BusinessError:
		return "business_error"
	case *entities.TransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
