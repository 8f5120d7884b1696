package payments

import (
	"context"
	"errors"
	"time"

	"storefront_payments/internal/domain/entities"
	"storefront_payments/internal/infrastructure/metrics"
	"storefront_payments/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// Sender is the outbound half of the gateway; *Transport and *MockTransport implement it.
type Sender interface {
	Send(ctx context.Context, req entities.GatewayRequest) (entities.RawResponse, error)
}

// YooKassaGateway composes request building, transport and normalization.
type YooKassaGateway struct {
	sender Sender
	logger zerolog.Logger
}

var _ interfaces.IPaymentGateway = (*YooKassaGateway)(nil)

func NewYooKassaGateway(sender Sender, logger zerolog.Logger) *YooKassaGateway {
	return &YooKassaGateway{
		sender: sender,
		logger: logger.With().Str("component", "payment.gateway").Logger(),
	}
}

func (g *YooKassaGateway) BuildPaymentRequest(cfg entities.GatewayConfig, intent entities.OrderIntent) (entities.GatewayRequest, error) {
	LogCredentialDiagnostics(g.logger, cfg)
	return BuildPaymentRequest(cfg, intent)
}

func (g *YooKassaGateway) SendPaymentRequest(ctx context.Context, req entities.GatewayRequest) entities.GatewayResult {
	log := g.logger.With().
		Str("order_id", req.OrderID).
		Str("idempotence_key", req.IdempotenceKey).
		Str("mode", req.Mode.String()).
		Logger()
	log.Debug().Str("amount", req.Body.Amount.Value).Msg("create payment start")

	start := time.Now()
	raw, err := g.sender.Send(ctx, req)
	if err != nil {
		var terr *entities.TransportError
		if !errors.As(err, &terr) {
			terr = &entities.TransportError{Kind: entities.TransportNetwork, Message: err.Error(), Err: err}
		}
		metrics.ObserveGatewayRequest(string(terr.Kind), time.Since(start))
		log.Error().Err(terr.Err).Str("kind", string(terr.Kind)).Msg("create payment transport failure")
		return terr
	}
	metrics.ObserveGatewayRequest(outcomeForStatus(raw.StatusCode), time.Since(start))

	result := Normalize(raw, req.Mode)
	switch r := result.(type) {
	case *entities.PaymentSuccess:
		log.Info().Str("payment_id", r.PaymentID).Str("status", r.Status).Msg("create payment success")
	case *entities.BusinessError:
		log.Warn().Int("http_status", r.HTTPStatus).Str("code", r.Code).Str("description", r.Description).Msg("create payment rejected")
	case *entities.TransportError:
		log.Error().Err(r.Err).Str("kind", string(r.Kind)).Int("http_status", raw.StatusCode).Msg("create payment malformed response")
	}
	return result
}

func outcomeForStatus(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "other"
	}
}
