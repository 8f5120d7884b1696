// Package proxy holds the request flow both deployment adapters share: decode the
// inbound body, run the payment use case, map the outcome onto the response envelope.
package proxy

import (
	"context"
	"net/http"
	"strings"

	"storefront_payments/internal/adapter/http/dto/request"
	"storefront_payments/internal/adapter/http/dto/response"
	"storefront_payments/internal/domain/entities"
	"storefront_payments/internal/infrastructure/logging"
	"storefront_payments/internal/usecase"

	"github.com/rs/zerolog"
)

// MaxBodyBytes bounds the inbound request body for both adapters; a payment request is
// a few hundred bytes.
const MaxBodyBytes = 64 << 10

// CreatePayment returns the HTTP status and JSON body to answer a POST with.
func CreatePayment(ctx context.Context, uc usecase.IPaymentUseCase, raw []byte, logger zerolog.Logger) (int, any) {
	req, err := request.Decode(raw)
	if err != nil {
		logger.Info().Err(err).Msg("create rejected: malformed body")
		appErr := response.MalformedBody(err)
		return appErr.HTTPStatus, appErr.ToHTTPError()
	}

	log := logger.With().Str("order_id", string(req.OrderID)).Bool("test_mode", req.TestMode).Logger()
	if email := strings.TrimSpace(req.Email); email != "" {
		log = log.With().Str("email", logging.Redact(email)).Logger()
	}
	log.Info().Bool("use_widget", req.UseWidget).Msg("create start")

	intent, err := req.ToOrderIntent()
	if err == nil {
		var result entities.GatewayResult
		result, err = uc.CreatePayment(ctx, req.ToGatewayConfig(), intent)
		if err == nil {
			status, body := response.FromGatewayResult(result)
			log.Info().Str("outcome", outcome(body)).Msg("create done")
			return status, body
		}
	}

	if ve, ok := entities.AsValidationError(err); ok {
		log.Info().Str("kind", string(ve.Kind)).Str("field", ve.Field).Msg("create rejected")
		appErr := response.FromValidationError(ve)
		return appErr.HTTPStatus, appErr.ToHTTPError()
	}
	log.Error().Err(err).Msg("create failed")
	return http.StatusOK, response.InternalError()
}

func outcome(body any) string {
	if f, ok := body.(response.PaymentFailureResponse); ok {
		return f.Type
	}
	return "success"
}
