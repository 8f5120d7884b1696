package payments

import (
	"context"
	"net/http"

	"storefront_payments/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MockTransport answers like a sandbox gateway without leaving the process.
// Wired by the entry points when PAYMENT_GATEWAY_MOCK is set, for local storefront development.
type MockTransport struct {
	logger zerolog.Logger
}

func NewMockTransport(logger zerolog.Logger) *MockTransport {
	logger.Warn().Str("component", "payment.gateway").Msg("mock mode enabled; no payment will reach the gateway")
	return &MockTransport{logger: logger}
}

func (m *MockTransport) Send(_ context.Context, req entities.GatewayRequest) (entities.RawResponse, error) {
	id := uuid.NewString()
	confirmation := map[string]any{"type": req.Body.Confirmation.Type}
	if req.Mode == entities.ConfirmationEmbedded {
		confirmation["confirmation_token"] = "ct-" + id
	} else {
		confirmation["confirmation_url"] = "https://yoomoney.ru/checkout/payments/v2/contract?orderId=" + id
	}
	resp := map[string]any{
		"id":           id,
		"status":       "pending",
		"paid":         false,
		"amount":       req.Body.Amount,
		"confirmation": confirmation,
		"description":  req.Body.Description,
		"metadata":     req.Body.Metadata,
		"test":         true,
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return entities.RawResponse{}, &entities.TransportError{Kind: entities.TransportMalformed, Message: "mock response marshal failed", Err: err}
	}
	m.logger.Debug().Str("payment_id", id).Str("order_id", req.OrderID).Msg("mock create success")
	return entities.RawResponse{StatusCode: http.StatusOK, Body: b}, nil
}
