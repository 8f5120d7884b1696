package interfaces

import (
	"context"

	"storefront_payments/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway.go -package=mocks

// IPaymentGateway abstracts the external payment processor (YooKassa).
//
// BuildPaymentRequest is pure and rejects malformed input before any network call;
// SendPaymentRequest performs one outbound call and always returns exactly one
// GatewayResult variant, never a Go error.
type IPaymentGateway interface {
	BuildPaymentRequest(cfg entities.GatewayConfig, intent entities.OrderIntent) (entities.GatewayRequest, error)
	SendPaymentRequest(ctx context.Context, req entities.GatewayRequest) entities.GatewayResult
}
