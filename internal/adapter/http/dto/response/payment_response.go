package response

import (
	"encoding/json"
	"net/http"

	"storefront_payments/internal/domain/entities"
	"storefront_payments/pkg"
)

// Failure types carried in PaymentFailureResponse.Type.
const (
	TypeGatewayError      = "YOOKASSA_API_ERROR"
	TypeMissingURL        = "MISSING_URL"
	TypeMissingToken      = "MISSING_TOKEN"
	TypeTimeout           = "TIMEOUT"
	TypeTLSError          = "TLS_ERROR"
	TypeNetworkError      = "NETWORK_ERROR"
	TypeMalformedResponse = "MALFORMED_RESPONSE"
	TypeInternalError     = "INTERNAL_ERROR"
	TypeValidationError   = "VALIDATION_ERROR"
)

// RedirectPaymentResponse is returned when the buyer is sent to the hosted page.
type RedirectPaymentResponse struct {
	PaymentURL string `json:"paymentUrl" example:"https://yoomoney.ru/checkout/payments/v2/contract?orderId=2d5b"`
	PaymentID  string `json:"paymentId" example:"2d5b"`
}

// EmbeddedPaymentResponse is returned when the checkout widget renders in place.
type EmbeddedPaymentResponse struct {
	ConfirmationToken string `json:"confirmationToken" example:"ct-2d5b"`
	PaymentID         string `json:"paymentId" example:"2d5b"`
	PaymentStatus     string `json:"paymentStatus" example:"pending"`
}

// PaymentFailureResponse is returned, with HTTP 200, for every gateway-side failure.
type PaymentFailureResponse struct {
	Error      string          `json:"error"`
	Status     int             `json:"status,omitempty"`
	StatusText string          `json:"statusText,omitempty"`
	Details    json.RawMessage `json:"details,omitempty" swaggertype:"object"`
	Type       string          `json:"type"`
}

// FromGatewayResult maps a gateway outcome onto the envelope both entry points answer
// with. The HTTP status is always 200: the storefront inspects the body.
func FromGatewayResult(result entities.GatewayResult) (int, any) {
	switch r := result.(type) {
	case *entities.PaymentSuccess:
		switch c := r.Confirmation.(type) {
		case entities.EmbeddedConfirmation:
			return http.StatusOK, EmbeddedPaymentResponse{ConfirmationToken: c.Token, PaymentID: r.PaymentID, PaymentStatus: r.Status}
		case entities.RedirectConfirmation:
			return http.StatusOK, RedirectPaymentResponse{PaymentURL: c.URL, PaymentID: r.PaymentID}
		}
	case *entities.BusinessError:
		return http.StatusOK, PaymentFailureResponse{
			Error:      r.Description,
			Status:     r.HTTPStatus,
			StatusText: r.StatusText,
			Details:    r.Details,
			Type:       businessErrorType(r),
		}
	case *entities.TransportError:
		return http.StatusOK, PaymentFailureResponse{
			Error: r.Message,
			Type:  transportErrorType(r.Kind),
		}
	}
	return http.StatusOK, InternalError()
}

func businessErrorType(e *entities.BusinessError) string {
	switch e.Code {
	case entities.CodeMissingConfirmationURL:
		return TypeMissingURL
	case entities.CodeMissingConfirmationToken:
		return TypeMissingToken
	}
	return TypeGatewayError
}

func transportErrorType(k entities.TransportErrorKind) string {
	switch k {
	case entities.TransportTimeout:
		return TypeTimeout
	case entities.TransportTLS:
		return TypeTLSError
	case entities.TransportMalformed:
		return TypeMalformedResponse
	}
	return TypeNetworkError
}

// InternalError is answered after a recovered panic or a miswired use case.
func InternalError() PaymentFailureResponse {
	return PaymentFailureResponse{Error: "internal error", Type: TypeInternalError}
}

// FromValidationError renders rejected input as a 400.
func FromValidationError(ve *entities.ValidationError) *pkg.AppError {
	return pkg.NewDomainError(TypeValidationError, ve.Error(), ve, http.StatusBadRequest).WithField(ve.Field)
}

func MalformedBody(err error) *pkg.AppError {
	return pkg.NewDomainError(TypeValidationError, "request body is not valid json", err, http.StatusBadRequest)
}

// MethodNotAllowed renders as {"error":"Method Not Allowed"} with no type.
func MethodNotAllowed() *pkg.AppError {
	return pkg.NewDomainErrorSimple("", "Method Not Allowed", http.StatusMethodNotAllowed)
}
