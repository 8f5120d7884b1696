package entities

import "net/http"

// GatewayRequestBody is the payment-creation body sent to the gateway.
type GatewayRequestBody struct {
	Amount       GatewayAmount       `json:"amount"`
	Confirmation GatewayConfirmation `json:"confirmation"`
	Description  string              `json:"description"`
	Metadata     map[string]string   `json:"metadata,omitempty"`
	Capture      bool                `json:"capture"`
}

type GatewayAmount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// GatewayRequest is a fully built, ready to send payment-creation call.
// IdempotenceKey is stamped by the use case right before sending.
type GatewayRequest struct {
	Body           GatewayRequestBody
	AuthHeader     string
	IdempotenceKey string
	Mode           ConfirmationMode
	OrderID        string
}

// RawResponse is an HTTP answer from the gateway before normalization.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

func (r RawResponse) StatusText() string {
	return http.StatusText(r.StatusCode)
}

// GatewayResult is exactly one of *PaymentSuccess, *BusinessError or *TransportError.
type GatewayResult interface {
	gatewayResult()
}

// PaymentSuccess is a created payment carrying the confirmation data its mode requires.
type PaymentSuccess struct {
	PaymentID    string
	Status       string
	Confirmation Confirmation
}

func (*PaymentSuccess) gatewayResult() {}

// Handle converts a success into what collaborators keep.
func (s *PaymentSuccess) Handle() PaymentHandle {
	h := PaymentHandle{PaymentID: s.PaymentID, Status: s.Status}
	switch c := s.Confirmation.(type) {
	case RedirectConfirmation:
		h.Mode = ConfirmationRedirect
		h.ConfirmationURL = c.URL
	case EmbeddedConfirmation:
		h.Mode = ConfirmationEmbedded
		h.ConfirmationToken = c.Token
	}
	return h
}

// PaymentHandle is handed back to collaborators (checkout page, order service).
type PaymentHandle struct {
	PaymentID         string           `json:"paymentId"`
	Status            string           `json:"paymentStatus,omitempty"`
	Mode              ConfirmationMode `json:"mode"`
	ConfirmationURL   string           `json:"paymentUrl,omitempty"`
	ConfirmationToken string           `json:"confirmationToken,omitempty"`
}
