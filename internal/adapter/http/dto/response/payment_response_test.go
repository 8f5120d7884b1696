package response

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront_payments/internal/domain/entities"
)

func render(t *testing.T, result entities.GatewayResult) map[string]any {
	t.Helper()
	status, body := FromGatewayResult(result)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestFromGatewayResult_Success(t *testing.T) {
	redirect := render(t, &entities.PaymentSuccess{PaymentID: "p-1", Status: "pending", Confirmation: entities.RedirectConfirmation{URL: "https://pay/p-1"}})
	if redirect["paymentUrl"] != "https://pay/p-1" || redirect["paymentId"] != "p-1" {
		t.Fatalf("unexpected redirect body: %v", redirect)
	}
	if _, ok := redirect["error"]; ok {
		t.Fatalf("success must not carry error: %v", redirect)
	}

	embedded := render(t, &entities.PaymentSuccess{PaymentID: "p-2", Status: "pending", Confirmation: entities.EmbeddedConfirmation{Token: "ct-2"}})
	if embedded["confirmationToken"] != "ct-2" || embedded["paymentId"] != "p-2" || embedded["paymentStatus"] != "pending" {
		t.Fatalf("unexpected embedded body: %v", embedded)
	}
}

func TestFromGatewayResult_Failures(t *testing.T) {
	tests := []struct {
		name     string
		result   entities.GatewayResult
		wantType string
		wantErr  string
	}{
		{
			name:     "gateway rejection",
			result:   &entities.BusinessError{HTTPStatus: 402, StatusText: "Payment Required", Description: "insufficient funds", Details: json.RawMessage(`{"code":"x"}`)},
			wantType: TypeGatewayError,
			wantErr:  "insufficient funds",
		},
		{
			name:     "missing url",
			result:   &entities.BusinessError{HTTPStatus: 200, Code: entities.CodeMissingConfirmationURL, Description: "no url"},
			wantType: TypeMissingURL,
			wantErr:  "no url",
		},
		{
			name:     "missing token",
			result:   &entities.BusinessError{HTTPStatus: 200, Code: entities.CodeMissingConfirmationToken, Description: "no token"},
			wantType: TypeMissingToken,
			wantErr:  "no token",
		},
		{name: "timeout", result: &entities.TransportError{Kind: entities.TransportTimeout, Message: "slow"}, wantType: TypeTimeout, wantErr: "slow"},
		{name: "tls", result: &entities.TransportError{Kind: entities.TransportTLS, Message: "bad cert"}, wantType: TypeTLSError, wantErr: "bad cert"},
		{name: "network", result: &entities.TransportError{Kind: entities.TransportNetwork, Message: "refused"}, wantType: TypeNetworkError, wantErr: "refused"},
		{name: "malformed", result: &entities.TransportError{Kind: entities.TransportMalformed, Message: "not json"}, wantType: TypeMalformedResponse, wantErr: "not json"},
		{name: "nil result", result: nil, wantType: TypeInternalError, wantErr: "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := render(t, tt.result)
			if body["type"] != tt.wantType {
				t.Fatalf("expected type %s, got %v", tt.wantType, body["type"])
			}
			if body["error"] != tt.wantErr {
				t.Fatalf("expected error %q, got %v", tt.wantErr, body["error"])
			}
		})
	}

	body := render(t, &entities.BusinessError{HTTPStatus: 402, StatusText: "Payment Required", Description: "insufficient funds", Details: json.RawMessage(`{"code":"x"}`)})
	if body["status"] != float64(402) || body["statusText"] != "Payment Required" {
		t.Fatalf("unexpected status fields: %v", body)
	}
	details, ok := body["details"].(map[string]any)
	if !ok || details["code"] != "x" {
		t.Fatalf("unexpected details: %v", body["details"])
	}
}

func TestFromValidationError(t *testing.T) {
	appErr := FromValidationError(entities.NewValidationError(entities.MissingField, "orderId"))
	if appErr.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", appErr.HTTPStatus)
	}
	body := appErr.ToHTTPError()
	if body.Type != TypeValidationError || body.Field != "orderId" {
		t.Fatalf("unexpected body %+v", body)
	}
}
