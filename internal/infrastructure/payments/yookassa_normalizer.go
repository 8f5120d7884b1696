package payments

import (
	"fmt"
	"strings"

	"storefront_payments/internal/domain/entities"
)

type paymentResponse struct {
	ID           string                        `json:"id"`
	Status       string                        `json:"status"`
	Confirmation *entities.GatewayConfirmation `json:"confirmation"`
}

type errorResponse struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Parameter   string `json:"parameter"`
}

// Normalize converts a raw gateway answer into exactly one GatewayResult variant.
//
// A 2xx answer is only a success when its body parses and carries the confirmation
// field the mode depends on.
func Normalize(raw entities.RawResponse, mode entities.ConfirmationMode) entities.GatewayResult {
	if raw.StatusCode < 200 || raw.StatusCode >= 300 {
		return normalizeFailure(raw)
	}

	var out paymentResponse
	if len(strings.TrimSpace(string(raw.Body))) == 0 {
		return &entities.TransportError{Kind: entities.TransportMalformed, Message: fmt.Sprintf("empty body with HTTP %d", raw.StatusCode)}
	}
	if err := json.Unmarshal(raw.Body, &out); err != nil {
		return &entities.TransportError{Kind: entities.TransportMalformed, Message: "gateway response is not valid json", Err: err}
	}

	confirmation, berr := mode.Resolve(out.Confirmation)
	if berr != nil {
		berr.HTTPStatus = raw.StatusCode
		berr.StatusText = raw.StatusText()
		berr.Details = append([]byte(nil), raw.Body...)
		return berr
	}

	return &entities.PaymentSuccess{
		PaymentID:    out.ID,
		Status:       out.Status,
		Confirmation: confirmation,
	}
}

func normalizeFailure(raw entities.RawResponse) *entities.BusinessError {
	berr := &entities.BusinessError{
		HTTPStatus: raw.StatusCode,
		StatusText: raw.StatusText(),
	}
	var body errorResponse
	if len(raw.Body) > 0 && json.Unmarshal(raw.Body, &body) == nil {
		berr.Code = body.Code
		berr.Parameter = body.Parameter
		berr.Description = strings.TrimSpace(body.Description)
		if json.Valid(raw.Body) {
			berr.Details = append([]byte(nil), raw.Body...)
		}
	}
	if berr.Description == "" {
		berr.Description = fmt.Sprintf("payment creation failed: HTTP %d", raw.StatusCode)
	}
	return berr
}
