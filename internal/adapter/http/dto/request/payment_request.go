package request

import (
	stdjson "encoding/json"
	"errors"
	"fmt"
	"strings"

	"storefront_payments/internal/domain/entities"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrMalformedBody is returned by Decode when the body is not a JSON object.
var ErrMalformedBody = errors.New("request body is not valid json")

// PaymentCreateRequest is the body both proxy entry points accept.
//
// amount may be a JSON number or a numeric string. email is accepted for compatibility
// with storefront callers and is only ever logged redacted.
type PaymentCreateRequest struct {
	ShopID      string             `json:"shopId" example:"123456"`
	SecretKey   string             `json:"secretKey" example:"test_XXXXXXXX"`
	Amount      stdjson.RawMessage `json:"amount" swaggertype:"number" example:"450.5"`
	OrderID     FlexString         `json:"orderId" swaggertype:"string" example:"ORD-1"`
	OrderNumber FlexString         `json:"orderNumber,omitempty" swaggertype:"string" example:"1042"`
	Description string             `json:"description,omitempty"`
	ReturnURL   string             `json:"returnUrl" example:"https://shop.example/checkout/done"`
	TestMode    bool               `json:"testMode,omitempty"`
	UseWidget   bool               `json:"useWidget,omitempty"`
	Email       string             `json:"email,omitempty"`

	// ConfirmationMode, when set, overrides UseWidget.
	ConfirmationMode string `json:"confirmationMode,omitempty" enums:"redirect,embedded" example:"redirect"`
}

// Decode parses a raw request body. An empty body decodes to an empty request so
// the missing fields are reported by name.
func Decode(raw []byte) (PaymentCreateRequest, error) {
	var req PaymentCreateRequest
	if len(strings.TrimSpace(string(raw))) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return PaymentCreateRequest{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return req, nil
}

func (r PaymentCreateRequest) ToGatewayConfig() entities.GatewayConfig {
	return entities.GatewayConfig{
		ShopID:    r.ShopID,
		SecretKey: r.SecretKey,
		TestMode:  r.TestMode,
	}
}

func (r PaymentCreateRequest) ToOrderIntent() (entities.OrderIntent, error) {
	amount, err := entities.ParseAmount(r.Amount)
	if err != nil {
		return entities.OrderIntent{}, err
	}
	mode := entities.ModeFromWidgetFlag(r.UseWidget)
	if strings.TrimSpace(r.ConfirmationMode) != "" {
		if mode, err = entities.ParseConfirmationMode(r.ConfirmationMode); err != nil {
			return entities.OrderIntent{}, err
		}
	}
	return entities.OrderIntent{
		OrderID:          string(r.OrderID),
		OrderNumber:      string(r.OrderNumber),
		Amount:           amount,
		Description:      r.Description,
		ReturnURL:        r.ReturnURL,
		ConfirmationMode: mode,
	}, nil
}

// FlexString accepts a JSON string or number. Storefronts send numeric order ids.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	v := strings.TrimSpace(string(b))
	if v == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(v, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var n stdjson.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", v)
	}
	*s = FlexString(n.String())
	return nil
}
