package request

import (
	"errors"
	"testing"

	"storefront_payments/internal/domain/entities"
)

func TestDecode(t *testing.T) {
	t.Run("numeric amount and order id", func(t *testing.T) {
		req, err := Decode([]byte(`{"shopId":"1","secretKey":"test_k","amount":450.5,"orderId":1042,"returnUrl":"https://x/y","useWidget":true,"testMode":true}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		intent, err := req.ToOrderIntent()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.OrderID != "1042" {
			t.Fatalf("expected order id 1042, got %q", intent.OrderID)
		}
		if intent.Amount.String() != "450.5" {
			t.Fatalf("unexpected amount %s", intent.Amount)
		}
		if intent.ConfirmationMode != entities.ConfirmationEmbedded {
			t.Fatalf("expected embedded mode, got %s", intent.ConfirmationMode)
		}
		cfg := req.ToGatewayConfig()
		if cfg.ShopID != "1" || cfg.SecretKey != "test_k" || !cfg.TestMode {
			t.Fatalf("unexpected config %+v", cfg)
		}
	})

	t.Run("string amount defaults to redirect", func(t *testing.T) {
		req, err := Decode([]byte(`{"amount":"10","orderId":"ORD-1","orderNumber":"7"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		intent, err := req.ToOrderIntent()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.Amount.StringFixed(2) != "10.00" || intent.OrderNumber != "7" {
			t.Fatalf("unexpected intent %+v", intent)
		}
		if intent.ConfirmationMode != entities.ConfirmationRedirect {
			t.Fatalf("expected redirect mode, got %s", intent.ConfirmationMode)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req, err := Decode(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		intent, err := req.ToOrderIntent()
		if err != nil || !intent.Amount.IsZero() {
			t.Fatalf("expected zero intent, got %+v err=%v", intent, err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Decode([]byte(`{`))
		if !errors.Is(err, ErrMalformedBody) {
			t.Fatalf("expected ErrMalformedBody, got %v", err)
		}
	})

	t.Run("object order id is rejected", func(t *testing.T) {
		_, err := Decode([]byte(`{"orderId":{"a":1}}`))
		if !errors.Is(err, ErrMalformedBody) {
			t.Fatalf("expected ErrMalformedBody, got %v", err)
		}
	})

	t.Run("non numeric amount", func(t *testing.T) {
		req, err := Decode([]byte(`{"amount":"abc"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := req.ToOrderIntent(); !errors.Is(err, entities.InvalidAmount) {
			t.Fatalf("expected InvalidAmount, got %v", err)
		}
	})

	t.Run("oversized amount", func(t *testing.T) {
		for _, body := range []string{
			`{"amount":"1e1000000"}`,
			`{"amount":1e1000000}`,
			`{"amount":"1e-1000000"}`,
			`{"amount":1000000000.01}`,
		} {
			req, err := Decode([]byte(body))
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", body, err)
			}
			if _, err := req.ToOrderIntent(); !errors.Is(err, entities.InvalidAmount) {
				t.Fatalf("expected InvalidAmount for %s, got %v", body, err)
			}
		}
	})

	t.Run("explicit confirmation mode", func(t *testing.T) {
		req, err := Decode([]byte(`{"amount":1,"useWidget":false,"confirmationMode":"Embedded"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		intent, err := req.ToOrderIntent()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.ConfirmationMode != entities.ConfirmationEmbedded {
			t.Fatalf("expected embedded, got %s", intent.ConfirmationMode)
		}

		req, _ = Decode([]byte(`{"amount":1,"useWidget":true,"confirmationMode":"popup"}`))
		_, err = req.ToOrderIntent()
		if !errors.Is(err, entities.InvalidMode) {
			t.Fatalf("expected InvalidMode, got %v", err)
		}
		if ve, ok := entities.AsValidationError(err); !ok || ve.Field != "confirmationMode" {
			t.Fatalf("expected confirmationMode field, got %v", err)
		}
	})
}
