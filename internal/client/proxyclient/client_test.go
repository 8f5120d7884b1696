package proxyclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"storefront_payments/internal/adapter/edge"
	"storefront_payments/internal/config"
	"storefront_payments/internal/domain/entities"
	"storefront_payments/internal/infrastructure/payments"
	"storefront_payments/internal/usecase"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatewayConfig(testMode bool) entities.GatewayConfig {
	return entities.GatewayConfig{ShopID: "123456", SecretKey: "live_key", TestSecretKey: "test_key", TestMode: testMode}
}

func params() CreateParams {
	return CreateParams{
		Amount:    decimal.RequireFromString("450.5"),
		OrderID:   "ORD-1",
		ReturnURL: "https://shop.example/done",
		Email:     "buyer@example.com",
	}
}

func TestClient_CreatePayment_SendsActiveKey(t *testing.T) {
	tests := []struct {
		name     string
		testMode bool
		wantKey  string
	}{
		{name: "test mode", testMode: true, wantKey: "test_key"},
		{name: "live mode", testMode: false, wantKey: "live_key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]any
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, DefaultPath, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				b, _ := io.ReadAll(r.Body)
				require.NoError(t, json.Unmarshal(b, &got))
				_, _ = w.Write([]byte(`{"paymentUrl":"https://pay/1","paymentId":"p-1"}`))
			}))
			defer srv.Close()

			h, err := New(srv.URL).CreatePayment(context.Background(), gatewayConfig(tt.testMode), params())
			require.NoError(t, err)
			assert.Equal(t, entities.PaymentHandle{PaymentID: "p-1", Mode: entities.ConfirmationRedirect, ConfirmationURL: "https://pay/1"}, h)

			assert.Equal(t, tt.wantKey, got["secretKey"])
			assert.Equal(t, "123456", got["shopId"])
			assert.Equal(t, "450.5", got["amount"])
			assert.Equal(t, tt.testMode, got["testMode"])
			assert.Equal(t, false, got["useWidget"])
		})
	}
}

func TestDefaultTimeout_OutlastsPaymentDeadline(t *testing.T) {
	assert.Greater(t, DefaultTimeout, config.MaxGatewayDeadline)
}

func TestClient_CreatePayment_MissingCredentials(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls.Add(1) }))
	defer srv.Close()
	c := New(srv.URL)

	cases := []entities.GatewayConfig{
		{SecretKey: "live_key"},
		{ShopID: "123456", SecretKey: "live_key", TestMode: true},
		{ShopID: "123456", TestSecretKey: "test_key"},
		{ShopID: "123456", SecretKey: "   "},
	}
	for _, gw := range cases {
		_, err := c.CreatePayment(context.Background(), gw, params())
		assert.ErrorIs(t, err, ErrCredentialsNotConfigured)
	}
	assert.Zero(t, calls.Load())
}

func TestClient_CreatePayment_Embedded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"confirmationToken":"ct-1","paymentId":"p-1","paymentStatus":"pending"}`))
	}))
	defer srv.Close()

	p := params()
	p.UseWidget = true
	h, err := New(srv.URL).CreatePayment(context.Background(), gatewayConfig(true), p)
	require.NoError(t, err)
	assert.Equal(t, entities.ConfirmationEmbedded, h.Mode)
	assert.Equal(t, "ct-1", h.ConfirmationToken)
	assert.Equal(t, "pending", h.Status)
}

func TestClient_CreatePayment_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "gateway failure in body",
			status: http.StatusOK,
			body:   `{"error":"Not enough funds","status":402,"statusText":"Payment Required","details":{"code":"insufficient_funds"},"type":"YOOKASSA_API_ERROR"}`,
			check: func(t *testing.T, err error) {
				var perr *ProxyError
				require.True(t, errors.As(err, &perr))
				assert.Equal(t, "Not enough funds", perr.Message)
				assert.Equal(t, 402, perr.Status)
				assert.Equal(t, "Payment Required", perr.StatusText)
				assert.JSONEq(t, `{"code":"insufficient_funds"}`, string(perr.Details))
				assert.Equal(t, "YOOKASSA_API_ERROR", perr.Type)
				assert.Equal(t, http.StatusOK, perr.ProxyStatus)
			},
		},
		{
			name:   "non-2xx with error body",
			status: http.StatusBadRequest,
			body:   `{"error":"Missing required field: orderId","type":"VALIDATION_ERROR","field":"orderId"}`,
			check: func(t *testing.T, err error) {
				var perr *ProxyError
				require.True(t, errors.As(err, &perr))
				assert.Equal(t, "Missing required field: orderId", perr.Message)
				assert.Equal(t, http.StatusBadRequest, perr.ProxyStatus)
			},
		},
		{
			name:   "non-2xx without body",
			status: http.StatusBadGateway,
			body:   `<html>bad gateway</html>`,
			check: func(t *testing.T, err error) {
				var perr *ProxyError
				require.True(t, errors.As(err, &perr))
				assert.Equal(t, "proxy returned status 502", perr.Message)
			},
		},
		{
			name:   "empty body",
			status: http.StatusOK,
			body:   ``,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmptyResponse)
			},
		},
		{
			name:   "garbage body",
			status: http.StatusOK,
			body:   `not json`,
			check: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "decode proxy response")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).CreatePayment(context.Background(), gatewayConfig(false), params())
			tt.check(t, err)
		})
	}
}

func TestClient_CreatePayment_ThroughEdgeProxy(t *testing.T) {
	logger := zerolog.Nop()
	gateway := payments.NewYooKassaGateway(payments.NewMockTransport(logger), logger)
	uc := usecase.NewPaymentUseCase(gateway, logger)
	srv := httptest.NewServer(edge.NewRouter(edge.NewHandler(uc, logger), logger))
	defer srv.Close()

	c := New(srv.URL, WithPath(edge.PathCreatePayment))

	h, err := c.CreatePayment(context.Background(), gatewayConfig(true), params())
	require.NoError(t, err)
	assert.Equal(t, entities.ConfirmationRedirect, h.Mode)
	assert.NotEmpty(t, h.PaymentID)
	assert.Contains(t, h.ConfirmationURL, h.PaymentID)

	p := params()
	p.OrderID = ""
	_, err = c.CreatePayment(context.Background(), gatewayConfig(true), p)
	var perr *ProxyError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, http.StatusBadRequest, perr.ProxyStatus)
}
