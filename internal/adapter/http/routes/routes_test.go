package routes

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront_payments/internal/adapter/http/handlers"
	"storefront_payments/internal/adapter/http/handlers/mocks"
	"storefront_payments/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cors headers on preflight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := NewRouter(handlers.NewPaymentProxyHandler(mocks.NewMockIPaymentUseCase(ctrl), zerolog.Nop()), zerolog.Nop())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, PathPayments, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("unexpected allow-origin %q", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); got != "POST, OPTIONS" {
			t.Fatalf("unexpected allow-methods %q", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
			t.Fatalf("unexpected allow-headers %q", got)
		}
	})

	t.Run("panic is answered with internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, entities.GatewayConfig, entities.OrderIntent) (entities.GatewayResult, error) {
				panic("boom")
			})
		r := NewRouter(handlers.NewPaymentProxyHandler(uc, zerolog.Nop()), zerolog.Nop())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, PathPayments, bytes.NewBufferString(`{"amount":1}`)))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"type":"INTERNAL_ERROR"`)) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("metrics and ping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := NewRouter(handlers.NewPaymentProxyHandler(mocks.NewMockIPaymentUseCase(ctrl), zerolog.Nop()), zerolog.Nop())

		for _, path := range []string{PathMetrics, PathPing} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("%s: expected 200, got %d", path, w.Code)
			}
		}
	})
}
