// Package edge is the platform edge-function deployment of the payment proxy.
package edge

import (
	"io"
	"net/http"

	"storefront_payments/internal/adapter/http/dto/response"
	"storefront_payments/internal/adapter/proxy"
	"storefront_payments/internal/usecase"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

const PathCreatePayment = "/functions/v1/create-yookassa-payment"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Handler struct {
	usecase usecase.IPaymentUseCase
	logger  zerolog.Logger
}

func NewHandler(uc usecase.IPaymentUseCase, logger zerolog.Logger) *Handler {
	return &Handler{
		usecase: uc,
		logger:  logger.With().Str("component", "payment.handler").Str("adapter", "edge").Logger(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	case http.MethodPost:
		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, proxy.MaxBodyBytes))
		if err != nil {
			h.logger.Info().Err(err).Msg("create rejected: unreadable body")
			appErr := response.MalformedBody(err)
			writeJSON(w, appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		status, body := proxy.CreatePayment(r.Context(), h.usecase, raw, h.logger)
		writeJSON(w, status, body)
	default:
		appErr := response.MethodNotAllowed()
		writeJSON(w, appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
