package edge

import (
	"fmt"
	"net/http"
	"time"

	"storefront_payments/internal/adapter/http/dto/response"
	"storefront_payments/internal/config"
	"storefront_payments/internal/infrastructure/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter mounts the edge function and the metrics endpoint.
func NewRouter(h *Handler, logger zerolog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(recoverer(logger))

	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.With(cors).Handle(PathCreatePayment, h)
	return r
}

// NewServer returns an http.Server whose write timeout outlasts the longest payment
// call GATEWAY_DEADLINE allows.
func NewServer(port int, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      config.MaxGatewayDeadline + 10*time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		next.ServeHTTP(w, r)
	})
}

// recoverer answers a panic with the 200 INTERNAL_ERROR envelope instead of chi's bare 500.
func recoverer(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error().
						Interface("panic", rec).
						Str("request_id", middleware.GetReqID(r.Context())).
						Str("path", r.URL.Path).
						Msg("recovered from panic")
					writeJSON(w, http.StatusOK, response.InternalError())
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
