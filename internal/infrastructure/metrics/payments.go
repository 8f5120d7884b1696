package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		paymentsCreatedTotal,
		gatewayRequestDuration,
		validationFailuresTotal,
	)
}

var (
	paymentsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_created_total",
			Help: "Payment creation calls by confirmation mode and outcome (success/business_error/transport_error).",
		},
		[]string{"mode", "outcome"},
	)

	gatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_gateway_request_duration_seconds",
			Help:    "Latency of outbound payment-creation calls, labeled by HTTP status class or transport failure kind.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"outcome"},
	)

	validationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_validation_failures_total",
			Help: "Payment requests rejected before reaching the gateway, by validation kind.",
		},
		[]string{"kind"},
	)
)

func IncPaymentCreated(mode, outcome string) {
	paymentsCreatedTotal.WithLabelValues(norm(mode), norm(outcome)).Inc()
}

func ObserveGatewayRequest(outcome string, d time.Duration) {
	gatewayRequestDuration.WithLabelValues(norm(outcome)).Observe(d.Seconds())
}

func IncValidationFailure(kind string) {
	validationFailuresTotal.WithLabelValues(norm(kind)).Inc()
}
