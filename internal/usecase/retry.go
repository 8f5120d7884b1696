package usecase

import (
	"time"

	"storefront_payments/internal/domain/entities"
)

// RetryPolicy decides whether a finished attempt should be repeated. attempt is 1-based.
type RetryPolicy interface {
	Next(attempt int, result entities.GatewayResult) (wait time.Duration, retry bool)
}

// NoRetry is the default: one attempt, the caller owns any retry.
type NoRetry struct{}

func (NoRetry) Next(int, entities.GatewayResult) (time.Duration, bool) { return 0, false }

// TransientRetry repeats only timeouts and connection failures, with linear backoff.
// Business rejections, TLS failures and malformed answers are never retried.
type TransientRetry struct {
	MaxAttempts int
	Backoff     time.Duration
}

func (p TransientRetry) Next(attempt int, result entities.GatewayResult) (time.Duration, bool) {
	if attempt >= p.MaxAttempts {
		return 0, false
	}
	terr, ok := result.(*entities.TransportError)
	if !ok || !terr.Transient() {
		return 0, false
	}
	return time.Duration(attempt) * p.Backoff, true
}

// NewRetryPolicy returns NoRetry unless more than one attempt is configured.
func NewRetryPolicy(maxAttempts int, backoff time.Duration) RetryPolicy {
	if maxAttempts <= 1 {
		return NoRetry{}
	}
	return TransientRetry{MaxAttempts: maxAttempts, Backoff: backoff}
}
