package payments

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"storefront_payments/internal/domain/entities"

	jsoniter "github.com/json-iterator/go"
)

const (
	DefaultEndpoint = "https://api.yookassa.ru/v3/payments"
	DefaultTimeout  = 30 * time.Second

	// Gateway error bodies are small; anything beyond this is not worth buffering.
	maxResponseBytes = 1 << 20
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Transport performs the authenticated HTTPS call to the gateway.
//
// TLS verification is always on and cannot be skipped; WithRootCAs
// only replaces the trust anchors.
type Transport struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
}

type TransportOption func(*Transport)

func WithEndpoint(endpoint string) TransportOption {
	return func(t *Transport) {
		if endpoint != "" {
			t.endpoint = endpoint
		}
	}
}

func WithTimeout(d time.Duration) TransportOption {
	return func(t *Transport) {
		if d > 0 {
			t.timeout = d
		}
	}
}

func WithRootCAs(pool *x509.CertPool) TransportOption {
	return func(t *Transport) {
		t.tlsConfig().RootCAs = pool
	}
}

func NewTransport(opts ...TransportOption) *Transport {
	t := &Transport{
		endpoint: DefaultEndpoint,
		timeout:  DefaultTimeout,
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
				TLSHandshakeTimeout: 10 * time.Second,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Transport) tlsConfig() *tls.Config {
	return t.client.Transport.(*http.Transport).TLSClientConfig
}

func (t *Transport) Endpoint() string { return t.endpoint }

// Send performs exactly one outbound call. It never retries. Any returned error is a
// *entities.TransportError.
func (t *Transport) Send(ctx context.Context, req entities.GatewayRequest) (entities.RawResponse, error) {
	payload, err := json.Marshal(req.Body)
	if err != nil {
		return entities.RawResponse{}, &entities.TransportError{Kind: entities.TransportMalformed, Message: "encode request body", Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return entities.RawResponse{}, &entities.TransportError{Kind: entities.TransportNetwork, Message: "build request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotence-Key", req.IdempotenceKey)
	httpReq.Header.Set("Authorization", req.AuthHeader)

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return entities.RawResponse{}, classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return entities.RawResponse{}, classifyTransportError(ctx, err)
	}
	return entities.RawResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

func classifyTransportError(ctx context.Context, err error) *entities.TransportError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &entities.TransportError{Kind: entities.TransportTimeout, Message: "gateway did not answer in time", Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &entities.TransportError{Kind: entities.TransportTimeout, Message: "gateway did not answer in time", Err: err}
	}
	if isTLSError(err) {
		return &entities.TransportError{Kind: entities.TransportTLS, Message: fmt.Sprintf("tls verification failed: %v", err), Err: err}
	}
	return &entities.TransportError{Kind: entities.TransportNetwork, Message: err.Error(), Err: err}
}

func isTLSError(err error) bool {
	var (
		verifyErr    *tls.CertificateVerificationError
		unknownAuth  x509.UnknownAuthorityError
		hostnameErr  x509.HostnameError
		certInvalid  x509.CertificateInvalidError
		recordHdrErr tls.RecordHeaderError
	)
	return errors.As(err, &verifyErr) ||
		errors.As(err, &unknownAuth) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &certInvalid) ||
		errors.As(err, &recordHdrErr)
}
