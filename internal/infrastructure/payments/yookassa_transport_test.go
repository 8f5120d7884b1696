package payments

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront_payments/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() entities.GatewayRequest {
	return entities.GatewayRequest{
		Body: entities.GatewayRequestBody{
			Amount:       entities.GatewayAmount{Value: "10.00", Currency: "RUB"},
			Confirmation: entities.GatewayConfirmation{Type: "redirect", ReturnURL: "https://x/y"},
			Description:  "Order №1",
			Capture:      true,
		},
		AuthHeader:     BasicAuthHeader("1", "test_k"),
		IdempotenceKey: "ORD-1-1000",
		Mode:           entities.ConfirmationRedirect,
		OrderID:        "ORD-1",
	}
}

func TestTransport_Send(t *testing.T) {
	var got *http.Request
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"p-1"}`))
	}))
	defer srv.Close()

	raw, err := NewTransport(WithEndpoint(srv.URL)).Send(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, raw.StatusCode)
	assert.JSONEq(t, `{"id":"p-1"}`, string(raw.Body))

	require.NotNil(t, got)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "ORD-1-1000", got.Header.Get("Idempotence-Key"))
	assert.Equal(t, BasicAuthHeader("1", "test_k"), got.Header.Get("Authorization"))
	assert.JSONEq(t, `{
		"amount":{"value":"10.00","currency":"RUB"},
		"confirmation":{"type":"redirect","return_url":"https://x/y"},
		"description":"Order №1",
		"capture":true
	}`, string(body))
}

func TestTransport_Send_PassesErrorStatusThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"description":"insufficient funds"}`))
	}))
	defer srv.Close()

	raw, err := NewTransport(WithEndpoint(srv.URL)).Send(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, http.StatusPaymentRequired, raw.StatusCode)
}

func TestTransport_Send_Timeout(t *testing.T) {
	aborted := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			close(aborted)
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := NewTransport(WithEndpoint(srv.URL), WithTimeout(50*time.Millisecond)).Send(context.Background(), sampleRequest())
	terr := requireTransportError(t, err)
	assert.Equal(t, entities.TransportTimeout, terr.Kind)
	assert.True(t, terr.Transient())

	select {
	case <-aborted:
	case <-time.After(time.Second):
		t.Fatal("in-flight request was not aborted after the timeout")
	}
}

func TestTransport_Send_UntrustedCertificate(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := NewTransport(WithEndpoint(srv.URL)).Send(context.Background(), sampleRequest())
	terr := requireTransportError(t, err)
	assert.Equal(t, entities.TransportTLS, terr.Kind)
	assert.False(t, terr.Transient())
}

func TestTransport_Send_TrustedRootCAs(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	pool := srv.Client().Transport.(*http.Transport).TLSClientConfig.RootCAs
	raw, err := NewTransport(WithEndpoint(srv.URL), WithRootCAs(pool)).Send(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, raw.StatusCode)
}

func TestTransport_Send_ConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = NewTransport(WithEndpoint("http://"+addr)).Send(context.Background(), sampleRequest())
	terr := requireTransportError(t, err)
	assert.Equal(t, entities.TransportNetwork, terr.Kind)
}

func TestNewTransport_Defaults(t *testing.T) {
	tr := NewTransport()
	assert.Equal(t, DefaultEndpoint, tr.Endpoint())
	assert.Equal(t, DefaultTimeout, tr.timeout)
	assert.False(t, tr.tlsConfig().InsecureSkipVerify)
}

func requireTransportError(t *testing.T, err error) *entities.TransportError {
	t.Helper()
	require.Error(t, err)
	terr, ok := err.(*entities.TransportError)
	require.True(t, ok, "expected *entities.TransportError, got %T", err)
	return terr
}
