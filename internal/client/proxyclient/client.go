package proxyclient

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront_payments/internal/domain/entities"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const DefaultPath = "/api/yookassa"

// DefaultTimeout outlasts the proxy's own payment deadline, so the proxy's envelope
// arrives before the client gives up.
const DefaultTimeout = 60 * time.Second

var (
	ErrCredentialsNotConfigured = errors.New("yookassa credentials are not configured")
	ErrEmptyResponse            = errors.New("empty response from payment proxy")
)

// ProxyError is a failure reported by the proxy in its response body, or a non-2xx proxy status.
type ProxyError struct {
	Message     string
	Status      int
	StatusText  string
	Details     stdjson.RawMessage
	Type        string
	ProxyStatus int
}

func (e *ProxyError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("payment proxy: %s (%s)", e.Message, e.Type)
	}
	return "payment proxy: " + e.Message
}

// CreateParams is the order side of a payment-creation call.
type CreateParams struct {
	Amount      decimal.Decimal
	OrderID     string
	OrderNumber string
	Description string
	ReturnURL   string
	Email       string
	UseWidget   bool
}

// Client calls one of the proxy entry points on behalf of the storefront.
type Client struct {
	baseURL string
	path    string
	http    *http.Client
	logger  zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithPath selects the entry point, e.g. the edge function path instead of DefaultPath.
func WithPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.path = path
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		path:    DefaultPath,
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().Str("component", "payment.proxyclient").Logger()
	return c
}

type createBody struct {
	ShopID      string          `json:"shopId"`
	SecretKey   string          `json:"secretKey"`
	Amount      decimal.Decimal `json:"amount"`
	OrderID     string          `json:"orderId"`
	OrderNumber string          `json:"orderNumber,omitempty"`
	Description string          `json:"description,omitempty"`
	ReturnURL   string          `json:"returnUrl"`
	TestMode    bool            `json:"testMode"`
	UseWidget   bool            `json:"useWidget"`
	Email       string          `json:"email,omitempty"`
}

type proxyResponse struct {
	PaymentURL        string             `json:"paymentUrl"`
	PaymentID         string             `json:"paymentId"`
	ConfirmationToken string             `json:"confirmationToken"`
	PaymentStatus     string             `json:"paymentStatus"`
	Error             string             `json:"error"`
	Status            int                `json:"status"`
	StatusText        string             `json:"statusText"`
	Details           stdjson.RawMessage `json:"details"`
	Type              string             `json:"type"`
}

// CreatePayment asks the proxy to create a payment with the credentials of gw.
//
// In test mode only gw.TestSecretKey is sent; in live mode only gw.SecretKey.
func (c *Client) CreatePayment(ctx context.Context, gw entities.GatewayConfig, p CreateParams) (entities.PaymentHandle, error) {
	shopID := gw.CleanShopID()
	secret := strings.TrimSpace(gw.SecretKey)
	if gw.TestMode {
		secret = strings.TrimSpace(gw.TestSecretKey)
	}
	if shopID == "" || secret == "" {
		return entities.PaymentHandle{}, ErrCredentialsNotConfigured
	}

	payload, err := json.Marshal(createBody{
		ShopID:      shopID,
		SecretKey:   secret,
		Amount:      p.Amount,
		OrderID:     p.OrderID,
		OrderNumber: p.OrderNumber,
		Description: p.Description,
		ReturnURL:   p.ReturnURL,
		TestMode:    gw.TestMode,
		UseWidget:   p.UseWidget,
		Email:       p.Email,
	})
	if err != nil {
		return entities.PaymentHandle{}, fmt.Errorf("encode proxy request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.path, bytes.NewReader(payload))
	if err != nil {
		return entities.PaymentHandle{}, fmt.Errorf("build proxy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("order_id", p.OrderID).Msg("proxy call failed")
		return entities.PaymentHandle{}, fmt.Errorf("call payment proxy: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return entities.PaymentHandle{}, fmt.Errorf("read proxy response: %w", err)
	}

	var out proxyResponse
	decodeErr := json.Unmarshal(body, &out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := out.Error
		if decodeErr != nil || msg == "" {
			msg = fmt.Sprintf("proxy returned status %d", resp.StatusCode)
		}
		c.logger.Warn().Int("proxy_status", resp.StatusCode).Str("order_id", p.OrderID).Msg("proxy rejected request")
		return entities.PaymentHandle{}, &ProxyError{Message: msg, Type: out.Type, ProxyStatus: resp.StatusCode}
	}
	if len(bytes.TrimSpace(body)) == 0 || string(bytes.TrimSpace(body)) == "null" {
		return entities.PaymentHandle{}, ErrEmptyResponse
	}
	if decodeErr != nil {
		return entities.PaymentHandle{}, fmt.Errorf("decode proxy response: %w", decodeErr)
	}
	if out.Error != "" {
		c.logger.Warn().Str("type", out.Type).Int("status", out.Status).Str("order_id", p.OrderID).Msg("payment not created")
		return entities.PaymentHandle{}, &ProxyError{
			Message:     out.Error,
			Status:      out.Status,
			StatusText:  out.StatusText,
			Details:     out.Details,
			Type:        out.Type,
			ProxyStatus: resp.StatusCode,
		}
	}

	h := entities.PaymentHandle{
		PaymentID:         out.PaymentID,
		Status:            out.PaymentStatus,
		ConfirmationURL:   out.PaymentURL,
		ConfirmationToken: out.ConfirmationToken,
		Mode:              entities.ConfirmationRedirect,
	}
	if out.ConfirmationToken != "" {
		h.Mode = entities.ConfirmationEmbedded
	}
	c.logger.Info().Str("payment_id", h.PaymentID).Str("mode", h.Mode.String()).Str("order_id", p.OrderID).Msg("payment created")
	return h, nil
}
