package payments

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"storefront_payments/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// requiredFields holds the trimmed values checked for presence before anything is built.
type requiredFields struct {
	ShopID    string `validate:"required"`
	SecretKey string `validate:"required"`
	OrderID   string `validate:"required"`
	ReturnURL string `validate:"required"`
}

var requiredFieldNames = map[string]string{
	"ShopID":    "shopId",
	"SecretKey": "secretKey",
	"OrderID":   "orderId",
	"ReturnURL": "returnUrl",
}

// BuildPaymentRequest turns an order intent and merchant credentials into a gateway
// payment-creation request. It performs no I/O and never mints the idempotence key.
func BuildPaymentRequest(cfg entities.GatewayConfig, intent entities.OrderIntent) (entities.GatewayRequest, error) {
	in := requiredFields{
		ShopID:    cfg.CleanShopID(),
		SecretKey: cfg.ActiveSecretKey(),
		OrderID:   strings.TrimSpace(intent.OrderID),
		ReturnURL: strings.TrimSpace(intent.ReturnURL),
	}
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return entities.GatewayRequest{}, entities.NewValidationError(entities.MissingField, requiredFieldNames[verrs[0].StructField()])
		}
		return entities.GatewayRequest{}, fmt.Errorf("validate payment request: %w", err)
	}
	if intent.Amount.IsZero() {
		return entities.GatewayRequest{}, entities.NewValidationError(entities.MissingField, "amount")
	}

	value, err := FormatAmount(intent.Amount)
	if err != nil {
		return entities.GatewayRequest{}, err
	}
	if !isAbsoluteHTTPURL(in.ReturnURL) {
		return entities.GatewayRequest{}, entities.NewValidationError(entities.InvalidReturnURL, "returnUrl")
	}

	mode := intent.ConfirmationMode
	if !mode.Valid() {
		mode = entities.ConfirmationRedirect
	}

	orderNumber := strings.TrimSpace(intent.OrderNumber)
	if orderNumber == "" {
		orderNumber = in.OrderID
	}
	description := strings.TrimSpace(intent.Description)
	if description == "" {
		description = DefaultDescription(orderNumber)
	}

	return entities.GatewayRequest{
		Body: entities.GatewayRequestBody{
			Amount: entities.GatewayAmount{Value: value, Currency: entities.Currency},
			Confirmation: entities.GatewayConfirmation{
				Type:      mode.RequestType(),
				ReturnURL: in.ReturnURL,
			},
			Description: description,
			Metadata: map[string]string{
				"orderId":     in.OrderID,
				"orderNumber": orderNumber,
				"testMode":    strconv.FormatBool(cfg.TestMode),
			},
			Capture: true,
		},
		AuthHeader: BasicAuthHeader(in.ShopID, in.SecretKey),
		Mode:       mode,
		OrderID:    in.OrderID,
	}, nil
}

// FormatAmount renders a positive amount with exactly two fractional digits, rounding
// half away from zero (10.005 -> "10.01"). Amounts above entities.MaxAmount are rejected
// before rounding.
func FormatAmount(amount decimal.Decimal) (string, error) {
	if err := entities.CheckAmount(amount); err != nil {
		return "", err
	}
	rounded := amount.Round(2)
	if !rounded.IsPositive() {
		return "", entities.NewValidationError(entities.InvalidAmount, "amount")
	}
	return rounded.StringFixed(2), nil
}

func DefaultDescription(orderNumber string) string {
	return fmt.Sprintf("Order №%s", orderNumber)
}

// BasicAuthHeader builds "Basic base64(shopId:secretKey)" from already trimmed credentials.
func BasicAuthHeader(shopID, secretKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(shopID+":"+secretKey))
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// LogCredentialDiagnostics warns about credential shapes that usually mean a
// misconfigured back office (public key pasted instead of the secret one, live key in
// test mode). It never rejects anything.
func LogCredentialDiagnostics(logger zerolog.Logger, cfg entities.GatewayConfig) {
	shopID := cfg.CleanShopID()
	key := cfg.ActiveSecretKey()
	if shopID != "" {
		if _, err := strconv.ParseUint(shopID, 10, 64); err != nil {
			logger.Warn().Str("shop_id", shopID).Msg("shop id is not numeric")
		}
	}
	if key == "" {
		return
	}
	switch {
	case strings.HasPrefix(key, "test_"):
		if !cfg.TestMode {
			logger.Warn().Msg("test secret key used with testMode=false")
		}
	case strings.HasPrefix(key, "live_"):
		if cfg.TestMode {
			logger.Warn().Msg("live secret key used with testMode=true")
		}
	default:
		logger.Warn().Int("key_len", len(key)).Msg("secret key has neither test_ nor live_ prefix; is it the public key?")
	}
}
