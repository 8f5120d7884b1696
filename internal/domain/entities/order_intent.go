package entities

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is fixed for the storefront.
const Currency = "RUB"

// maxAmountExponent bounds the decimal exponent of an amount. Rescaling a decimal costs
// time and memory proportional to the exponent, so larger ones are rejected before any
// arithmetic.
const maxAmountExponent = 32

// MaxAmount is the largest amount accepted for one payment.
var MaxAmount = decimal.New(1, 9)

// CheckAmount rejects amounts with an out-of-range exponent or above MaxAmount.
// Sign and rounding are the request builder's concern.
func CheckAmount(d decimal.Decimal) error {
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return NewValidationError(InvalidAmount, "amount")
	}
	if d.GreaterThan(MaxAmount) {
		return NewValidationError(InvalidAmount, "amount")
	}
	return nil
}

// OrderIntent describes one payment the caller wants created.
//
// Amount uses decimal arithmetic; the zero value means "absent".
type OrderIntent struct {
	OrderID          string
	OrderNumber      string
	Amount           decimal.Decimal
	Description      string
	ReturnURL        string
	ConfirmationMode ConfirmationMode
}

// ParseAmount converts an inbound JSON amount (number or numeric string) into a decimal.
//
// Absent, null and empty values yield a zero decimal so the request builder reports a
// missing field; anything else that does not parse is an InvalidAmount error.
func ParseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" || s == `""` {
		return decimal.Zero, nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return decimal.Zero, NewValidationError(InvalidAmount, "amount")
		}
		s = strings.TrimSpace(str)
		if s == "" {
			return decimal.Zero, nil
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, NewValidationError(InvalidAmount, "amount")
	}
	if err := CheckAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
