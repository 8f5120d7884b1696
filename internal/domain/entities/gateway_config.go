package entities

import "strings"

// GatewayConfig holds the merchant credentials for a single payment-creation call.
//
// The core never persists it. Credentials come from an untrusted caller, so every
// accessor trims surrounding whitespace: Basic-Auth tokens are byte-sensitive.
//
// Test and live secret keys are kept side by side (as the back office stores them);
// TestMode selects which one is active.
type GatewayConfig struct {
	ShopID        string `json:"shopId"`
	SecretKey     string `json:"secretKey"`
	TestSecretKey string `json:"testSecretKey,omitempty"`
	TestMode      bool   `json:"testMode"`
}

// CleanShopID returns the trimmed shop identifier.
func (c GatewayConfig) CleanShopID() string {
	return strings.TrimSpace(c.ShopID)
}

// ActiveSecretKey returns the trimmed secret key for the configured mode.
//
// In test mode only TestSecretKey is considered when it is set. A config built by a
// proxy from an inbound request carries a single already-selected key in SecretKey,
// which is returned as is.
func (c GatewayConfig) ActiveSecretKey() string {
	if c.TestMode && strings.TrimSpace(c.TestSecretKey) != "" {
		return strings.TrimSpace(c.TestSecretKey)
	}
	return strings.TrimSpace(c.SecretKey)
}
