package entities

import "strings"

// ConfirmationMode is decided once per OrderIntent and never changes afterwards.
//
//   - redirect: the caller navigates the buyer to a confirmation URL; completion is
//     observed out of band (webhook or return URL).
//   - embedded: the caller hands a confirmation token to the checkout widget.
type ConfirmationMode string

const (
	ConfirmationRedirect ConfirmationMode = "redirect"
	ConfirmationEmbedded ConfirmationMode = "embedded"
)

// ModeFromWidgetFlag maps the storefront's "useWidget" flag onto a mode.
func ModeFromWidgetFlag(useWidget bool) ConfirmationMode {
	if useWidget {
		return ConfirmationEmbedded
	}
	return ConfirmationRedirect
}

// ParseConfirmationMode accepts "redirect" / "embedded" case-insensitively; empty means redirect.
func ParseConfirmationMode(s string) (ConfirmationMode, error) {
	switch ConfirmationMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ConfirmationRedirect:
		return ConfirmationRedirect, nil
	case ConfirmationEmbedded:
		return ConfirmationEmbedded, nil
	}
	return "", NewValidationError(InvalidMode, "confirmationMode")
}

func (m ConfirmationMode) Valid() bool {
	return m == ConfirmationRedirect || m == ConfirmationEmbedded
}

// RequestType is the value sent as confirmation.type. Anything that is not an explicit
// embedded request is a redirect.
func (m ConfirmationMode) RequestType() string {
	if m == ConfirmationEmbedded {
		return string(ConfirmationEmbedded)
	}
	return string(ConfirmationRedirect)
}

func (m ConfirmationMode) String() string { return m.RequestType() }

// GatewayConfirmation is the confirmation object as the gateway returns it.
type GatewayConfirmation struct {
	Type              string `json:"type"`
	ConfirmationURL   string `json:"confirmation_url,omitempty"`
	ConfirmationToken string `json:"confirmation_token,omitempty"`
	ReturnURL         string `json:"return_url,omitempty"`
}

// Confirmation is what the caller needs to finish the payment: a URL for redirect
// mode, a token for embedded mode.
type Confirmation interface {
	Mode() ConfirmationMode
}

type RedirectConfirmation struct {
	URL string
}

func (RedirectConfirmation) Mode() ConfirmationMode { return ConfirmationRedirect }

type EmbeddedConfirmation struct {
	Token string
}

func (EmbeddedConfirmation) Mode() ConfirmationMode { return ConfirmationEmbedded }

// Resolve extracts the mode-authoritative field. A missing field is a business error
// with HTTPStatus left for the caller to fill in.
func (m ConfirmationMode) Resolve(c *GatewayConfirmation) (Confirmation, *BusinessError) {
	if m == ConfirmationEmbedded {
		if c == nil || strings.TrimSpace(c.ConfirmationToken) == "" {
			return nil, &BusinessError{
				Code:        CodeMissingConfirmationToken,
				Description: "gateway did not return a confirmation token for the widget",
			}
		}
		return EmbeddedConfirmation{Token: c.ConfirmationToken}, nil
	}
	if c == nil || strings.TrimSpace(c.ConfirmationURL) == "" {
		return nil, &BusinessError{
			Code:        CodeMissingConfirmationURL,
			Description: "gateway returned a payment without confirmation_url for redirect",
		}
	}
	return RedirectConfirmation{URL: c.ConfirmationURL}, nil
}
