package widget

// Options mirror the checkout script's constructor argument.
type Options struct {
	ConfirmationToken string        `json:"confirmation_token"`
	ReturnURL         string        `json:"return_url,omitempty"`
	ErrorCallback     func(error)   `json:"-"`
	Customization     Customization `json:"customization"`
}

type Customization struct {
	Colors Colors `json:"colors"`
}

type Colors struct {
	ControlPrimary string `json:"control_primary,omitempty"`
	Background     string `json:"background,omitempty"`
}

// DefaultCustomization matches the storefront palette.
func DefaultCustomization() Customization {
	return Customization{Colors: Colors{ControlPrimary: "#8b5cf6", Background: "#ffffff"}}
}
