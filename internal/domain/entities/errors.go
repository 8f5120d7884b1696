package entities

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ValidationErrorKind classifies malformed caller input. It doubles as a sentinel so
// callers can write errors.Is(err, entities.MissingField).
type ValidationErrorKind string

const (
	MissingField     ValidationErrorKind = "MissingField"
	InvalidAmount    ValidationErrorKind = "InvalidAmount"
	InvalidReturnURL ValidationErrorKind = "InvalidReturnURL"
	InvalidMode      ValidationErrorKind = "InvalidConfirmationMode"
)

func (k ValidationErrorKind) Error() string { return string(k) }

// ValidationError never reaches the network.
type ValidationError struct {
	Kind  ValidationErrorKind
	Field string
}

func NewValidationError(kind ValidationErrorKind, field string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field}
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingField:
		return fmt.Sprintf("missing required field %q", e.Field)
	case InvalidAmount:
		return "amount must be a positive number not above 1000000000"
	case InvalidReturnURL:
		return fmt.Sprintf("field %q must be an absolute http(s) url", e.Field)
	default:
		return fmt.Sprintf("invalid field %q: %s", e.Field, e.Kind)
	}
}

func (e *ValidationError) Is(target error) bool {
	k, ok := target.(ValidationErrorKind)
	return ok && k == e.Kind
}

// BusinessError: the gateway answered but refused the request, or answered 2xx without
// the confirmation data the mode requires. Not retryable without changing the request.
type BusinessError struct {
	HTTPStatus  int
	StatusText  string
	Code        string
	Parameter   string
	Description string
	Details     json.RawMessage
}

func (*BusinessError) gatewayResult() {}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("gateway business error (HTTP %d): %s", e.HTTPStatus, e.Description)
}

// Business error codes produced locally when a 2xx response lacks confirmation data.
const (
	CodeMissingConfirmationURL   = "MISSING_URL"
	CodeMissingConfirmationToken = "MISSING_TOKEN"
)

type TransportErrorKind string

const (
	TransportTimeout   TransportErrorKind = "Timeout"
	TransportTLS       TransportErrorKind = "TLS"
	TransportNetwork   TransportErrorKind = "Network"
	TransportMalformed TransportErrorKind = "Malformed"
)

// TransportError is operational and potentially transient.
type TransportError struct {
	Kind    TransportErrorKind
	Message string
	Err     error
}

func (*TransportError) gatewayResult() {}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway transport error (%s): %s", e.Kind, e.Message)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Transient reports whether a retry with the same request may succeed.
func (e *TransportError) Transient() bool {
	return e.Kind == TransportTimeout || e.Kind == TransportNetwork
}

// AsValidationError is a small helper for adapters.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
