package constants

import "errors"

var (
	// ErrNoSymbols raised when request carries no symbols
	ErrNoSymbols = errors.New("no symbols provided")
	// ErrUnexpectedStatusCode raised when upstream returns non-200 status
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	// ErrMalformedPayload raised when upstream payload misses quote results
	ErrMalformedPayload = errors.New("malformed payload")
)
