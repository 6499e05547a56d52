// Package errs defines the error type shared by every Logwell SDK component.
// All failures surfaced to callers are an *Error carrying a symbolic code and
// a human-readable message.
package errs

import (
	"errors"
	"fmt"
)

// Code identifies the category of a failure.
type Code string

const (
	InvalidConfig   Code = "INVALID_CONFIG"
	ValidationError Code = "VALIDATION_ERROR"
	NetworkError    Code = "NETWORK_ERROR"
	Unauthorized    Code = "UNAUTHORIZED"
	RateLimited     Code = "RATE_LIMITED"
	ServerError     Code = "SERVER_ERROR"
)

// Error is the failure value returned by SDK operations.
type Error struct {
	Code       Code
	Message    string
	HTTPStatus int
	Cause      error
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap builds an Error that keeps the lower-level cause reachable through
// errors.Is/As.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// WithStatus builds an Error that also records the HTTP status that produced
// it. Used by the transport when the server rejects a batch.
func WithStatus(code Code, message string, status int) *Error {
	return &Error{Code: code, Message: message, HTTPStatus: status}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf extracts the symbolic code from err. The second return is false when
// no *Error is found in the chain.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}
