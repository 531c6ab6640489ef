// Package apperr provides centralized error definitions and error handling
// utilities for the dishboard codebase. It distinguishes transport failures
// (the request never produced a response) from API failures (the server
// answered with a non-success status), and defines the small set of sentinel
// errors the client layers share.
//
// Creating errors:
//
//	err := apperr.NewTransportError("list menu", cause)
//	err := apperr.NewAPIError("create menu item", 422, "price must be >= 0")
//
// Checking errors:
//
//	if apperr.IsTransport(err) { ... }
//
//	var apiErr *apperr.APIError
//	if apperr.As(err, &apiErr) { ... }
package apperr

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors shared across the client layers.
var (
	// ErrItemNotFound indicates a menu item the server no longer knows about.
	ErrItemNotFound = New("menu item not found")
	// ErrOrderNotFound indicates an order the server no longer knows about.
	ErrOrderNotFound = New("order not found")
	// ErrEmptyResponse indicates the server returned a body that could not be
	// decoded into any tolerated shape.
	ErrEmptyResponse = New("empty or undecodable response")
)

// TransportError indicates that a request could not be sent or a response
// could not be received. The server state is unknown.
type TransportError struct {
	// Op names the operation that failed, e.g. "list menu".
	Op string
	// Err is the underlying transport failure.
	Err error
}

// NewTransportError creates a TransportError for the named operation.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op + ": transport failure"
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError indicates the server answered with a non-success status code.
type APIError struct {
	// Op names the operation that failed, e.g. "update order status".
	Op string
	// StatusCode is the HTTP status the server returned.
	StatusCode int
	// Message is the server-provided message, if one could be decoded.
	Message string
}

// NewAPIError creates an APIError for the named operation.
func NewAPIError(op string, statusCode int, message string) *APIError {
	return &APIError{Op: op, StatusCode: statusCode, Message: message}
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: request failed (status %d)", e.Op, e.StatusCode)
}

// ValidationError indicates locally rejected input. The client performs only
// shallow gating (required fields, numeric parses); the server remains the
// validation authority.
type ValidationError struct {
	// Field is the input field that failed, e.g. "price".
	Field string
	// Reason describes why the value was rejected.
	Reason string
}

// NewValidationError creates a ValidationError for the named field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return As(err, &te)
}

// IsAPIError reports whether err is (or wraps) an APIError.
func IsAPIError(err error) bool {
	var ae *APIError
	return As(err, &ae)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return As(err, &ve)
}

// UserMessage returns a message safe to surface on the status line.
// For API errors it prefers the server-provided message; for transport
// errors it names the operation without leaking the underlying cause chain.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var ae *APIError
	if As(err, &ae) {
		if ae.Message != "" {
			return fmt.Sprintf("%s failed: %s", ae.Op, ae.Message)
		}
		return fmt.Sprintf("%s failed (status %d)", ae.Op, ae.StatusCode)
	}

	var te *TransportError
	if As(err, &te) {
		return fmt.Sprintf("%s failed: server unreachable", te.Op)
	}

	var ve *ValidationError
	if As(err, &ve) {
		return ve.Error()
	}

	return err.Error()
}
