// Package apperr defines the closed error taxonomy shared by services,
// repositories and the HTTP boundary. Every error carries an HTTP status
// and a machine-readable code so handlers never have to inspect error
// strings to decide on a response. Unknown errors are mapped to a generic
// 500 at the boundary and their details stay server-side.
package apperr

import (
	"errors"
	"net/http"
)

// Error is the single error type that crosses layer boundaries.
type Error struct {
	Status  int    // HTTP status the boundary should respond with
	Code    string // stable machine-readable code
	Message string // human-readable message, safe to return to clients
}

func (e *Error) Error() string { return e.Message }

// Validation reports a malformed or out-of-range request value.
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "VALIDATION_ERROR", Message: message}
}

// Authentication reports a missing or failed credential check.
func Authentication(message string) *Error {
	if message == "" {
		message = "authentication failed"
	}
	return &Error{Status: http.StatusUnauthorized, Code: "AUTHENTICATION_ERROR", Message: message}
}

// Authorization reports access to a resource the caller does not own.
func Authorization(message string) *Error {
	if message == "" {
		message = "not authorized"
	}
	return &Error{Status: http.StatusForbidden, Code: "AUTHORIZATION_ERROR", Message: message}
}

// NotFound reports a missing resource; resource names the thing looked up.
func NotFound(resource string) *Error {
	return &Error{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: resource + " not found"}
}

// Conflict reports a state conflict such as a duplicate unique value.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Code: "CONFLICT", Message: message}
}

// Internal wraps unexpected failures. The message must not leak internals;
// callers log the underlying cause themselves.
func Internal(code, message string) *Error {
	if code == "" {
		code = "INTERNAL_ERROR"
	}
	if message == "" {
		message = "internal server error"
	}
	return &Error{Status: http.StatusInternalServerError, Code: code, Message: message}
}

// From extracts an *Error from err, or nil if err is not one of ours.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
