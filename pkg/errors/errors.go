// Package errors provides structured error types for urbancharge.
//
// Every failure the community model, the configuration loader, or the CLI can
// report carries a machine-readable [Code] so callers can branch on the kind
// of failure without matching on message text:
//
//	err := errors.New(errors.ErrCodeUnknownCity, "unknown city %q", name)
//	if errors.Is(err, errors.ErrCodeUnknownCity) {
//	    // report and skip the mutation
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, cause, "line %d", n)
//
// None of the codes is fatal: all describe refused mutations or bad input that
// a user can correct.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Community model errors
	ErrCodeUnknownCity            Code = "UNKNOWN_CITY"
	ErrCodeDuplicateCity          Code = "DUPLICATE_CITY"
	ErrCodeSelfLoop               Code = "SELF_LOOP"
	ErrCodeAlreadyHasPoint        Code = "ALREADY_HAS_POINT"
	ErrCodeNoPointToRemove        Code = "NO_POINT_TO_REMOVE"
	ErrCodeAccessibilityViolation Code = "ACCESSIBILITY_VIOLATION"

	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidPath      Code = "INVALID_PATH"
	ErrCodeInvalidAlgorithm Code = "INVALID_ALGORITHM"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeUnavailable  Code = "UNAVAILABLE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether any *Error in err's chain has the given code.
// Unlike errors.As, it keeps unwrapping past an *Error with a different code,
// so a loader error wrapping an UNKNOWN_CITY cause matches both codes.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed by
// the cause's own user message when there is one.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
