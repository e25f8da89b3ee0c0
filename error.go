package seolens

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These codes describe the class of an error so callers can react to it
// without string matching. EINTERNAL is reserved for errors that should
// never be shown to an end user verbatim.
const (
	ECONFLICT    = "conflict"
	EINVALID     = "invalid"
	EINTERNAL    = "internal"
	ENOTFOUND    = "not_found"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application error with a machine-readable code and
// a human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("seolens error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps err and returns its code, if it is an application error.
// Returns an empty string for nil errors and EINTERNAL for non-application
// errors.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message, if it is an application
// error. Non-application errors report a generic message so internal details
// never leak to users.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf constructs an *Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
