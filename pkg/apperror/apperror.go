package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error carries the HTTP status and the client-facing message of a failure.
// Err is the internal cause and is only ever logged.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

const (
	CodeValidation      = "validation_error"
	CodeUnauthenticated = "unauthenticated"
	CodeForbidden       = "forbidden"
	CodeStorage         = "storage_error"
)

const (
	MsgMissingFields      = "Missing fields"
	MsgMissingQueryParams = "Missing query parameters"
	MsgInternal           = "internal server error"
)

func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidation, Message: msg}
}

// InvalidField reports a present field with the wrong type or an out-of-range value.
func InvalidField(name string) *Error {
	return Validation("Invalid field: " + name)
}

func MissingFields() *Error { return Validation(MsgMissingFields) }

func Unauthenticated(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeUnauthenticated, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Code: CodeForbidden, Message: msg}
}

func Storage(op string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: CodeStorage, Message: MsgInternal, Err: fmt.Errorf("%s: %w", op, err)}
}

// IsValidation reports whether err is, or wraps, a validation failure.
func IsValidation(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == CodeValidation
}

// StatusCode lets middleware read the response status before the error handler runs.
func (e *Error) StatusCode() int { return e.Status }
