// Package errs provides coded application errors and their HTTP status mapping.
//
// Services return typed errors, handlers translate them:
//
//	if errors.Is(err, errs.ErrValidation) { ... }
//
//	var appErr *errs.Error
//	if errors.As(err, &appErr) {
//	    w.WriteHeader(appErr.Code.HTTPStatus())
//	}
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error category.
type Code string

const (
	CodeValidation Code = "VALIDATION"
	CodeNotFound   Code = "NOT_FOUND"
	CodeUpstream   Code = "UPSTREAM"
	CodeStore      Code = "STORE"
	CodeInternal   Code = "INTERNAL"
)

// HTTPStatus returns the HTTP status code for an error code.
// Store errors are reported as 400 with the driver message; this is an internal tool.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation, CodeStore:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is an application error with a code and a caller-facing message.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinel errors by code, so errors.Is(err, ErrNotFound) works for any NOT_FOUND error.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code && t.Message == "" && t.Err == nil
}

// Sentinels for errors.Is checks.
var (
	ErrValidation = &Error{Code: CodeValidation}
	ErrNotFound   = &Error{Code: CodeNotFound}
	ErrUpstream   = &Error{Code: CodeUpstream}
	ErrStore      = &Error{Code: CodeStore}
)

// Validation creates a validation error. The message names the violated constraint.
func Validation(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationWrap creates a validation error that keeps the cause reachable through errors.Is.
func ValidationWrap(err error, message string) *Error {
	return &Error{Code: CodeValidation, Message: message, Err: err}
}

// NotFound creates a not found error.
func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// NotFoundWrap creates a not found error that keeps the cause reachable through errors.Is.
func NotFoundWrap(err error, message string) *Error {
	return &Error{Code: CodeNotFound, Message: message, Err: err}
}

// Upstream creates an upstream provider error. The message is generic; the cause is kept for logs.
func Upstream(message string, err error) *Error {
	return &Error{Code: CodeUpstream, Message: message, Err: err}
}

// Store wraps a storage error. The underlying message is surfaced as-is.
func Store(err error) *Error {
	return &Error{Code: CodeStore, Err: err}
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
