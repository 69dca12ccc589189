// Package apperror defines the error kinds surfaced by the rides service.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for callers and transports
type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindInvalidTransition Kind = "INVALID_TRANSITION"
	KindForbidden         Kind = "FORBIDDEN"
	KindAlreadyPaid       Kind = "ALREADY_PAID"
	KindValidation        Kind = "VALIDATION_ERROR"
	KindConflict          Kind = "CONFLICT"
	KindInternal          Kind = "INTERNAL"
)

// Sentinels for errors.Is matching on kind
var (
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrInvalidTransition = &Error{Kind: KindInvalidTransition}
	ErrForbidden         = &Error{Kind: KindForbidden}
	ErrAlreadyPaid       = &Error{Kind: KindAlreadyPaid}
	ErrValidation        = &Error{Kind: KindValidation}
	ErrConflict          = &Error{Kind: KindConflict}
)

// Error is a classified application error
type Error struct {
	Kind    Kind
	Message string
	// Current and Expected are set for KindInvalidTransition
	Current  string
	Expected string
	Err      error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing entity
func NotFound(format string, args ...interface{}) *Error {
	return newError(KindNotFound, format, args...)
}

// Forbidden reports an actor lacking rights over an entity
func Forbidden(format string, args ...interface{}) *Error {
	return newError(KindForbidden, format, args...)
}

// AlreadyPaid reports a second payment attempt for a ride
func AlreadyPaid(format string, args ...interface{}) *Error {
	return newError(KindAlreadyPaid, format, args...)
}

// Validation reports malformed input
func Validation(format string, args ...interface{}) *Error {
	return newError(KindValidation, format, args...)
}

// Conflict reports a lost race or a competing state
func Conflict(format string, args ...interface{}) *Error {
	return newError(KindConflict, format, args...)
}

// InvalidTransition reports an operation attempted from the wrong status
func InvalidTransition(current, expected string) *Error {
	return &Error{
		Kind:     KindInvalidTransition,
		Message:  fmt.Sprintf("ride is %s, expected %s", current, expected),
		Current:  current,
		Expected: expected,
	}
}

// Internal wraps an infrastructure failure
func Internal(err error, format string, args ...interface{}) *Error {
	e := newError(KindInternal, format, args...)
	e.Err = err
	return e
}

// KindOf returns the kind of err, KindInternal for unclassified errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error kind to its HTTP status code
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	case KindInvalidTransition, KindAlreadyPaid, KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
