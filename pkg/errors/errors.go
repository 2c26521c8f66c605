package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error. Every service error carries exactly
// one Kind, and the HTTP layer is the only place that maps a Kind to a
// status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindCapacity
)

// AppError is the error type every layer below HTTP returns.
// Message is safe to show to clients; Err is the internal cause and is only
// ever logged.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap supports errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with the given kind.
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Newf creates an AppError with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap converts a system error (database, network) into an internal
// AppError, hiding the cause from clients.
func Wrap(err error, message string) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// Get extracts the AppError from err. Context cancellation and deadline
// errors become capacity errors (the request ran out of budget); anything
// else unexpected becomes an internal error.
func Get(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &AppError{Kind: KindCapacity, Message: "request timed out", Err: err}
	}
	return Wrap(err, "internal server error")
}

// KindOf returns the kind err would be reported as.
func KindOf(err error) Kind {
	return Get(err).Kind
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps a kind to its HTTP status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindCapacity:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
