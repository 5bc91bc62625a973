package apperrors

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable classification of a business or storage failure.
// The HTTP layer maps kinds onto status codes; coordinators return them so
// callers can react without string matching.
type Kind string

const (
	KindNotFound                Kind = "NOT_FOUND"
	KindInvalidTransition       Kind = "INVALID_TRANSITION"
	KindResourceUnavailable     Kind = "RESOURCE_UNAVAILABLE"
	KindDriverUnavailable       Kind = "DRIVER_UNAVAILABLE"
	KindLicenseExpired          Kind = "LICENSE_EXPIRED"
	KindCapacityExceeded        Kind = "CAPACITY_EXCEEDED"
	KindOdometerRegression      Kind = "ODOMETER_REGRESSION"
	KindPastServiceDate         Kind = "PAST_SERVICE_DATE"
	KindDuplicateKey            Kind = "DUPLICATE_KEY"
	KindDependentResourceActive Kind = "DEPENDENT_RESOURCE_ACTIVE"
	KindValidation              Kind = "VALIDATION"
	KindUnauthorized            Kind = "UNAUTHORIZED"
	KindStorage                 Kind = "STORAGE_ERROR"
)

// Error carries a kind alongside a human-readable message and an optional
// wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors by kind so callers can use errors.Is with sentinel
// instances created via New.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// New creates an error with the given kind and message
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error with the given kind and a formatted message
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error with the given kind wrapping an underlying cause
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain. Unclassified errors are
// reported as storage errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
