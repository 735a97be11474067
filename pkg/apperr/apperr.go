// Package apperr defines the error taxonomy shared by repositories,
// services and controllers. Controllers map these to HTTP statuses at the
// boundary; nothing below the controller layer knows about status codes.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means no row exists for the given identifier.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail means a rider with the same email already exists.
	ErrDuplicateEmail = errors.New("rider with this email already exists")

	// ErrStoreUnavailable wraps connection/transport failures talking to
	// the relational store, as opposed to logical outcomes like not-found.
	ErrStoreUnavailable = errors.New("database unavailable")

	// ErrUpstreamUnavailable wraps network-level failures of the trips
	// service call: timeout, refused connection, DNS, malformed response.
	ErrUpstreamUnavailable = errors.New("trip service unavailable")
)

// ValidationError reports a missing or invalid required field. It carries
// the client-facing message directly.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreUnavailable wraps err so it matches ErrStoreUnavailable while
// preserving the driver detail for the response body.
func StoreUnavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// UpstreamUnavailable wraps err so it matches ErrUpstreamUnavailable.
func UpstreamUnavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}
