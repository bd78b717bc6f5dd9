// Package common defines shared constants and sentinel errors used across
// the layers of the identity service. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Service-level errors (generic/internal flow control). ErrorInternal is
	// the only message ever shown to a caller for a non-domain failure.
	ErrorInternal = errors.New("internal error")

	// Domain errors surfaced verbatim to callers.
	ErrUserNotFound          = errors.New("user not found")
	ErrWrongVerificationCode = errors.New("wrong verification code provided")
	ErrWrongPassword         = errors.New("wrong password provided")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid session token")
	ErrTokenExpired = errors.New("session token expired")

	// A stored hash that cannot be parsed is an internal failure, never a
	// user-facing one.
	ErrMalformedHash = errors.New("malformed password hash")
)

// ValidationError carries a user-facing validation message built at
// runtime, e.g. joined uniqueness conflicts.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError wraps msg into a ValidationError.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err belongs to the validation class: the
// message is specific and safe to expose to the caller. Everything else
// maps to ErrorInternal at the transport boundary.
func IsValidation(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrWrongVerificationCode) ||
		errors.Is(err, ErrWrongPassword) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrTokenExpired)
}
