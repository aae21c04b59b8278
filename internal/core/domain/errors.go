package domain

import "errors"

// Sentinel errors returned by services and repositories. The HTTP layer maps
// these onto the canonical error envelope; nothing below transport should
// know about status codes.
var (
	// ErrInvalidCredentials is returned for every login failure so callers
	// cannot tell an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCurrentPassword is returned when a password change supplies a wrong
	// current password. Distinct from ErrInvalidCredentials because the
	// caller is already authenticated and may see a precise message.
	ErrCurrentPassword = errors.New("current password is incorrect")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("username already exists")

	ErrAppNotFound = errors.New("app not found")
	ErrSlugExists  = errors.New("slug already exists")

	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("admin access required")

	ErrExpiredToken = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")

	ErrRateLimited = errors.New("too many requests")

	// ErrUpstream marks failures of the downstream Zoho connector. Requests
	// surfacing it answer 502, never 500.
	ErrUpstream = errors.New("upstream service unavailable")
)

// ValidationError carries a user-facing message for malformed input. It maps
// to 400 VALIDATION_ERROR at the transport layer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
