package apperrors

import "errors"

// Sentinel errors shared across services, repositories and controllers.
// Controllers map these to HTTP status codes; everything else wraps them
// with %w and callers match with errors.Is.
var (
	// validation errors (400)
	ErrValidation   = errors.New("validation error")
	ErrEmptyTitle   = errors.New("title is required")
	ErrEmptyContent = errors.New("content is required")
	ErrEmailTaken   = errors.New("user with this email already exists")

	// auth errors (401)
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// not-found errors (404)
	// A note owned by someone else reports the same error as a missing one.
	ErrNoteNotFound = errors.New("note not found")
	ErrUserNotFound = errors.New("user not found")

	// upstream errors (502)
	ErrUpstream = errors.New("AI provider request failed")
)

// IsValidation reports whether err is a validation-kind error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrEmptyContent) ||
		errors.Is(err, ErrEmailTaken)
}

// IsAuth reports whether err is an auth-kind error.
func IsAuth(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrInvalidCredentials)
}

// IsNotFound reports whether err is a not-found-kind error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoteNotFound) || errors.Is(err, ErrUserNotFound)
}

// IsUpstream reports whether err is an upstream-provider error.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}
