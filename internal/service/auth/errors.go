package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token is malformed, expired, signed with the
	// wrong key or algorithm. The precise reason is only logged.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials is returned by Login for an unknown user or a wrong password.
	// Both cases share one error so callers cannot tell which accounts exist.
	ErrInvalidCredentials = errors.New("invalid username/email or password")

	// ErrDefaultRoleMissing indicates the role catalog lacks the role assigned at registration.
	ErrDefaultRoleMissing = errors.New("default role is not configured")
)
