package services

import "errors"

// Error taxonomy shared by all services. Controllers map these onto HTTP
// status codes in utils.SendServiceError; everything here is recoverable by
// the caller and nothing is retried internally.
var (
	// ErrNotFound reports a missing user or friend request.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateIdentity reports an email or display-name collision on
	// signup or profile update.
	ErrDuplicateIdentity = errors.New("duplicate identity")

	// ErrInvalidOperation reports a self-request or a transition attempted on
	// a request that is no longer in the sent state.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrConflict reports a duplicate outstanding request in the same
	// direction, including one discovered by losing an insert race.
	ErrConflict = errors.New("conflict")

	// ErrForbidden reports a transition attempted by someone other than the
	// request's receiver.
	ErrForbidden = errors.New("forbidden")

	// ErrRateLimited reports that the sender exceeded the outbound request
	// cap for the current window.
	ErrRateLimited = errors.New("rate limited")

	// ErrUnauthenticated reports bad or missing credentials.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrValidation reports malformed input rejected before any store
	// mutation.
	ErrValidation = errors.New("validation failed")
)
