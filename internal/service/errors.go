package service

import "errors"

// Error taxonomy shared by all services. Handlers map these to HTTP status
// codes; nothing below ever reaches a client verbatim with internal detail.
var (
	// ErrValidation: malformed or incomplete input at insert time.
	// The operation is aborted with no partial write.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateUsername: cashier creation against an existing username.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrNotFound: update against a username that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is deliberately generic: unknown user, wrong
	// password and inactive account are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username/password or inactive account")

	// ErrStoreUnavailable: transient store failure. Surfaced as a warning,
	// prior UI state preserved, manual retry only.
	ErrStoreUnavailable = errors.New("store unavailable")
)
