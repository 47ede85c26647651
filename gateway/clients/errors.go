package clients

import "errors"

// Downstream error taxonomy. Transport failures and timeouts map to
// ErrUnavailable, 404s to ErrNotFound, 409s to ErrConflict, and any other
// non-2xx to ErrRejected. Callers discriminate with errors.Is.
var (
	ErrNotFound    = errors.New("resource not found")
	ErrConflict    = errors.New("conflicting state")
	ErrUnavailable = errors.New("service unavailable")
	ErrRejected    = errors.New("request rejected")
)
