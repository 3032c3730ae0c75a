package errcodes

import "errors"

var (
	// ErrNotFound means the repository or commit does not exist upstream.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable covers network failures, timeouts, rate
	// limits and server errors from the hosting API.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrDuplicateKey is a store uniqueness violation on insert.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrIntegrity is an internal invariant violation, e.g. a tag whose
	// commit is absent from the merged commit map after fetching.
	ErrIntegrity = errors.New("integrity error")
)
