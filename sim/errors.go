package sim

import "errors"

var (
	// ErrEmptyQueue is the panic value raised when a request is removed from
	// an empty queue. Callers must check Len() first.
	ErrEmptyQueue = errors.New("remove from empty request queue")

	// ErrInvalidRequestCount is returned for a negative number of file requests.
	ErrInvalidRequestCount = errors.New("number of file requests must be non-negative")

	// ErrUnknownPolicy is returned for an unrecognized policy name.
	ErrUnknownPolicy = errors.New("unknown scheduling policy")
)
