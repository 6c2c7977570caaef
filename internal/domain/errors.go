package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrAuthRequired = errors.New("authentication required")
	ErrInvalidOrder = errors.New("invalid order parameters")
)

// TransportError wraps a failed gateway call: network error, timeout, or a
// non-2xx HTTP status. Callers receive it as an ordinary error value; it is
// never allowed to crash the navigation loop or the agent path.
type TransportError struct {
	Op         string // e.g. "gamma: list markets"
	StatusCode int    // zero when the request never completed
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
