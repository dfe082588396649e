// internal/games/errors.go
//
// Error kinds for the resource contract.
//
// Three kinds cover every failure: ValidationError (missing required field),
// NotFoundError (id does not resolve), and anything else, which is a backend
// error and propagates wrapped.  Handlers map the kinds onto status codes;
// see internal/api.
package games

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel matched by errors.Is for any NotFoundError.
var ErrNotFound = errors.New("game not found")

// ValidationError reports the first missing required field of a create
// payload.  Message is the exact client-facing string.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError carries the id that failed to resolve.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("game %s not found", e.ID) }

// Unwrap lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }
