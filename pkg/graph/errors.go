package graph

import (
	"errors"
	"fmt"
)

// ErrUnknownActor flags a query name that never appeared in the build
// dataset.
var ErrUnknownActor = errors.New("actor not present in dataset")

// ActorError provides structured error information for name lookups.
type ActorError struct {
	Op    string
	Actor string
	Cause error
}

// Error implements the error interface.
func (e *ActorError) Error() string {
	return fmt.Sprintf("%s: actor %q: %v", e.Op, e.Actor, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ActorError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *ActorError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}
