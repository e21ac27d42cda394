package core

import (
	"errors"
	"fmt"
)

// ErrUnknownTransition is matched by every lookup of a name absent from the table.
var ErrUnknownTransition = errors.New("unknown transition")

// UnknownTransitionError is a caller usage error: the requested transition is not
// defined. It is never used to report a rejected transform.
type UnknownTransitionError struct {
	Name string
}

func (e *UnknownTransitionError) Error() string {
	return fmt.Sprintf("unknown transition %q", e.Name)
}

// Is lets errors.Is match ErrUnknownTransition.
func (e *UnknownTransitionError) Is(target error) bool {
	return target == ErrUnknownTransition
}

// IsUnknownTransition reports whether err wraps an UnknownTransitionError.
func IsUnknownTransition(err error) bool {
	var e *UnknownTransitionError
	return errors.As(err, &e)
}
