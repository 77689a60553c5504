package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState      = errors.New("statemachine: initial state cannot be nil")
	ErrInvalidTransition = errors.New("statemachine: from, to and event are required")
	ErrInvalidEvent      = errors.New("statemachine: event cannot be nil")
	ErrActionFailed      = errors.New("statemachine: transition action failed")
)

// NoTransitionError reports an event that has no transition out of the
// current state.
type NoTransitionError struct {
	State string
	Event string
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("statemachine: no transition from %q on %q", e.State, e.Event)
}

// RejectedError reports an event whose every transition was vetoed by guards.
type RejectedError struct {
	State string
	Event string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("statemachine: transition from %q on %q rejected by guards", e.State, e.Event)
}

// IsNoTransition reports whether err is or wraps a *NoTransitionError.
func IsNoTransition(err error) bool {
	var e *NoTransitionError
	return errors.As(err, &e)
}

// IsRejected reports whether err is or wraps a *RejectedError.
func IsRejected(err error) bool {
	var e *RejectedError
	return errors.As(err, &e)
}
