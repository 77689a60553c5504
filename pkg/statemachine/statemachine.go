package statemachine

import "context"

// State is a node of the machine. States compare by Name.
type State interface {
	Name() string
}

// Event triggers a transition out of the current state.
type Event interface {
	Name() string
}

// Guard vetoes a transition by returning false.
type Guard func(ctx context.Context, from State, event Event) bool

// Action runs after the guards pass and before the state changes.
// A non-nil error aborts the transition.
type Action func(ctx context.Context, from, to State, event Event) error

// Transition moves the machine From one state To another when Event fires.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

// StateMachine is a finite state machine safe for concurrent use.
type StateMachine interface {
	Current() State
	Fire(ctx context.Context, event Event) error
	CanFire(ctx context.Context, event Event) bool
}

// StringState is a State named by its value.
type StringState string

func (s StringState) Name() string { return string(s) }

// StringEvent is an Event named by its value.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }
