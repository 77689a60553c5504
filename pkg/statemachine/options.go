package statemachine

import "fmt"

// Option registers transitions on a machine under construction.
type Option func(*machine) error

// TransitionOption attaches guards or actions to a single transition.
type TransitionOption func(*Transition)

// New returns a machine starting in initial.
func New(initial State, opts ...Option) (StateMachine, error) {
	if initial == nil {
		return nil, ErrInvalidState
	}

	m := &machine{
		current:     initial,
		transitions: make(map[string]map[string][]Transition),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on error. Intended for machines declared in
// code, where a bad definition is a programming error.
func MustNew(initial State, opts ...Option) StateMachine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("statemachine: %v", err))
	}
	return m
}

// WithTransition allows event to move the machine from one state to another.
// Several transitions may share from and event; the first whose guards pass
// is taken.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *machine) error {
		t := Transition{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&t)
		}
		return m.add(t)
	}
}

// WithGuard adds a guard to a transition. Nil guards are ignored.
func WithGuard(g Guard) TransitionOption {
	return func(t *Transition) {
		if g != nil {
			t.Guards = append(t.Guards, g)
		}
	}
}

// WithAction adds an action to a transition. Nil actions are ignored.
func WithAction(a Action) TransitionOption {
	return func(t *Transition) {
		if a != nil {
			t.Actions = append(t.Actions, a)
		}
	}
}
