package coderland

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/coderland/pkg/statemachine"
)

// State is the lifecycle position of an App.
type State int32

const (
	StateNotStarted State = iota
	// StateStarting covers the time between Run being called and the
	// listener being bound.
	StateStarting
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Name makes State usable as a statemachine.State.
func (s State) Name() string { return s.String() }

const (
	eventLaunch = statemachine.StringEvent("launch")
	eventListen = statemachine.StringEvent("listen")
	eventStop   = statemachine.StringEvent("stop")
)

// newLifecycle builds the one-way lifecycle. Stopped has no way out, so an
// App can never be restarted.
func newLifecycle(log *slog.Logger) statemachine.StateMachine {
	trace := statemachine.WithAction(func(ctx context.Context, from, to statemachine.State, ev statemachine.Event) error {
		log.DebugContext(ctx, "lifecycle transition",
			slog.String("from", from.Name()),
			slog.String("to", to.Name()),
			slog.String("event", ev.Name()),
		)
		return nil
	})

	return statemachine.MustNew(StateNotStarted,
		statemachine.WithTransition(StateNotStarted, StateStarting, eventLaunch, trace),
		statemachine.WithTransition(StateStarting, StateRunning, eventListen, trace),
		statemachine.WithTransition(StateStarting, StateStopped, eventStop, trace),
		statemachine.WithTransition(StateRunning, StateStopped, eventStop, trace),
	)
}
