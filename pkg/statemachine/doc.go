// Package statemachine implements a small finite state machine with guarded
// transitions and side-effect actions.
//
// States and events are anything with a Name; StringState and StringEvent
// cover the common case. Transitions are declared up front with functional
// options and the machine is safe for concurrent use:
//
//	const (
//	    Idle    = statemachine.StringState("idle")
//	    Running = statemachine.StringState("running")
//	    Start   = statemachine.StringEvent("start")
//	)
//
//	m := statemachine.MustNew(Idle,
//	    statemachine.WithTransition(Idle, Running, Start),
//	)
//	if err := m.Fire(ctx, Start); statemachine.IsNoTransition(err) {
//	    // already running
//	}
//
// Guards run in declaration order and veto with false. Actions run after all
// guards of the chosen transition passed and before the state changes; an
// action error leaves the state untouched and is wrapped with ErrActionFailed.
// Fire holds the machine lock while guards and actions run, so they must not
// call back into the same machine.
package statemachine
