package statemachine

import (
	"context"
	"errors"
	"sync"
)

// machine keeps its transitions indexed as [from][event].
type machine struct {
	mu          sync.RWMutex
	current     State
	transitions map[string]map[string][]Transition
}

func (m *machine) add(t Transition) error {
	if t.From == nil || t.To == nil || t.Event == nil {
		return ErrInvalidTransition
	}
	byEvent, ok := m.transitions[t.From.Name()]
	if !ok {
		byEvent = make(map[string][]Transition)
		m.transitions[t.From.Name()] = byEvent
	}
	byEvent[t.Event.Name()] = append(byEvent[t.Event.Name()], t)
	return nil
}

func (m *machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Fire applies the first transition for event whose guards all pass.
func (m *machine) Fire(ctx context.Context, event Event) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.pick(ctx, event)
	if err != nil {
		return err
	}
	for _, action := range t.Actions {
		if err := action(ctx, m.current, t.To, event); err != nil {
			return errors.Join(ErrActionFailed, err)
		}
	}
	m.current = t.To
	return nil
}

func (m *machine) CanFire(ctx context.Context, event Event) bool {
	if event == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := m.pick(ctx, event)
	return err == nil
}

// pick must be called with mu held.
func (m *machine) pick(ctx context.Context, event Event) (Transition, error) {
	candidates := m.transitions[m.current.Name()][event.Name()]
	if len(candidates) == 0 {
		return Transition{}, &NoTransitionError{State: m.current.Name(), Event: event.Name()}
	}

next:
	for _, t := range candidates {
		for _, guard := range t.Guards {
			if !guard(ctx, m.current, event) {
				continue next
			}
		}
		return t, nil
	}
	return Transition{}, &RejectedError{State: m.current.Name(), Event: event.Name()}
}
