package statemachine_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coderland/pkg/statemachine"
)

const (
	idle    = statemachine.StringState("idle")
	running = statemachine.StringState("running")
	done    = statemachine.StringState("done")

	start  = statemachine.StringEvent("start")
	finish = statemachine.StringEvent("finish")
)

func newMachine(t *testing.T, opts ...statemachine.TransitionOption) statemachine.StateMachine {
	t.Helper()
	m, err := statemachine.New(idle,
		statemachine.WithTransition(idle, running, start, opts...),
		statemachine.WithTransition(running, done, finish),
	)
	require.NoError(t, err)
	return m
}

func TestFire(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newMachine(t)

	assert.Equal(t, idle, m.Current())
	assert.True(t, m.CanFire(ctx, start))
	assert.False(t, m.CanFire(ctx, finish))

	require.NoError(t, m.Fire(ctx, start))
	assert.Equal(t, running, m.Current())

	require.NoError(t, m.Fire(ctx, finish))
	assert.Equal(t, done, m.Current())
}

func TestFire_NoTransition(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newMachine(t)

	err := m.Fire(ctx, finish)
	require.Error(t, err)
	assert.True(t, statemachine.IsNoTransition(err))
	assert.False(t, statemachine.IsRejected(err))
	assert.Equal(t, idle, m.Current())

	require.NoError(t, m.Fire(ctx, start))
	err = m.Fire(ctx, start)
	assert.True(t, statemachine.IsNoTransition(err), "start is not re-entrant")

	var nt *statemachine.NoTransitionError
	require.ErrorAs(t, err, &nt)
	assert.Equal(t, "running", nt.State)
	assert.Equal(t, "start", nt.Event)
}

func TestFire_Guards(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var allow atomic.Bool

	m := newMachine(t, statemachine.WithGuard(func(context.Context, statemachine.State, statemachine.Event) bool {
		return allow.Load()
	}))

	err := m.Fire(ctx, start)
	assert.True(t, statemachine.IsRejected(err))
	assert.False(t, m.CanFire(ctx, start))
	assert.Equal(t, idle, m.Current())

	allow.Store(true)
	require.NoError(t, m.Fire(ctx, start))
	assert.Equal(t, running, m.Current())
}

func TestFire_FirstPassingTransitionWins(t *testing.T) {
	t.Parallel()
	never := func(context.Context, statemachine.State, statemachine.Event) bool { return false }

	m := statemachine.MustNew(idle,
		statemachine.WithTransition(idle, done, start, statemachine.WithGuard(never)),
		statemachine.WithTransition(idle, running, start),
		statemachine.WithTransition(idle, done, start),
	)

	require.NoError(t, m.Fire(context.Background(), start))
	assert.Equal(t, running, m.Current())
}

func TestFire_Actions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []string
	record := func(_ context.Context, from, to statemachine.State, ev statemachine.Event) error {
		seen = append(seen, from.Name()+">"+ev.Name()+">"+to.Name())
		return nil
	}
	m := newMachine(t, statemachine.WithAction(record))
	require.NoError(t, m.Fire(ctx, start))
	assert.Equal(t, []string{"idle>start>running"}, seen)

	boom := errors.New("boom")
	failing := newMachine(t, statemachine.WithAction(func(context.Context, statemachine.State, statemachine.State, statemachine.Event) error {
		return boom
	}))
	err := failing.Fire(ctx, start)
	assert.ErrorIs(t, err, statemachine.ErrActionFailed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, idle, failing.Current(), "failed action keeps the state")
}

func TestFire_ConcurrentStartOnlyOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newMachine(t)

	var (
		wg  sync.WaitGroup
		won atomic.Int32
	)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.Fire(ctx, start) == nil {
				won.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), won.Load())
	assert.Equal(t, running, m.Current())
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	_, err := statemachine.New(nil)
	assert.ErrorIs(t, err, statemachine.ErrInvalidState)

	_, err = statemachine.New(idle, statemachine.WithTransition(idle, nil, start))
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)

	assert.Panics(t, func() {
		statemachine.MustNew(idle, statemachine.WithTransition(nil, running, start))
	})

	m := statemachine.MustNew(idle)
	assert.ErrorIs(t, m.Fire(context.Background(), nil), statemachine.ErrInvalidEvent)
	assert.False(t, m.CanFire(context.Background(), nil))
}
