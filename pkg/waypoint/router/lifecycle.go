package router

import (
	"context"
	"fmt"
	"sync"
)

// State is the lifecycle position of a view instance. States only move
// forward; once destroyed an instance ignores every further call.
type State int

const (
	StateCreated State = iota
	StateRendering
	StateRendered
	StateInitializing
	StateReady
	StateCleaningUp
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRendering:
		return "rendering"
	case StateRendered:
		return "rendered"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateCleaningUp:
		return "cleaning-up"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// instance wraps a view with the state machine the router drives it through.
// The mutex only guards state; view methods run without it held so a
// teardown can proceed while render is suspended.
type instance struct {
	view  View
	match Match

	mu    sync.Mutex
	state State
}

func newInstance(view View, m Match) *instance {
	return &instance{view: view, match: m, state: StateCreated}
}

func (i *instance) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

func (i *instance) destroyed() bool {
	return i.State() >= StateCleaningUp
}

// advance moves from one state to the next, refusing when the instance is
// not where the caller expects it to be.
func (i *instance) advance(from, to State) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.state != from {
		return false
	}
	i.state = to
	return true
}

func (i *instance) render(ctx context.Context) (Content, error) {
	if !i.advance(StateCreated, StateRendering) {
		return NoContent, nil
	}
	var content Content
	err := guard(PhaseRender, i.match.Path, func() error {
		var err error
		content, err = i.view.Render(ctx)
		return err
	})
	i.advance(StateRendering, StateRendered)
	return content, err
}

// initialize runs the optional Initialize hook. Views without one go
// straight to ready.
func (i *instance) initialize(ctx context.Context) error {
	hook, ok := i.view.(Initializer)
	if !ok {
		i.advance(StateRendered, StateReady)
		return nil
	}
	if !i.advance(StateRendered, StateInitializing) {
		return nil
	}
	err := guard(PhaseInitialize, i.match.Path, func() error {
		return hook.Initialize(ctx)
	})
	i.advance(StateInitializing, StateReady)
	return err
}

// cleanup runs the optional Cleanup hook exactly once. The instance is
// destroyed afterwards whether or not the hook failed.
func (i *instance) cleanup(ctx context.Context) error {
	i.mu.Lock()
	if i.state >= StateCleaningUp {
		i.mu.Unlock()
		return nil
	}
	i.state = StateCleaningUp
	i.mu.Unlock()

	var err error
	if c, ok := i.view.(Cleaner); ok {
		err = guard(PhaseCleanup, i.match.Path, func() error {
			return c.Cleanup(ctx)
		})
	}

	i.mu.Lock()
	i.state = StateDestroyed
	i.mu.Unlock()
	return err
}

// guard runs view code, converting errors and panics into LifecycleErrors.
func guard(phase Phase, path string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &LifecycleError{Phase: phase, Path: path, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	if err := fn(); err != nil {
		return &LifecycleError{Phase: phase, Path: path, Err: err}
	}
	return nil
}

func construct(factory Factory, m Match) (view View, err error) {
	err = guard(PhaseConstruct, m.Path, func() error {
		var ferr error
		view, ferr = factory(m)
		if ferr != nil {
			return ferr
		}
		if view == nil {
			return ErrNilView
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
