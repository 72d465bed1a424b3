package statemachine

import "context"

// State represents a state in the state machine.
type State interface {
	Name() string
}

// Event represents an event that can trigger a state transition.
type Event interface {
	Name() string
}

// Action runs during a transition, before the state changes.
// Returning an error prevents the transition.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Transition defines a state change triggered by an event.
type Transition struct {
	From    State
	To      State
	Event   Event
	Actions []Action
}

// StateMachine defines the finite state machine operations.
type StateMachine interface {
	Current() State
	AddTransition(from, to State, event Event, actions ...Action) error
	Fire(ctx context.Context, event Event, data any) error
	CanFire(event Event) bool
	Reset()
}

// StringState provides a simple string-based state implementation.
type StringState string

func (s StringState) Name() string {
	return string(s)
}

// StringEvent provides a simple string-based event implementation.
type StringEvent string

func (e StringEvent) Name() string {
	return string(e)
}
