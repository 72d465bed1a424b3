package statemachine

import (
	"errors"
	"fmt"
)

// Option configures a state machine during construction.
type Option func(*SimpleStateMachine) error

// TransitionDef defines a transition between states.
type TransitionDef struct {
	From    State
	To      State
	Event   Event
	Actions []Action
}

// New creates a new state machine with the given initial state and options.
func New(initialState State, opts ...Option) (StateMachine, error) {
	if initialState == nil {
		return nil, errors.New("initial state cannot be nil")
	}

	sm := newSimpleStateMachine(initialState)
	for _, opt := range opts {
		if err := opt(sm); err != nil {
			return nil, err
		}
	}
	return sm, nil
}

// MustNew is like New but panics on a bad transition table.
func MustNew(initialState State, opts ...Option) StateMachine {
	sm, err := New(initialState, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return sm
}

// WithTransition adds a single transition to the state machine.
func WithTransition(from, to State, event Event, actions ...Action) Option {
	return func(sm *SimpleStateMachine) error {
		return sm.AddTransition(from, to, event, actions...)
	}
}

// WithTransitions adds every transition in defs, in order.
func WithTransitions(defs []TransitionDef) Option {
	return func(sm *SimpleStateMachine) error {
		for i, t := range defs {
			if err := sm.AddTransition(t.From, t.To, t.Event, t.Actions...); err != nil {
				return fmt.Errorf("failed to add transition[%d] %s->%s on %s: %w",
					i, nameOf(t.From), nameOf(t.To), nameOf(t.Event), err)
			}
		}
		return nil
	}
}

// WithAction appends an action to every transition already registered.
// Place it after the transition options it should apply to.
func WithAction(action Action) Option {
	return func(sm *SimpleStateMachine) error {
		if action == nil {
			return nil
		}
		for _, byEvent := range sm.transitions {
			for name, t := range byEvent {
				t.Actions = append(t.Actions, action)
				byEvent[name] = t
			}
		}
		return nil
	}
}

func nameOf(v interface{ Name() string }) string {
	if v == nil {
		return "<nil>"
	}
	return v.Name()
}
