package statemachine

import (
	"context"
	"fmt"
)

// SimpleStateMachine is an in-memory state machine keyed by
// [fromState][event] for constant-time lookups.
type SimpleStateMachine struct {
	initialState State
	currentState State
	transitions  map[string]map[string]Transition
}

func newSimpleStateMachine(initialState State) *SimpleStateMachine {
	return &SimpleStateMachine{
		initialState: initialState,
		currentState: initialState,
		transitions:  make(map[string]map[string]Transition),
	}
}

func (sm *SimpleStateMachine) Current() State {
	return sm.currentState
}

// AddTransition registers a transition. A later registration for the same
// from/event pair replaces the earlier one.
func (sm *SimpleStateMachine) AddTransition(from, to State, event Event, actions ...Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	byEvent, ok := sm.transitions[from.Name()]
	if !ok {
		byEvent = make(map[string]Transition)
		sm.transitions[from.Name()] = byEvent
	}

	byEvent[event.Name()] = Transition{
		From:    from,
		To:      to,
		Event:   event,
		Actions: actions,
	}
	return nil
}

func (sm *SimpleStateMachine) lookup(event Event) (Transition, bool) {
	byEvent, ok := sm.transitions[sm.currentState.Name()]
	if !ok {
		return Transition{}, false
	}
	t, ok := byEvent[event.Name()]
	return t, ok
}

func (sm *SimpleStateMachine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	t, ok := sm.lookup(event)
	if !ok {
		return NewErrNoTransitionAvailable(sm.currentState.Name(), event.Name())
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, sm.currentState, t.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	sm.currentState = t.To
	return nil
}

func (sm *SimpleStateMachine) CanFire(event Event) bool {
	if event == nil {
		return false
	}
	_, ok := sm.lookup(event)
	return ok
}

// Reset moves the machine back to its initial state without running actions.
func (sm *SimpleStateMachine) Reset() {
	sm.currentState = sm.initialState
}
