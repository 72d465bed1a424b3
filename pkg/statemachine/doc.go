// Package statemachine provides a small finite state machine used by formkit
// to track the validation status of each field.
//
// A machine is built from an initial state and a transition table. Firing an
// event looks up the transition registered for the current state, runs its
// actions in order and moves to the target state. An action returning an error
// aborts the transition and leaves the current state unchanged.
//
//	const (
//	    Unvalidated = statemachine.StringState("unvalidated")
//	    Valid       = statemachine.StringState("valid")
//	    Pass        = statemachine.StringEvent("pass")
//	)
//
//	sm := statemachine.MustNew(Unvalidated,
//	    statemachine.WithTransition(Unvalidated, Valid, Pass),
//	)
//	_ = sm.Fire(ctx, Pass, nil)
//
// Machines are not safe for concurrent use. The form controllers own one
// machine per field and drive it from the caller's goroutine only.
//
// ErrNoTransitionAvailable is returned for events the table does not cover in
// the current state; IsNoTransitionAvailableError matches it.
package statemachine
