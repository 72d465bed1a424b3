package form

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/statemachine"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Status is the validation status of a field.
type Status string

const (
	// StatusUnvalidated means no validation ran since creation or the last reset.
	StatusUnvalidated Status = "unvalidated"
	// StatusValid means the last validation passed.
	StatusValid Status = "valid"
	// StatusInvalid means the last validation failed or an error was set.
	StatusInvalid Status = "invalid"
)

// Name implements statemachine.State.
func (s Status) Name() string { return string(s) }

func (s Status) String() string { return string(s) }

const (
	eventPass statemachine.StringEvent = "pass"
	eventFail statemachine.StringEvent = "fail"
)

// FieldState is a snapshot of one field.
//
// IsValid is true only after a validation that passed, and Error is empty
// whenever IsValid is true.
type FieldState struct {
	Value     string
	Error     string
	IsValid   bool
	IsDirty   bool
	IsTouched bool
	Status    Status
}

// fieldState is the mutable state behind Field and every Form field.
type fieldState struct {
	rules   []validator.Rule
	initial string

	value   string
	err     string
	dirty   bool
	touched bool
	status  statemachine.StateMachine

	log *slog.Logger
}

func newFieldState(rules []validator.Rule, initial string, log *slog.Logger) *fieldState {
	s := &fieldState{
		rules:   rules,
		initial: initial,
		value:   initial,
		log:     log,
	}
	s.status = newStatusMachine(log)
	return s
}

// newStatusMachine builds the unvalidated/valid/invalid machine. Every status
// accepts both events, so Fire only fails on programming errors.
func newStatusMachine(log *slog.Logger) statemachine.StateMachine {
	var defs []statemachine.TransitionDef
	for _, from := range []Status{StatusUnvalidated, StatusValid, StatusInvalid} {
		defs = append(defs,
			statemachine.TransitionDef{From: from, To: StatusValid, Event: eventPass},
			statemachine.TransitionDef{From: from, To: StatusInvalid, Event: eventFail},
		)
	}

	return statemachine.MustNew(StatusUnvalidated,
		statemachine.WithTransitions(defs),
		statemachine.WithAction(func(ctx context.Context, from, to statemachine.State, event statemachine.Event, _ any) error {
			if from.Name() != to.Name() {
				log.DebugContext(ctx, "field status changed",
					slog.String("from", from.Name()),
					logger.Status(to.Name()),
				)
			}
			return nil
		}),
	)
}

func (s *fieldState) current() Status {
	return s.status.Current().(Status)
}

func (s *fieldState) fire(event statemachine.Event) {
	if err := s.status.Fire(context.Background(), event, nil); err != nil {
		s.log.Error("field status transition failed", logger.Error(err))
	}
}

func (s *fieldState) snapshot() FieldState {
	status := s.current()
	return FieldState{
		Value:     s.value,
		Error:     s.err,
		IsValid:   status == StatusValid,
		IsDirty:   s.dirty,
		IsTouched: s.touched,
		Status:    status,
	}
}

// validate runs the rules against value in order and records the outcome.
// The stored value is not changed. The field is always marked dirty.
func (s *fieldState) validate(value string) validator.Result {
	s.dirty = true

	for i, rule := range s.rules {
		if rule == nil {
			continue
		}
		res := rule(value)
		if res.Valid {
			continue
		}

		s.err = res.Error
		s.fire(eventFail)
		s.log.Debug("validation failed",
			logger.RuleIndex(i),
			logger.ValidationMessage(res.Error),
		)
		return res
	}

	s.err = ""
	s.fire(eventPass)
	return validator.Pass()
}

func (s *fieldState) setValue(value string, markDirty bool) {
	s.value = value
	if markDirty {
		s.dirty = true
	}
}

// setError marks the field invalid with msg until the next validation.
func (s *fieldState) setError(msg string) {
	s.err = msg
	s.fire(eventFail)
	s.log.Debug("field error set", logger.ValidationMessage(msg))
}

func (s *fieldState) touch() {
	s.touched = true
}

// reset restores the configured initial value and clears flags and error.
func (s *fieldState) reset() {
	s.value = s.initial
	s.err = ""
	s.dirty = false
	s.touched = false
	s.status.Reset()
	s.log.Debug("field reset")
}
