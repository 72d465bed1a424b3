package form

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/messages"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Field tracks the value and validation state of a single input.
// A Field is not safe for concurrent use.
type Field struct {
	id    uuid.UUID
	opts  Options
	state *fieldState
	subs  listeners[func(FieldState)]
}

// NewField returns a Field with an empty value that validates with rules in
// order. The rules slice is copied.
func NewField(rules []validator.Rule, opts ...Option) *Field {
	s := newSettings(opts)
	id := uuid.New()
	log := s.logger.With(
		logger.Component("field"),
		logger.FormID(id),
		logger.Language(string(s.Language)),
	)

	return &Field{
		id:    id,
		opts:  s.Options,
		state: newFieldState(slices.Clone(rules), "", log),
	}
}

// ID returns the instance id used in log records.
func (f *Field) ID() uuid.UUID { return f.id }

// Language returns the configured language.
func (f *Field) Language() messages.Language { return f.opts.Language }

// Rules returns the built-in rules bound to the field's language.
func (f *Field) Rules(opts ...validator.RuleSetOption) validator.RuleSet {
	return validator.Rules(f.opts.Language, opts...)
}

// Set stores value without validating it or marking the field dirty.
func (f *Field) Set(value string) {
	f.state.setValue(value, false)
	f.notify()
}

// Validate validates the stored value.
func (f *Field) Validate() validator.Result {
	return f.ValidateValue(f.state.value)
}

// ValidateValue validates value instead of the stored value, which is left
// unchanged. The outcome is recorded in the field state.
func (f *Field) ValidateValue(value string) validator.Result {
	res := f.state.validate(value)
	f.notify()
	return res
}

// Change stores value and marks the field dirty. With ValidateOnChange the
// new value is validated immediately.
func (f *Field) Change(value string) {
	f.state.setValue(value, true)
	if f.opts.ValidateOnChange {
		f.state.validate(value)
	}
	f.notify()
}

// Blur marks the field touched. With ValidateOnBlur the stored value is
// validated.
func (f *Field) Blur() {
	f.state.touch()
	if f.opts.ValidateOnBlur {
		f.state.validate(f.state.value)
	}
	f.notify()
}

// Touch marks the field touched without validating.
func (f *Field) Touch() {
	f.state.touch()
	f.notify()
}

// Reset clears the value, the error and every flag.
func (f *Field) Reset() {
	f.state.reset()
	f.notify()
}

// HandleChange returns Change as a ChangeHandler.
func (f *Field) HandleChange() ChangeHandler { return f.Change }

// HandleBlur returns Blur as a BlurHandler.
func (f *Field) HandleBlur() BlurHandler { return f.Blur }

// State returns a snapshot of the field.
func (f *Field) State() FieldState { return f.state.snapshot() }

func (f *Field) Value() string        { return f.state.value }
func (f *Field) ErrorMessage() string { return f.state.err }
func (f *Field) IsValid() bool        { return f.state.current() == StatusValid }
func (f *Field) IsDirty() bool        { return f.state.dirty }
func (f *Field) IsTouched() bool      { return f.state.touched }
func (f *Field) Status() Status       { return f.state.current() }

// Subscribe registers fn to receive a snapshot after every change to the
// field. Subscribers run synchronously in subscription order. The returned
// function cancels the subscription.
func (f *Field) Subscribe(fn func(FieldState)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	return f.subs.add(fn)
}

func (f *Field) notify() {
	state := f.state.snapshot()
	f.subs.each(func(fn func(FieldState)) {
		fn(state)
	})
}

// LogValue implements slog.LogValuer.
func (f *Field) LogValue() slog.Value {
	st := f.State()
	return slog.GroupValue(
		slog.String("id", f.id.String()),
		logger.Status(st.Status.String()),
		slog.Bool("dirty", st.IsDirty),
		slog.Bool("touched", st.IsTouched),
	)
}
