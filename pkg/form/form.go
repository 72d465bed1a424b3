package form

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/messages"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// FieldConfig declares one form field.
type FieldConfig struct {
	Name         string
	Rules        []validator.Rule
	InitialValue string
}

// Form tracks a fixed set of named fields and derives whole-form validity
// from them. A Form is not safe for concurrent use.
type Form struct {
	id     uuid.UUID
	opts   Options
	log    *slog.Logger
	order  []string
	fields map[string]*fieldState
	subs   listeners[func(string, FieldState)]
}

// New builds a Form from fields. Field names must be non-empty and unique.
// The order of fields is the order ValidateAll, Names and Errors use.
func New(fields []FieldConfig, opts ...Option) (*Form, error) {
	s := newSettings(opts)
	id := uuid.New()
	log := s.logger.With(
		logger.Component("form"),
		logger.FormID(id),
		logger.Language(string(s.Language)),
	)

	f := &Form{
		id:     id,
		opts:   s.Options,
		log:    log,
		order:  make([]string, 0, len(fields)),
		fields: make(map[string]*fieldState, len(fields)),
	}

	for i, cfg := range fields {
		if cfg.Name == "" {
			return nil, fmt.Errorf("%w: fields[%d]", ErrEmptyFieldName, i)
		}
		if _, ok := f.fields[cfg.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, cfg.Name)
		}
		f.order = append(f.order, cfg.Name)
		f.fields[cfg.Name] = newFieldState(
			slices.Clone(cfg.Rules),
			cfg.InitialValue,
			log.With(logger.Field(cfg.Name)),
		)
	}

	return f, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(fields []FieldConfig, opts ...Option) *Form {
	f, err := New(fields, opts...)
	if err != nil {
		panic(fmt.Sprintf("form: %v", err))
	}
	return f
}

// ID returns the instance id used in log records.
func (f *Form) ID() uuid.UUID { return f.id }

// Language returns the configured language.
func (f *Form) Language() messages.Language { return f.opts.Language }

// Rules returns the built-in rules bound to the form's language.
func (f *Form) Rules(opts ...validator.RuleSetOption) validator.RuleSet {
	return validator.Rules(f.opts.Language, opts...)
}

// Options returns the options the form was built with.
func (f *Form) Options() Options { return f.opts }

func (f *Form) field(name string) (*fieldState, error) {
	s, ok := f.fields[name]
	if !ok {
		f.log.Warn("unknown field", logger.Field(name))
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return s, nil
}

// SetValue stores value and marks the field dirty without validating.
func (f *Form) SetValue(name, value string) error {
	s, err := f.field(name)
	if err != nil {
		return err
	}
	s.setValue(value, true)
	f.notify(name, s)
	return nil
}

// SetValues calls SetValue for every entry, in field order. Nothing is
// changed if any name is unknown.
func (f *Form) SetValues(values map[string]string) error {
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if _, err := f.field(name); err != nil {
			return err
		}
	}
	for _, name := range f.order {
		if v, ok := values[name]; ok {
			s := f.fields[name]
			s.setValue(v, true)
			f.notify(name, s)
		}
	}
	return nil
}

// SetError marks the field invalid with msg. The next validation of the
// field replaces it.
func (f *Form) SetError(name, msg string) error {
	s, err := f.field(name)
	if err != nil {
		return err
	}
	s.setError(msg)
	f.notify(name, s)
	return nil
}

// Validate runs the field's rules against its stored value, stopping at the
// first failure, and reports whether it passed.
func (f *Form) Validate(name string) (bool, error) {
	s, err := f.field(name)
	if err != nil {
		return false, err
	}
	res := s.validate(s.value)
	f.notify(name, s)
	return res.Valid, nil
}

// ValidateAll validates every field in configuration order and reports
// whether all of them passed. A failing field does not stop the others from
// being validated.
func (f *Form) ValidateAll() bool {
	allValid := true
	for _, name := range f.order {
		s := f.fields[name]
		if !s.validate(s.value).Valid {
			allValid = false
		}
		f.notify(name, s)
	}
	return allValid
}

// Touch marks the field touched without validating.
func (f *Form) Touch(name string) error {
	s, err := f.field(name)
	if err != nil {
		return err
	}
	s.touch()
	f.notify(name, s)
	return nil
}

// Reset restores the field's initial value and clears its flags and error.
func (f *Form) Reset(name string) error {
	s, err := f.field(name)
	if err != nil {
		return err
	}
	s.reset()
	f.notify(name, s)
	return nil
}

// ResetAll restores every field to the state it had when the form was built.
func (f *Form) ResetAll() {
	for _, name := range f.order {
		s := f.fields[name]
		s.reset()
		f.notify(name, s)
	}
}

// HandleChange returns a handler that sets the field's value and, with
// ValidateOnChange, validates the new value.
func (f *Form) HandleChange(name string) (ChangeHandler, error) {
	s, err := f.field(name)
	if err != nil {
		return nil, err
	}
	return func(value string) {
		s.setValue(value, true)
		if f.opts.ValidateOnChange {
			s.validate(value)
		}
		f.notify(name, s)
	}, nil
}

// HandleBlur returns a handler that marks the field touched and, with
// ValidateOnBlur, validates its stored value.
func (f *Form) HandleBlur(name string) (BlurHandler, error) {
	s, err := f.field(name)
	if err != nil {
		return nil, err
	}
	return func() {
		s.touch()
		if f.opts.ValidateOnBlur {
			s.validate(s.value)
		}
		f.notify(name, s)
	}, nil
}

// IsValid reports whether every field passed its last validation.
// It is recomputed on each call, so a new or reset form is not valid.
func (f *Form) IsValid() bool {
	for _, s := range f.fields {
		if s.current() != StatusValid {
			return false
		}
	}
	return true
}

// IsDirty reports whether any field is dirty.
func (f *Form) IsDirty() bool {
	for _, s := range f.fields {
		if s.dirty {
			return true
		}
	}
	return false
}

// Field returns a snapshot of the named field.
func (f *Form) Field(name string) (FieldState, error) {
	s, err := f.field(name)
	if err != nil {
		return FieldState{}, err
	}
	return s.snapshot(), nil
}

// Fields returns snapshots of every field keyed by name.
func (f *Form) Fields() map[string]FieldState {
	out := make(map[string]FieldState, len(f.fields))
	for name, s := range f.fields {
		out[name] = s.snapshot()
	}
	return out
}

// Names returns the field names in configuration order.
func (f *Form) Names() []string {
	return slices.Clone(f.order)
}

// Values returns the stored value of every field keyed by name.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for name, s := range f.fields {
		out[name] = s.value
	}
	return out
}

// Errors returns the invalid fields and their messages in configuration
// order. It is empty when no field is invalid.
func (f *Form) Errors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, name := range f.order {
		if s := f.fields[name]; s.current() == StatusInvalid {
			errs.Add(name, s.err)
		}
	}
	return errs
}

// Subscribe registers fn to receive the name and a snapshot of a field after
// every change to it. Subscribers run synchronously in subscription order.
// The returned function cancels the subscription.
func (f *Form) Subscribe(fn func(name string, state FieldState)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	return f.subs.add(fn)
}

func (f *Form) notify(name string, s *fieldState) {
	state := s.snapshot()
	f.subs.each(func(fn func(string, FieldState)) {
		fn(name, state)
	})
}
