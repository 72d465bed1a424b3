// Package form provides stateful controllers that bind validation rules to
// user input: Field for a single input and Form for a fixed set of named
// inputs.
//
// Each field tracks its value, its current error message and three flags.
// IsDirty is set once the value was changed or validated. IsTouched is set
// once the input lost focus. IsValid is true only after a validation that
// passed. The underlying Status distinguishes a field that was never
// validated from one that failed.
//
// Rules run in order and stop at the first failure, so the stored error is
// always the message of the first rule that rejected the value.
//
//	rules := validator.Rules(messages.English)
//	f, err := form.New([]form.FieldConfig{
//	    {Name: "email", Rules: []validator.Rule{rules.Required(), rules.Email()}},
//	    {Name: "name", Rules: []validator.Rule{rules.Required(), rules.MinLength(2)}},
//	}, form.WithValidateOnBlur(true))
//	if err != nil {
//	    return err
//	}
//
//	_ = f.SetValue("email", "user@example.com")
//	if !f.ValidateAll() {
//	    return f.Errors()
//	}
//
// # Event handlers
//
// HandleChange and HandleBlur return closures bound to one field, suitable
// for wiring to UI callbacks. Adapt converts a ChangeHandler into a handler
// for any event type that carries the new value.
//
// # Options
//
// Automatic validation is off by default. Enable it per controller with
// WithValidateOnChange and WithValidateOnBlur, or load the defaults from the
// environment with LoadOptions:
//
//	FORM_VALIDATE_ON_CHANGE=true
//	FORM_VALIDATE_ON_BLUR=true
//	FORM_LANGUAGE=en
//
// Controllers are not safe for concurrent use. Subscribers registered with
// Subscribe run synchronously after every state change.
package form
