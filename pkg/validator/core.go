package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Result is the outcome of running a rule against a value.
// Error is empty whenever Valid is true.
type Result struct {
	Valid bool
	Error string
}

// Pass returns a successful Result.
func Pass() Result {
	return Result{Valid: true}
}

// Fail returns a failed Result carrying msg.
func Fail(msg string) Result {
	return Result{Error: msg}
}

// Err converts r to an error. It returns nil for a valid result and an error
// wrapping ErrValidationFailed otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	if r.Error == "" {
		return ErrValidationFailed
	}
	return fmt.Errorf("%w: %s", ErrValidationFailed, r.Error)
}

// Rule validates a single string value.
type Rule func(value string) Result

// Validate runs rules against value in order and returns the first failed
// Result. It returns Pass when every rule accepts the value, including when
// rules is empty.
func Validate(value string, rules ...Rule) Result {
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if res := rule(value); !res.Valid {
			return res
		}
	}
	return Pass()
}

// ValidationError is the failure reported for a single named field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is match ValidationErrors against ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(field, message string) {
	*ve = append(*ve, ValidationError{Field: field, Message: message})
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the names of failed fields in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// FieldCheck pairs a named value with the rules it must pass.
type FieldCheck struct {
	Field string
	Value string
	Rules []Rule
}

// Check builds a FieldCheck for Apply.
func Check(field, value string, rules ...Rule) FieldCheck {
	return FieldCheck{Field: field, Value: value, Rules: rules}
}

// Apply validates every check and collects the first failure of each field.
// It returns nil when all checks pass and ValidationErrors otherwise.
func Apply(checks ...FieldCheck) error {
	var errs ValidationErrors

	for _, c := range checks {
		if res := Validate(c.Value, c.Rules...); !res.Valid {
			errs.Add(c.Field, res.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
