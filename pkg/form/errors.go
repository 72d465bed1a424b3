package form

import "errors"

var (
	// ErrUnknownField is returned when an operation names a field the form
	// was not configured with.
	ErrUnknownField = errors.New("unknown field")

	// ErrDuplicateField is returned by New when two fields share a name.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrEmptyFieldName is returned by New when a field has no name.
	ErrEmptyFieldName = errors.New("empty field name")

	// ErrLoadingOptions is returned by LoadOptions when the environment
	// cannot be parsed.
	ErrLoadingOptions = errors.New("failed to load form options")
)
