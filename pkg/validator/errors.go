package validator

import "errors"

// ErrValidationFailed is matched by every error produced from a failed Result
// and by ValidationErrors.
var ErrValidationFailed = errors.New("validation failed")
