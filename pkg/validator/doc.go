// Package validator provides single-value validation rules with localized
// error messages, a small aggregator that runs an ordered rule list, and the
// ValidationErrors collection used to report per-field failures.
//
// A Rule is a plain function from the input string to a Result. Rules are
// pure: the same input always yields the same Result, and a failed Result
// always carries a non-empty message.
//
//	rules := validator.Rules(messages.English)
//	res := validator.Validate("ab",
//	    rules.Required(),
//	    rules.MinLength(3),
//	)
//	// res.Valid == false, res.Error == "Please enter at least 3 characters"
//
// Rules stop at the first failure. Validate, Validator.Validate and the form
// controllers in package form all share this short-circuit order, so the
// reported message always belongs to the first rule that rejected the value.
//
// # Messages
//
// Built-in rules resolve their message through a MessageProvider when they
// fail. The default provider is the embedded catalog from package messages
// (Korean by default, English available). Use WithMessages to plug in a
// different catalog, for example one loaded from files with package i18n.
//
// # Aggregating field errors
//
// Apply checks several named values at once and returns ValidationErrors,
// which implements error and matches ErrValidationFailed with errors.Is:
//
//	err := validator.Apply(
//	    validator.Check("email", in.Email, rules.Required(), rules.Email()),
//	    validator.Check("phone", in.Phone, rules.Phone()),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("email")
//	}
package validator
