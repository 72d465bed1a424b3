// Package formkit is a small input-validation toolkit for Go services and UI
// bindings.
//
// The module is split into independently importable packages:
//
//   - pkg/validator: single-value rules (required, email, Korean mobile
//     phone, password strength, length bounds, character classes, URL,
//     credit card, date) and a rule aggregator
//   - pkg/messages: the Korean and English message catalog used by the rules
//   - pkg/form: stateful controllers for one field or a set of named fields
//   - pkg/i18n: the translation loader behind the catalog
//   - pkg/statemachine: the status machine each field runs on
//   - pkg/sanitizer: input normalizers applied before matching
//   - pkg/logger and pkg/config: slog and environment helpers
//
// Basic usage:
//
//	rules := validator.Rules(messages.English)
//	f := form.MustNew([]form.FieldConfig{
//		{Name: "email", Rules: []validator.Rule{rules.Required(), rules.Email()}},
//		{Name: "phone", Rules: []validator.Rule{rules.Phone()}},
//	}, form.WithValidateOnBlur(true))
//
//	onBlur, _ := f.HandleBlur("email")
//	onBlur()
//
//	if !f.ValidateAll() {
//		return f.Errors()
//	}
package formkit
