// Package messages is the localized error-message catalog used by the
// validation rules.
//
// Messages are addressed by a Kind (required, email, minLength, ...) and a
// Language. Two languages are supported: Korean, the default, and English.
// Kinds that take a numeric argument (minLength, maxLength) receive it through
// the variadic args of Message:
//
//	msg := messages.Default().Message(messages.KindMinLength, messages.English, 3)
//	// "Please enter at least 3 characters"
//
// The built-in catalog is loaded once from embedded YAML files and is
// read-only afterwards; Default returns the shared instance. New builds a
// catalog from any i18n.TranslationAdapter, which allows replacing the
// wording while keeping the same keys ("validation.<kind>").
//
// Match negotiates a supported Language from BCP 47 tags or Accept-Language
// header values.
package messages
