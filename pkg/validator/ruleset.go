package validator

import "github.com/dmitrymomot/formkit/pkg/messages"

// MessageProvider resolves the text of a failed built-in rule.
// *messages.Catalog satisfies it.
type MessageProvider interface {
	Message(kind messages.Kind, lang messages.Language, args ...int) string
}

// RuleSet builds the built-in rules for one language.
// The zero value uses the default language and catalog.
type RuleSet struct {
	lang     messages.Language
	provider MessageProvider
}

// RuleSetOption configures a RuleSet.
type RuleSetOption func(*RuleSet)

// WithMessages sets the provider used to resolve failure messages.
func WithMessages(p MessageProvider) RuleSetOption {
	return func(rs *RuleSet) {
		rs.provider = p
	}
}

// Rules returns a RuleSet whose rules report messages in lang.
// Unsupported languages fall back to messages.DefaultLanguage.
func Rules(lang messages.Language, opts ...RuleSetOption) RuleSet {
	rs := RuleSet{lang: lang.OrDefault()}
	for _, opt := range opts {
		opt(&rs)
	}
	return rs
}

// Language returns the language failure messages are reported in.
func (rs RuleSet) Language() messages.Language {
	return rs.lang.OrDefault()
}

func (rs RuleSet) message(kind messages.Kind, args ...int) string {
	if rs.provider == nil {
		return messages.Message(kind, rs.Language(), args...)
	}
	return rs.provider.Message(kind, rs.Language(), args...)
}

// check builds a rule that fails with the kind's message when ok rejects the value.
func (rs RuleSet) check(kind messages.Kind, ok func(string) bool, args ...int) Rule {
	return func(value string) Result {
		if ok(value) {
			return Pass()
		}
		return Fail(rs.message(kind, args...))
	}
}

// Package-level shortcuts bound to an explicit language.

func Required(lang messages.Language) Rule     { return Rules(lang).Required() }
func Email(lang messages.Language) Rule        { return Rules(lang).Email() }
func Phone(lang messages.Language) Rule        { return Rules(lang).Phone() }
func Password(lang messages.Language) Rule     { return Rules(lang).Password() }
func Number(lang messages.Language) Rule       { return Rules(lang).Number() }
func Alphanumeric(lang messages.Language) Rule { return Rules(lang).Alphanumeric() }
func URL(lang messages.Language) Rule          { return Rules(lang).URL() }
func KoreanOnly(lang messages.Language) Rule   { return Rules(lang).KoreanOnly() }
func EnglishOnly(lang messages.Language) Rule  { return Rules(lang).EnglishOnly() }
func CreditCard(lang messages.Language) Rule   { return Rules(lang).CreditCard() }
func Date(lang messages.Language) Rule         { return Rules(lang).Date() }

func MinLength(min int, lang messages.Language) Rule { return Rules(lang).MinLength(min) }
func MaxLength(max int, lang messages.Language) Rule { return Rules(lang).MaxLength(max) }
