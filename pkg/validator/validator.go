package validator

import "github.com/dmitrymomot/formkit/pkg/messages"

// Validator holds a language and an ordered list of rules for one-shot
// validation outside of a form.
type Validator struct {
	lang  messages.Language
	rules []Rule
}

// New returns an empty Validator. An unsupported lang is replaced by
// messages.DefaultLanguage.
func New(lang messages.Language) *Validator {
	return &Validator{lang: lang.OrDefault()}
}

// SetLanguage changes the language returned by Language and used by Rules.
// Rules already added keep the language they were built with.
func (v *Validator) SetLanguage(lang messages.Language) *Validator {
	v.lang = lang.OrDefault()
	return v
}

// Language returns the current language.
func (v *Validator) Language() messages.Language {
	return v.lang
}

// Rules returns a RuleSet bound to the current language.
func (v *Validator) Rules(opts ...RuleSetOption) RuleSet {
	return Rules(v.lang, opts...)
}

// AddRule appends rules to the end of the list.
func (v *Validator) AddRule(rules ...Rule) *Validator {
	v.rules = append(v.rules, rules...)
	return v
}

// Validate runs the rules in insertion order and stops at the first failure.
func (v *Validator) Validate(value string) Result {
	return Validate(value, v.rules...)
}

// Reset removes every rule. The language is kept.
func (v *Validator) Reset() *Validator {
	v.rules = nil
	return v
}
