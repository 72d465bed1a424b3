package form_test

import (
	"github.com/dmitrymomot/formkit/pkg/messages"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

var en = validator.Rules(messages.English)

// spy wraps rule and counts its invocations.
func spy(rule validator.Rule, calls *int) validator.Rule {
	return func(value string) validator.Result {
		*calls++
		return rule(value)
	}
}

func failWith(msg string) validator.Rule {
	return func(string) validator.Result {
		return validator.Fail(msg)
	}
}

func pass(string) validator.Result {
	return validator.Pass()
}
