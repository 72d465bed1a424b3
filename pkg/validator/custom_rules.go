package validator

import (
	"regexp"
	"strings"
)

// Pattern accepts values matched by re and fails with message otherwise.
func Pattern(re *regexp.Regexp, message string) Rule {
	return Func(re.MatchString, message)
}

// MatchesRegex compiles pattern and returns a Pattern rule.
// It panics if pattern is not a valid regular expression.
func MatchesRegex(pattern, message string) Rule {
	return Pattern(regexp.MustCompile(pattern), message)
}

// Func adapts a predicate into a Rule that fails with message.
func Func(ok func(string) bool, message string) Rule {
	return func(value string) Result {
		if ok(value) {
			return Pass()
		}
		return Fail(message)
	}
}

// Optional runs rules only when value is not blank. Blank values pass.
func Optional(rules ...Rule) Rule {
	return func(value string) Result {
		if strings.TrimSpace(value) == "" {
			return Pass()
		}
		return Validate(value, rules...)
	}
}

// Normalize applies transform before running rules. The caller's value is
// not modified.
func Normalize(transform func(string) string, rules ...Rule) Rule {
	return func(value string) Result {
		return Validate(transform(value), rules...)
	}
}
