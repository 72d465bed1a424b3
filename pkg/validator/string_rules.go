package validator

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/formkit/pkg/messages"
)

// Required rejects values that are empty after trimming whitespace.
func (rs RuleSet) Required() Rule {
	return rs.check(messages.KindRequired, func(v string) bool {
		return strings.TrimSpace(v) != ""
	})
}

// MinLength rejects values shorter than min characters.
// Length is counted in Unicode code points.
func (rs RuleSet) MinLength(min int) Rule {
	return rs.check(messages.KindMinLength, func(v string) bool {
		return utf8.RuneCountInString(v) >= min
	}, min)
}

// MaxLength rejects values longer than max characters.
func (rs RuleSet) MaxLength(max int) Rule {
	return rs.check(messages.KindMaxLength, func(v string) bool {
		return utf8.RuneCountInString(v) <= max
	}, max)
}
