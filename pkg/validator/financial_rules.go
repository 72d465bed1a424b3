package validator

import (
	"github.com/dmitrymomot/formkit/pkg/messages"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

var normalizeCardNumber = sanitizer.Compose(
	sanitizer.RemoveWhitespace,
	sanitizer.RemoveChars("-"),
)

// CreditCard accepts card numbers that pass the Luhn checksum.
// Spaces and dashes between digit groups are ignored.
func (rs RuleSet) CreditCard() Rule {
	return rs.check(messages.KindCreditCard, func(v string) bool {
		digits := normalizeCardNumber(v)
		return numberRegex.MatchString(digits) && luhnValid(digits)
	})
}

// luhnValid expects a non-empty string of ASCII digits.
func luhnValid(digits string) bool {
	sum := 0
	double := false

	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}
