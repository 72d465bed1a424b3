package validator

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/formkit/pkg/messages"
)

const (
	passwordMinLength    = 8
	passwordSpecialChars = `!@#$%^&*(),.?":{}|<>`
)

// Password requires at least 8 characters including an ASCII letter, a digit
// and one of !@#$%^&*(),.?":{}|<>.
func (rs RuleSet) Password() Rule {
	return rs.check(messages.KindPassword, isStrongPassword)
}

func isStrongPassword(v string) bool {
	if utf8.RuneCountInString(v) < passwordMinLength {
		return false
	}

	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecialChars, r):
			hasSpecial = true
		}
	}

	return hasLetter && hasDigit && hasSpecial
}
