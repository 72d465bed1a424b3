package validator

import (
	"net/url"
	"regexp"

	"github.com/dmitrymomot/formkit/pkg/messages"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// space matches what browsers treat as whitespace: ASCII spaces plus \v,
// Unicode separators such as U+00A0 and U+3000, and the BOM.
const space = `\s\v\p{Z}\x{FEFF}`

var (
	emailRegex        = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)
	phoneRegex        = regexp.MustCompile(`^(01[0-9])-?([0-9]{3,4})-?([0-9]{4})$`)
	numberRegex       = regexp.MustCompile(`^[0-9]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	koreanOnlyRegex   = regexp.MustCompile(`^[ㄱ-ㅎ가-힣` + space + `]+$`)
	englishOnlyRegex  = regexp.MustCompile(`^[a-zA-Z` + space + `]+$`)
)

// Email accepts "local@domain.tld" shaped values without whitespace.
func (rs RuleSet) Email() Rule {
	return rs.check(messages.KindEmail, emailRegex.MatchString)
}

// Phone accepts Korean mobile numbers such as 010-1234-5678 or 01012345678.
// Whitespace is ignored.
func (rs RuleSet) Phone() Rule {
	return rs.check(messages.KindPhone, func(v string) bool {
		return phoneRegex.MatchString(sanitizer.RemoveWhitespace(v))
	})
}

// Number accepts one or more ASCII digits.
func (rs RuleSet) Number() Rule {
	return rs.check(messages.KindNumber, numberRegex.MatchString)
}

// Alphanumeric accepts one or more ASCII letters and digits.
func (rs RuleSet) Alphanumeric() Rule {
	return rs.check(messages.KindAlphanumeric, alphanumericRegex.MatchString)
}

// URL accepts absolute URLs with a scheme and a host.
func (rs RuleSet) URL() Rule {
	return rs.check(messages.KindURL, func(v string) bool {
		u, err := url.ParseRequestURI(v)
		if err != nil {
			return false
		}
		return u.Scheme != "" && u.Host != ""
	})
}

// KoreanOnly accepts Hangul syllables, Hangul jamo and whitespace.
func (rs RuleSet) KoreanOnly() Rule {
	return rs.check(messages.KindKoreanOnly, koreanOnlyRegex.MatchString)
}

// EnglishOnly accepts ASCII letters and whitespace.
func (rs RuleSet) EnglishOnly() Rule {
	return rs.check(messages.KindEnglishOnly, englishOnlyRegex.MatchString)
}
