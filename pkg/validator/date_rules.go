package validator

import (
	"regexp"
	"time"

	"github.com/dmitrymomot/formkit/pkg/messages"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date accepts calendar dates written as YYYY-MM-DD.
// Impossible dates such as 2024-02-30 are rejected.
func (rs RuleSet) Date() Rule {
	return rs.check(messages.KindDate, func(v string) bool {
		if !dateRegex.MatchString(v) {
			return false
		}
		_, err := time.Parse(time.DateOnly, v)
		return err == nil
	})
}
