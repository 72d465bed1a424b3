package messages

import (
	"slices"

	"golang.org/x/text/language"
)

// Language is a supported message locale.
type Language string

const (
	Korean  Language = "ko"
	English Language = "en"

	DefaultLanguage = Korean
)

var (
	supported = []Language{Korean, English}
	matcher   = language.NewMatcher([]language.Tag{language.Korean, language.English})
)

// Languages returns the supported languages, default first.
func Languages() []Language {
	return slices.Clone(supported)
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == Korean || l == English
}

// OrDefault returns l if it is supported and DefaultLanguage otherwise.
func (l Language) OrDefault() Language {
	if l.Valid() {
		return l
	}
	return DefaultLanguage
}

// ParseLanguage parses an exact language code such as "ko" or "EN".
// Region subtags are accepted ("en-US" -> English).
func ParseLanguage(s string) (Language, bool) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	l := Language(base.String())
	return l, l.Valid()
}

// Match picks the best supported language for the given preferences. Each
// preference may be a single tag or a full Accept-Language value. Unparsable
// preferences are skipped and DefaultLanguage is returned when nothing matches.
func Match(prefs ...string) Language {
	var tags []language.Tag
	for _, p := range prefs {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return DefaultLanguage
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	return supported[idx]
}
