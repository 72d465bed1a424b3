package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// DefaultLanguage is used when no WithDefaultLanguage option is given.
const DefaultLanguage = "en"

// Translator resolves translation keys to localized strings.
// It never mutates its tables after construction.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Any("languages", t.SupportedLanguages()),
	)
	return t, nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if translations == nil {
			return fmt.Errorf("%w: nil translations map for language %q", ErrInvalidTranslations, lang)
		}
	}
	return nil
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the sorted list of loaded language codes.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// table returns the translations for lang, falling back to the canonical
// form of the tag and then to its base language.
func (t *Translator) table(lang string) (map[string]any, bool) {
	if m, ok := t.translations[lang]; ok {
		return m, true
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return nil, false
	}
	if m, ok := t.translations[tag.String()]; ok {
		return m, true
	}
	base, conf := tag.Base()
	if conf == language.No {
		return nil, false
	}
	m, ok := t.translations[base.String()]
	return m, ok
}

// lookup traverses a nested map using dot-separated keys.
// For example, "validation.min_length" reads m["validation"]["min_length"].
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

// HasTranslation reports whether key resolves to a string for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	m, ok := t.table(lang)
	if !ok {
		return false
	}
	val, ok := lookup(m, key)
	if !ok {
		return false
	}
	_, ok = val.(string)
	return ok
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// format substitutes %{name} placeholders from key/value pairs in args.
// Unknown placeholders are left as-is; a trailing odd argument is ignored.
func format(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	m, ok := t.table(lang)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", logger.Language(lang), slog.String("key", key))
		}
		return "", false
	}

	val, ok := lookup(m, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", logger.Language(lang), slog.String("key", key))
		}
		return "", false
	}

	s, ok := val.(string)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", logger.Language(lang), slog.String("key", key), slog.String("type", fmt.Sprintf("%T", val)))
		}
		return "", false
	}
	return s, true
}

// T translates key for lang, substituting key/value pairs from args:
//
//	tr.T("en", "validation.min_length", "min", "3")
//
// A missing translation yields the formatted key when fallback-to-key is
// enabled, and "" otherwise.
func (t *Translator) T(lang, key string, args ...string) string {
	if s, ok := t.resolve(lang, key); ok {
		return format(s, args)
	}
	if t.fallbackToKey {
		return format(key, args)
	}
	return ""
}

// Td translates key with an explicit fallback template.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if s, ok := t.resolve(lang, key); ok {
		return format(s, args)
	}
	return format(defaultValue, args)
}

// ExportJSON returns all translations for a language as a JSON string,
// e.g. for shipping the catalog to a client-side form.
func (t *Translator) ExportJSON(lang string) (string, error) {
	translations, ok := t.table(lang)
	if !ok {
		return "", &ErrLanguageNotSupported{Lang: lang}
	}

	b, err := json.Marshal(translations)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}
	return string(b), nil
}
