package messages

import (
	"context"
	"embed"
	"fmt"
	"strconv"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// Catalog resolves message kinds to localized text.
type Catalog struct {
	tr *i18n.Translator
}

// New builds a catalog from adapter. Translation keys are "validation.<kind>".
func New(ctx context.Context, adapter i18n.TranslationAdapter, opts ...i18n.Option) (*Catalog, error) {
	opts = append([]i18n.Option{
		i18n.WithDefaultLanguage(string(DefaultLanguage)),
		i18n.WithFallbackToKey(false),
	}, opts...)

	tr, err := i18n.NewTranslator(ctx, adapter, opts...)
	if err != nil {
		return nil, fmt.Errorf("messages: %w", err)
	}
	return &Catalog{tr: tr}, nil
}

// NewEmbedded builds a catalog from the built-in Korean and English texts.
func NewEmbedded(ctx context.Context, opts ...i18n.Option) (*Catalog, error) {
	return New(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"), opts...)
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := NewEmbedded(context.Background())
	if err != nil {
		panic(fmt.Sprintf("messages: embedded catalog: %v", err))
	}
	return c
})

// Default returns the shared built-in catalog.
func Default() *Catalog {
	return defaultCatalog()
}

// Message returns the text for kind in lang, filling numeric placeholders
// from args in order. Unknown kinds yield "". Unsupported languages use
// DefaultLanguage.
func (c *Catalog) Message(kind Kind, lang Language, args ...int) string {
	params, ok := kindParams[kind]
	if !ok {
		return ""
	}

	var pairs []string
	for i, name := range params {
		if i >= len(args) {
			break
		}
		pairs = append(pairs, name, strconv.Itoa(args[i]))
	}

	return c.tr.T(string(lang.OrDefault()), kind.Key(), pairs...)
}

// Has reports whether Message would find text for kind in lang.
// Unsupported languages are checked against DefaultLanguage, as in Message.
func (c *Catalog) Has(kind Kind, lang Language) bool {
	return kind.Valid() && c.tr.HasTranslation(string(lang.OrDefault()), kind.Key())
}

// ExportJSON returns the catalog for lang as JSON, for client-side rendering
// of the same messages.
func (c *Catalog) ExportJSON(lang Language) (string, error) {
	return c.tr.ExportJSON(string(lang.OrDefault()))
}

// Message resolves kind through the default catalog.
func Message(kind Kind, lang Language, args ...int) string {
	return Default().Message(kind, lang, args...)
}
