// Package i18n loads translation tables and resolves keys to localized text.
//
// A Translator is built from a TranslationAdapter that returns a
// language -> nested key map. Adapters exist for in-memory maps, single files
// and any fs.FS (typically an embed.FS), each paired with a Parser for YAML
// or JSON content:
//
//	//go:embed locales
//	var locales embed.FS
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("ko"))
//	if err != nil {
//	    return err
//	}
//	msg := tr.T("en", "validation.min_length", "min", "3")
//
// Keys are dot-separated paths into the nested map. Templates substitute
// named placeholders written as %{name}. A language that is not loaded falls
// back to its base language when one is available ("en-US" -> "en"), using
// golang.org/x/text/language for tag parsing.
//
// A Translator is read-only after NewTranslator returns and safe for
// concurrent use.
package i18n
