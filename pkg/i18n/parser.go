package i18n

import (
	"context"
	"strings"
)

// Parser turns file content into a language -> translations map.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser handles ext.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return nil
	}

	switch strings.ToLower(filename[idx+1:]) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
