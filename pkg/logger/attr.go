package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a form field name under the key "field".
// An empty name yields an empty Attr, which single-field controllers rely on.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// FormID records a controller instance id under the key "form_id".
// If id is nil, it returns an empty Attr.
func FormID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("form_id", id)
}

// RuleIndex records the position of the failing rule under the key "rule".
func RuleIndex(i int) slog.Attr {
	return slog.Int("rule", i)
}

// Status records a field validation status under the key "status".
func Status(s string) slog.Attr {
	return slog.String("status", s)
}

// Language records a locale code under the key "lang".
func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// ValidationMessage records a user-facing validation message under the key
// "validation_error". It is distinct from Error, which carries Go errors.
func ValidationMessage(msg string) slog.Attr {
	if msg == "" {
		return slog.Attr{}
	}
	return slog.String("validation_error", msg)
}
