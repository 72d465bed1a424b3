package form

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/messages"
)

// Options controls when controllers validate automatically.
type Options struct {
	// ValidateOnChange validates the new value on every change event.
	ValidateOnChange bool `env:"FORM_VALIDATE_ON_CHANGE" envDefault:"false"`
	// ValidateOnBlur validates the stored value when the input loses focus.
	ValidateOnBlur bool `env:"FORM_VALIDATE_ON_BLUR" envDefault:"false"`
	// Language is the locale callers should build rules with.
	Language messages.Language `env:"FORM_LANGUAGE" envDefault:"ko"`
}

// LoadOptions reads Options from the environment and an optional .env file.
// An unsupported FORM_LANGUAGE is replaced by messages.DefaultLanguage.
func LoadOptions() (Options, error) {
	var opts Options
	if err := config.Load(&opts); err != nil {
		return Options{}, errors.Join(ErrLoadingOptions, err)
	}
	opts.Language = opts.Language.OrDefault()
	return opts, nil
}

type settings struct {
	Options
	logger *slog.Logger
}

// Option configures a Field or a Form.
type Option func(*settings)

// WithValidateOnChange enables or disables validation on change events.
func WithValidateOnChange(enabled bool) Option {
	return func(s *settings) {
		s.ValidateOnChange = enabled
	}
}

// WithValidateOnBlur enables or disables validation on blur events.
func WithValidateOnBlur(enabled bool) Option {
	return func(s *settings) {
		s.ValidateOnBlur = enabled
	}
}

// WithLanguage sets the controller language.
func WithLanguage(lang messages.Language) Option {
	return func(s *settings) {
		s.Language = lang
	}
}

// WithOptions replaces all Options at once, typically with the result of
// LoadOptions.
func WithOptions(opts Options) Option {
	return func(s *settings) {
		s.Options = opts
	}
}

// WithLogger sets the logger for validation and misuse records.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{Options: Options{Language: messages.DefaultLanguage}}
	for _, opt := range opts {
		opt(&s)
	}
	s.Language = s.Language.OrDefault()
	if s.logger == nil {
		s.logger = logger.Discard()
	}
	return s
}
