// Package config loads typed configuration from the process environment.
//
// It combines github.com/joho/godotenv, which reads optional .env files, with
// github.com/caarlos0/env/v11, which maps variables onto struct fields via
// `env` tags. Each configuration type is parsed once and cached by value:
//
//	type FormConfig struct {
//	    ValidateOnBlur bool   `env:"FORM_VALIDATE_ON_BLUR" envDefault:"true"`
//	    Language       string `env:"FORM_LANGUAGE" envDefault:"ko"`
//	}
//
//	var cfg FormConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Sentinel errors (ErrParsingConfig, ErrNilPointer, ErrLoadingEnvFile) can be
// matched with errors.Is. ResetCache drops cached values and is meant for tests.
package config
