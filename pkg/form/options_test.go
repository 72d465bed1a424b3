package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/messages"
)

func TestLoadOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		opts, err := form.LoadOptions()
		require.NoError(t, err)
		assert.Equal(t, form.Options{Language: messages.Korean}, opts)
	})

	t.Run("from environment", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("FORM_VALIDATE_ON_CHANGE", "true")
		t.Setenv("FORM_VALIDATE_ON_BLUR", "true")
		t.Setenv("FORM_LANGUAGE", "en")

		opts, err := form.LoadOptions()
		require.NoError(t, err)
		assert.Equal(t, form.Options{
			ValidateOnChange: true,
			ValidateOnBlur:   true,
			Language:         messages.English,
		}, opts)

		f := form.MustNew([]form.FieldConfig{{Name: "a"}}, form.WithOptions(opts))
		assert.Equal(t, opts, f.Options())
		assert.Equal(t, messages.English, f.Language())
	})

	t.Run("unsupported language falls back", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("FORM_LANGUAGE", "fr")

		opts, err := form.LoadOptions()
		require.NoError(t, err)
		assert.Equal(t, messages.Korean, opts.Language)
	})

	t.Run("invalid value", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("FORM_VALIDATE_ON_CHANGE", "sometimes")

		_, err := form.LoadOptions()
		assert.ErrorIs(t, err, form.ErrLoadingOptions)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("later options override earlier ones", func(t *testing.T) {
		f := form.MustNew(nil,
			form.WithOptions(form.Options{ValidateOnChange: true, ValidateOnBlur: true}),
			form.WithValidateOnBlur(false),
			form.WithLanguage(messages.English),
		)
		assert.Equal(t, form.Options{ValidateOnChange: true, Language: messages.English}, f.Options())
	})

	t.Run("empty language uses default", func(t *testing.T) {
		f := form.MustNew(nil, form.WithOptions(form.Options{}))
		assert.Equal(t, messages.DefaultLanguage, f.Language())
	})

	t.Run("nil logger is ignored", func(t *testing.T) {
		assert.NotPanics(t, func() {
			f := form.MustNew([]form.FieldConfig{{Name: "a"}}, form.WithLogger(nil))
			_ = f.SetValue("missing", "x")
		})
	})
}
