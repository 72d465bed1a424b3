package form_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/messages"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestNewField(t *testing.T) {
	t.Parallel()

	f := form.NewField([]validator.Rule{en.Required()})

	assert.Equal(t, form.FieldState{Status: form.StatusUnvalidated}, f.State())
	assert.NotEqual(t, f.ID(), form.NewField(nil).ID())
	assert.Equal(t, messages.Korean, f.Language())
}

func TestField_Validate(t *testing.T) {
	t.Parallel()

	t.Run("short-circuits at first failing rule", func(t *testing.T) {
		var r1, r3 int
		f := form.NewField([]validator.Rule{
			spy(pass, &r1),
			failWith("E2"),
			spy(failWith("E3"), &r3),
		})

		res := f.ValidateValue("x")
		assert.Equal(t, validator.Result{Valid: false, Error: "E2"}, res)
		assert.Equal(t, 1, r1)
		assert.Zero(t, r3)
		assert.Equal(t, "E2", f.ErrorMessage())
		assert.Equal(t, form.StatusInvalid, f.Status())
	})

	t.Run("all rules pass", func(t *testing.T) {
		f := form.NewField([]validator.Rule{pass, en.Required()})
		f.Set("hello")

		res := f.Validate()
		assert.Equal(t, validator.Result{Valid: true}, res)
		assert.True(t, f.IsValid())
		assert.Empty(t, f.ErrorMessage())
		assert.Equal(t, form.StatusValid, f.Status())
	})

	t.Run("idempotent on the same value", func(t *testing.T) {
		f := form.NewField([]validator.Rule{en.Required(), en.MinLength(3)})
		f.Set("ab")

		first := f.Validate()
		firstState := f.State()
		second := f.Validate()

		assert.Equal(t, first, second)
		assert.Equal(t, firstState, f.State())
	})

	t.Run("required then min length scenario", func(t *testing.T) {
		f := form.NewField([]validator.Rule{en.Required(), en.MinLength(3)})

		assert.Equal(t, validator.Result{Error: "This field is required"}, f.ValidateValue(""))
		assert.Equal(t, validator.Result{Error: "Please enter at least 3 characters"}, f.ValidateValue("ab"))
		assert.Equal(t, validator.Result{Valid: true}, f.ValidateValue("abcd"))
	})

	t.Run("override leaves stored value unchanged", func(t *testing.T) {
		f := form.NewField([]validator.Rule{en.Required()})
		f.Set("stored")

		res := f.ValidateValue("")
		assert.False(t, res.Valid)
		assert.Equal(t, "stored", f.Value())
		assert.False(t, f.IsValid())
	})

	t.Run("passing clears previous error", func(t *testing.T) {
		f := form.NewField([]validator.Rule{en.Required()})
		f.Validate()
		require.Equal(t, "This field is required", f.ErrorMessage())

		f.Set("x")
		f.Validate()
		assert.Empty(t, f.ErrorMessage())
		assert.True(t, f.IsValid())
	})

	t.Run("no rules always passes", func(t *testing.T) {
		f := form.NewField(nil)
		assert.True(t, f.Validate().Valid)
		assert.True(t, f.IsValid())
	})
}

func TestField_Flags(t *testing.T) {
	t.Parallel()

	t.Run("set does not mark dirty", func(t *testing.T) {
		f := form.NewField(nil)
		f.Set("x")
		assert.False(t, f.IsDirty())
		assert.Equal(t, "x", f.Value())
		assert.Equal(t, form.StatusUnvalidated, f.Status())
	})

	t.Run("validate and change mark dirty until reset", func(t *testing.T) {
		f := form.NewField(nil)
		f.Validate()
		assert.True(t, f.IsDirty())

		f.Set("y")
		assert.True(t, f.IsDirty())

		f.Reset()
		assert.False(t, f.IsDirty())

		f.Change("z")
		assert.True(t, f.IsDirty())
	})

	t.Run("touched only via blur or touch", func(t *testing.T) {
		f := form.NewField([]validator.Rule{en.Required()})
		f.Set("x")
		f.Change("y")
		f.Validate()
		assert.False(t, f.IsTouched())

		f.Blur()
		assert.True(t, f.IsTouched())

		g := form.NewField(nil)
		g.Touch()
		assert.True(t, g.IsTouched())
		assert.False(t, g.IsDirty())
	})

	t.Run("reset clears everything", func(t *testing.T) {
		f := form.NewField([]validator.Rule{en.Required()})
		f.Change("x")
		f.Blur()
		f.Validate()
		require.True(t, f.IsValid())

		f.Reset()
		assert.Equal(t, form.FieldState{Status: form.StatusUnvalidated}, f.State())
	})
}

func TestField_Triggers(t *testing.T) {
	t.Parallel()

	t.Run("change without validate on change leaves validity stale", func(t *testing.T) {
		f := form.NewField([]validator.Rule{en.Required()})
		f.Change("ok")
		f.Validate()
		require.True(t, f.IsValid())

		f.Change("")
		assert.True(t, f.IsValid())
		assert.Empty(t, f.Value())
	})

	t.Run("change with validate on change validates new value", func(t *testing.T) {
		f := form.NewField([]validator.Rule{en.Required()}, form.WithValidateOnChange(true))

		f.Change("")
		assert.Equal(t, "This field is required", f.ErrorMessage())

		f.HandleChange()("ok")
		assert.True(t, f.IsValid())
		assert.Equal(t, "ok", f.Value())
	})

	t.Run("blur without validate on blur", func(t *testing.T) {
		f := form.NewField([]validator.Rule{en.Required()})
		f.Blur()
		assert.Equal(t, form.StatusUnvalidated, f.Status())
		assert.False(t, f.IsDirty())
	})

	t.Run("blur with validate on blur uses stored value", func(t *testing.T) {
		f := form.NewField([]validator.Rule{en.Required()}, form.WithValidateOnBlur(true))
		f.Set("stored")

		f.HandleBlur()()
		assert.True(t, f.IsTouched())
		assert.True(t, f.IsValid())
		assert.True(t, f.IsDirty())
	})
}

func TestField_Subscribe(t *testing.T) {
	t.Parallel()

	f := form.NewField([]validator.Rule{en.Required()})

	var got []form.FieldState
	cancel := f.Subscribe(func(s form.FieldState) {
		got = append(got, s)
	})

	f.Set("a")
	f.Validate()
	f.Blur()

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Value)
	assert.Equal(t, form.StatusValid, got[1].Status)
	assert.True(t, got[2].IsTouched)

	cancel()
	cancel()
	f.Reset()
	assert.Len(t, got, 3)

	assert.NotPanics(t, func() { f.Subscribe(nil)() })
}

func TestField_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithJSONFormatter(),
	)

	f := form.NewField([]validator.Rule{pass, en.Required()}, form.WithLogger(log), form.WithLanguage(messages.English))
	f.Validate()

	out := buf.String()
	assert.Contains(t, out, `"msg":"validation failed"`)
	assert.Contains(t, out, `"rule":1`)
	assert.Contains(t, out, `"validation_error":"This field is required"`)
	assert.Contains(t, out, `"component":"field"`)
	assert.Contains(t, out, `"lang":"en"`)
	assert.Contains(t, out, `"msg":"field status changed"`)
	assert.Contains(t, out, f.ID().String())

	buf.Reset()
	log.Info("snapshot", slog.Any("field", f))
	assert.Contains(t, buf.String(), `"status":"invalid"`)
}
