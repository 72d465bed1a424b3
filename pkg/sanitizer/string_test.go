package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestTrimAndLower(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Hello", sanitizer.Trim("  Hello\t\n"))
	assert.Equal(t, "user@example.com", sanitizer.ToLower("User@Example.COM"))
}

func TestRemoveWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"010 1234 5678", "01012345678"},
		{"\t010-1234\n-5678 ", "010-1234-5678"},
		{"한 글", "한글"},
		{" x　y", "xy"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizer.RemoveWhitespace(tt.in), tt.in)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a b c", sanitizer.CollapseWhitespace("  a \t b\n\nc "))
	assert.Empty(t, sanitizer.CollapseWhitespace(" \n "))
}

func TestRemoveChars(t *testing.T) {
	t.Parallel()
	strip := sanitizer.RemoveChars("-.")
	assert.Equal(t, "4111111111111111", strip("4111-1111.1111-1111"))
	assert.Equal(t, "abc", sanitizer.RemoveChars("")("abc"))
}

func TestCompose(t *testing.T) {
	t.Parallel()

	digits := sanitizer.Compose(sanitizer.RemoveWhitespace, sanitizer.RemoveChars("-"))
	assert.Equal(t, "4111111111111111", digits(" 4111-1111 1111 1111 "))

	assert.Equal(t, "x", sanitizer.Apply(" X ", sanitizer.Trim, sanitizer.ToLower))
	assert.Equal(t, " X ", sanitizer.Apply(" X "))
}
