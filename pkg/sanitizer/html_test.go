package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"plain text", "Hong Gildong", "Hong Gildong"},
		{"inline tags", "<b>Kim</b>", "Kim"},
		{"script content dropped", "<script>alert(1)</script>Kim", "Kim"},
		{"ampersand kept", "Tom & Jerry", "Tom & Jerry"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizer.StripHTML(tt.in))
		})
	}
}
