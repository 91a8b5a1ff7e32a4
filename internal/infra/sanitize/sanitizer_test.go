package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrictSanitizer_Sanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "Great bike, very clean", want: "Great bike, very clean"},
		{name: "script removed", input: "Nice<script>alert(1)</script> ride", want: "Nice ride"},
		{name: "tags stripped", input: "<b>Fast</b> and <i>light</i>", want: "Fast and light"},
		{name: "ampersand kept", input: "Tom & Jerry", want: "Tom & Jerry"},
		{name: "trimmed", input: "   spaced   ", want: "spaced"},
	}

	sanitizer := NewStrictSanitizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.Sanitize(tt.input))
		})
	}
}
