package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email  string  `validate:"required,email"`
	Rating float64 `validate:"halfstep"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Email: "ana@example.com", Rating: 4.5}))

	err := v.Validate(&sample{Email: "nope", Rating: 4.3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email: email")
	assert.Contains(t, err.Error(), "Rating: halfstep")
}
