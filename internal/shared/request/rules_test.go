package request

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
)

func TestNotBlank(t *testing.T) {
	assert.NoError(t, validation.Validate("hello", NotBlank))
	assert.NoError(t, validation.Validate((*string)(nil), NotBlank))

	assert.Error(t, validation.Validate("   ", NotBlank))
	assert.Error(t, validation.Validate("\t\n", NotBlank))
}

func TestPositiveInt(t *testing.T) {
	assert.NoError(t, validation.Validate(1, PositiveInt))
	assert.NoError(t, validation.Validate(int64(99), PositiveInt))
	assert.NoError(t, validation.Validate((*int)(nil), PositiveInt))

	// an explicit zero must fail, not be skipped as empty
	zero := 0
	assert.Error(t, validation.Validate(&zero, PositiveInt))
	assert.Error(t, validation.Validate(-3, PositiveInt))
}
