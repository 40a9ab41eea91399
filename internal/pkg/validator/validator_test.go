package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth(1))
	assert.True(t, IsValidMonth(12))
	assert.False(t, IsValidMonth(0))
	assert.False(t, IsValidMonth(13))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-03-10")
	assert.True(t, ok)

	_, ok = IsValidDate("10-03-2024")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "month must be between 1 and 12"},
	}
	assert.Equal(t, "month: month must be between 1 and 12", errs.Error())
	assert.Equal(t, map[string]string{"month": "month must be between 1 and 12"}, errs.ToMap())
}
