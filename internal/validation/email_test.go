package validation

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidateEmailFormat(t *testing.T) {
	valid := []string{
		"a@b.com",
		"jane.doe@school.co.ke",
		"driver+route7@example.org",
	}
	for _, candidate := range valid {
		assert.NoError(t, ValidateEmailFormat(candidate), "expected %q to be accepted", candidate)
	}

	invalid := []string{
		"",
		"not-an-email",
		"a@b",
		"@missing-local",
		"two@@example.com",
		"spaces in@example.com",
		"trailing@",
	}
	for _, candidate := range invalid {
		err := ValidateEmailFormat(candidate)
		assert.Error(t, err, "expected %q to be rejected", candidate)
		assert.True(t, errors.Is(err, ErrInvalidEmail))
	}
}

func TestNewEmailFormat_IndependentInstances(t *testing.T) {
	v := NewEmailFormat()
	assert.NoError(t, v.Validate("guardian@example.com"))
	assert.Error(t, v.Validate("guardian.example.com"))
}
