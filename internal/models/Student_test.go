package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudent(t *testing.T) {
	student, err := NewStudent(3, "Amani", "2015-04-01", "Hillcrest", GenderFemale, "STU-001")
	require.NoError(t, err)
	assert.Equal(t, uint(3), student.GuardianID)
	assert.Equal(t, GenderFemale, student.Gender)
}

func TestNewStudent_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		guardianID uint
		gender     Gender
		field      string
	}{
		{"unknown gender", 1, "other", "gender"},
		{"empty gender", 1, "", "gender"},
		{"capitalised gender", 1, "Male", "gender"},
		{"missing guardian", 0, GenderMale, "guardian_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStudent(tt.guardianID, "Amani", "2015-04-01", "Hillcrest", tt.gender, "STU-001")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidValue))

			var valueErr *ValueError
			require.True(t, errors.As(err, &valueErr))
			assert.Equal(t, tt.field, valueErr.Field)
		})
	}
}

func TestProfileFactories_RequireOwner(t *testing.T) {
	_, err := NewGuardian(0)
	assert.True(t, errors.Is(err, ErrInvalidValue))

	_, err = NewDriver(0, "DL-1", "ID-1", "DRV-1")
	assert.True(t, errors.Is(err, ErrInvalidValue))

	_, err = NewVehicle(0, "KDA 123A", "Toyota Hiace", "white", nil)
	assert.True(t, errors.Is(err, ErrInvalidValue))

	guardian, err := NewGuardian(7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), guardian.UserID)

	driver, err := NewDriver(7, "DL-1", "ID-1", "DRV-1")
	require.NoError(t, err)
	assert.Equal(t, "DRV-1", driver.UniqueIdentifier)
}
