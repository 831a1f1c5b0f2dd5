package models

import "github.com/pkg/errors"

var (
	ErrInvalidRole   = errors.New("role must be one of driver, guardian, school")
	ErrInvalidGender = errors.New("gender must be one of male, female")
)

// Role is the closed set of account kinds.
type Role string

const (
	RoleDriver   Role = "driver"
	RoleGuardian Role = "guardian"
	RoleSchool   Role = "school"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the declared roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleDriver, RoleGuardian, RoleSchool:
		return true
	default:
		return false
	}
}

// Gender of a student.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) String() string {
	return string(g)
}

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}
