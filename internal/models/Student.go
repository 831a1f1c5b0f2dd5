package models

import "github.com/pkg/errors"

// Student is transported on behalf of exactly one guardian.
// DateOfBirth is free text as supplied by the guardian.
type Student struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	FullName         string `gorm:"size:50;not null" json:"full_name"`
	DateOfBirth      string `gorm:"size:50;not null" json:"date_of_birth"`
	SchoolName       string `gorm:"size:100;not null" json:"school_name"`
	Gender           Gender `gorm:"size:10;not null" json:"gender"`
	UniqueIdentifier string `gorm:"size:50;not null;uniqueIndex" json:"unique_identifier"`
	GuardianID       uint   `gorm:"not null;index" json:"guardian_id"`
}

func NewStudent(guardianID uint, fullName, dateOfBirth, schoolName string, gender Gender, uniqueIdentifier string) (*Student, error) {
	if guardianID == 0 {
		return nil, invalid("guardian_id", errors.New("must reference a guardian"))
	}
	if !gender.IsValid() {
		return nil, invalid("gender", ErrInvalidGender)
	}
	return &Student{
		FullName:         fullName,
		DateOfBirth:      dateOfBirth,
		SchoolName:       schoolName,
		Gender:           gender,
		UniqueIdentifier: uniqueIdentifier,
		GuardianID:       guardianID,
	}, nil
}

func (s *Student) String() string {
	return "<Student " + s.UniqueIdentifier + ">"
}
