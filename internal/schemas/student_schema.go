package schemas

import "school_transport/internal/models"

type StudentInput struct {
	FullName         string        `json:"full_name" validate:"required,max=50"`
	DateOfBirth      string        `json:"date_of_birth" validate:"required,max=50"`
	SchoolName       string        `json:"school_name" validate:"required,max=100"`
	Gender           models.Gender `json:"gender" validate:"required,oneof=male female"`
	UniqueIdentifier string        `json:"unique_identifier" validate:"required,max=50"`
	GuardianID       uint          `json:"guardian_id" validate:"required"`
}

type StudentOutput struct {
	ID               uint          `json:"id"`
	FullName         string        `json:"full_name"`
	DateOfBirth      string        `json:"date_of_birth"`
	SchoolName       string        `json:"school_name"`
	Gender           models.Gender `json:"gender"`
	UniqueIdentifier string        `json:"unique_identifier"`
	GuardianID       uint          `json:"guardian_id"`
}

func LoadStudent(body []byte) (*StudentInput, error) {
	var in StudentInput
	if err := load(body, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func CreateStudent(in *StudentInput) (*models.Student, error) {
	return models.NewStudent(in.GuardianID, in.FullName, in.DateOfBirth, in.SchoolName, in.Gender, in.UniqueIdentifier)
}

func DumpStudent(s *models.Student) StudentOutput {
	return StudentOutput{
		ID:               s.ID,
		FullName:         s.FullName,
		DateOfBirth:      s.DateOfBirth,
		SchoolName:       s.SchoolName,
		Gender:           s.Gender,
		UniqueIdentifier: s.UniqueIdentifier,
		GuardianID:       s.GuardianID,
	}
}

func DumpStudents(students []models.Student) []StudentOutput {
	out := make([]StudentOutput, 0, len(students))
	for i := range students {
		out = append(out, DumpStudent(&students[i]))
	}
	return out
}
