package schemas

import "school_transport/internal/models"

type GuardianInput struct {
	UserID uint `json:"user_id" validate:"required"`
}

type GuardianOutput struct {
	ID       uint            `json:"id"`
	UserID   uint            `json:"user_id"`
	Students []StudentOutput `json:"students"`
}

func LoadGuardian(body []byte) (*GuardianInput, error) {
	var in GuardianInput
	if err := load(body, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func CreateGuardian(in *GuardianInput) (*models.Guardian, error) {
	return models.NewGuardian(in.UserID)
}

func DumpGuardian(g *models.Guardian) GuardianOutput {
	return GuardianOutput{
		ID:       g.ID,
		UserID:   g.UserID,
		Students: DumpStudents(g.Students),
	}
}

func DumpGuardians(guardians []models.Guardian) []GuardianOutput {
	out := make([]GuardianOutput, 0, len(guardians))
	for i := range guardians {
		out = append(out, DumpGuardian(&guardians[i]))
	}
	return out
}
