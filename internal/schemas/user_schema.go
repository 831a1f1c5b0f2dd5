package schemas

import (
	"time"

	"school_transport/internal/models"
	"school_transport/internal/password"
)

// UserInput is the load shape of a user. Password is write-only.
type UserInput struct {
	FullName    string      `json:"full_name" validate:"required,max=50"`
	Email       string      `json:"email" validate:"required,max=50,email_format"`
	PhoneNumber string      `json:"phone_number" validate:"required,max=20"`
	Password    string      `json:"password" validate:"required,min=6,bcrypt_max"`
	Role        models.Role `json:"role" validate:"required,oneof=driver guardian school"`
}

// PasswordInput is the load shape of a password change.
type PasswordInput struct {
	Password string `json:"password" validate:"required,min=6,bcrypt_max"`
}

// UserOutput is the dump shape of a user. There is no password field.
type UserOutput struct {
	ID          uint            `json:"id"`
	FullName    string          `json:"full_name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Role        models.Role     `json:"role"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Driver      *DriverOutput   `json:"driver"`
	Guardian    *GuardianOutput `json:"guardian"`
}

func LoadUser(body []byte) (*UserInput, error) {
	var in UserInput
	if err := load(body, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func LoadPassword(body []byte) (*PasswordInput, error) {
	var in PasswordInput
	if err := load(body, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// CreateUser builds a user from validated input through models.NewUser.
func CreateUser(hasher password.Hasher, in *UserInput) (*models.User, error) {
	return models.NewUser(hasher, in.FullName, in.Email, in.PhoneNumber, in.Password, in.Role)
}

func DumpUser(u *models.User) UserOutput {
	out := UserOutput{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt.UTC(),
		UpdatedAt:   u.UpdatedAt.UTC(),
	}
	if u.Driver != nil {
		d := DumpDriver(u.Driver)
		out.Driver = &d
	}
	if u.Guardian != nil {
		g := DumpGuardian(u.Guardian)
		out.Guardian = &g
	}
	return out
}

func DumpUsers(users []models.User) []UserOutput {
	out := make([]UserOutput, 0, len(users))
	for i := range users {
		out = append(out, DumpUser(&users[i]))
	}
	return out
}
