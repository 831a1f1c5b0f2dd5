package models

import (
	"time"

	"github.com/pkg/errors"

	"school_transport/internal/password"
	"school_transport/internal/validation"
)

// User is an account. Driver and Guardian are optional, independent
// role profiles owned by the user.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"size:50;not null" json:"full_name"`
	Email        string    `gorm:"size:50;not null;uniqueIndex" json:"email"`
	PhoneNumber  string    `gorm:"size:20;not null" json:"phone_number"`
	PasswordHash string    `gorm:"size:280;not null" json:"-"`
	Role         Role      `gorm:"size:20;not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Driver   *Driver   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"driver,omitempty"`
	Guardian *Guardian `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"guardian,omitempty"`
}

// NewUser validates the email and role, then stores only a salted hash of
// plain.
func NewUser(hasher password.Hasher, fullName, email, phoneNumber, plain string, role Role) (*User, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, invalid("role", ErrInvalidRole)
	}

	user := &User{
		FullName:    fullName,
		Email:       email,
		PhoneNumber: phoneNumber,
		Role:        role,
	}
	if err := user.SetPassword(hasher, plain); err != nil {
		return nil, err
	}
	return user, nil
}

// ValidateEmail applies the shared email rule and reports failures as a
// ValueError on the email field.
func ValidateEmail(email string) error {
	if err := validation.ValidateEmailFormat(email); err != nil {
		return invalid("email", err)
	}
	return nil
}

// SetPassword replaces the stored hash. updated_at is advanced by the
// store when the user is saved.
func (u *User) SetPassword(hasher password.Hasher, plain string) error {
	hash, err := hasher.Hash(plain)
	if errors.Is(err, password.ErrTooLong) {
		return invalid("password", err)
	}
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(hasher password.Hasher, plain string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return hasher.Check(plain, u.PasswordHash)
}

func (u *User) String() string {
	return "<User " + u.Email + ">"
}
