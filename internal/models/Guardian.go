package models

import "github.com/pkg/errors"

// Guardian is the guardian profile of a user. It owns the students it is
// responsible for.
type Guardian struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`

	Students []Student `gorm:"foreignKey:GuardianID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"students"`
}

func NewGuardian(userID uint) (*Guardian, error) {
	if userID == 0 {
		return nil, invalid("user_id", errors.New("must reference a user"))
	}
	return &Guardian{UserID: userID}, nil
}
