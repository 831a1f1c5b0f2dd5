// internal/models/Driver.go
package models

import "github.com/pkg/errors"

// Driver is the driver profile of a user.
type Driver struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	DrivingLicense   string `gorm:"size:100;not null" json:"driving_license"`
	IDCard           string `gorm:"size:100;not null" json:"id_card"`
	UniqueIdentifier string `gorm:"size:100;not null;uniqueIndex" json:"unique_identifier"`
	UserID           uint   `gorm:"not null;uniqueIndex" json:"user_id"`

	Vehicles []Vehicle `gorm:"foreignKey:DriverID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"vehicles"`
}

func NewDriver(userID uint, drivingLicense, idCard, uniqueIdentifier string) (*Driver, error) {
	if userID == 0 {
		return nil, invalid("user_id", errors.New("must reference a user"))
	}
	return &Driver{
		DrivingLicense:   drivingLicense,
		IDCard:           idCard,
		UniqueIdentifier: uniqueIdentifier,
		UserID:           userID,
	}, nil
}

func (d *Driver) String() string {
	return "<Driver " + d.UniqueIdentifier + ">"
}
