// internal/models/Vehicle.go
package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type Vehicle struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	RegistrationNumber string         `gorm:"size:50;not null" json:"registration_number"`
	Model              string         `gorm:"size:100;not null" json:"model"`
	Color              string         `gorm:"size:50;not null" json:"color"`
	VehicleDetails     VehicleDetails `json:"vehicle_details"`
	DriverID           uint           `gorm:"not null;index" json:"driver_id"` // owning driver profile
}

func NewVehicle(driverID uint, registrationNumber, model, color string, details VehicleDetails) (*Vehicle, error) {
	if driverID == 0 {
		return nil, invalid("driver_id", errors.New("must reference a driver"))
	}
	return &Vehicle{
		RegistrationNumber: registrationNumber,
		Model:              model,
		Color:              color,
		VehicleDetails:     details,
		DriverID:           driverID,
	}, nil
}

func (v *Vehicle) String() string {
	return "<Vehicle " + v.RegistrationNumber + ">"
}

// VehicleDetails is a free-form JSON document. A nil map is stored as NULL.
type VehicleDetails map[string]any

func (d VehicleDetails) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	b, err := json.Marshal(map[string]any(d))
	if err != nil {
		return nil, errors.Wrap(err, "encode vehicle_details")
	}
	return string(b), nil
}

func (d *VehicleDetails) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("vehicle_details: unsupported column type %T", value)
	}
	if len(raw) == 0 {
		*d = nil
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return errors.Wrap(err, "decode vehicle_details")
	}
	*d = m
	return nil
}

// GormDataType names the generic column kind for gorm's schema parser.
func (VehicleDetails) GormDataType() string {
	return "json"
}

// GormDBDataType picks the native JSON column type per dialect.
func (VehicleDetails) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "jsonb"
	default:
		return "JSON"
	}
}
