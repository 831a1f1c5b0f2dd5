package schemas

import "school_transport/internal/models"

type DriverInput struct {
	DrivingLicense   string `json:"driving_license" validate:"required,max=100"`
	IDCard           string `json:"id_card" validate:"required,max=100"`
	UniqueIdentifier string `json:"unique_identifier" validate:"required,max=100"`
	UserID           uint   `json:"user_id" validate:"required"`
}

type DriverOutput struct {
	ID               uint            `json:"id"`
	DrivingLicense   string          `json:"driving_license"`
	IDCard           string          `json:"id_card"`
	UniqueIdentifier string          `json:"unique_identifier"`
	UserID           uint            `json:"user_id"`
	Vehicles         []VehicleOutput `json:"vehicles"`
}

func LoadDriver(body []byte) (*DriverInput, error) {
	var in DriverInput
	if err := load(body, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func CreateDriver(in *DriverInput) (*models.Driver, error) {
	return models.NewDriver(in.UserID, in.DrivingLicense, in.IDCard, in.UniqueIdentifier)
}

func DumpDriver(d *models.Driver) DriverOutput {
	return DriverOutput{
		ID:               d.ID,
		DrivingLicense:   d.DrivingLicense,
		IDCard:           d.IDCard,
		UniqueIdentifier: d.UniqueIdentifier,
		UserID:           d.UserID,
		Vehicles:         DumpVehicles(d.Vehicles),
	}
}

func DumpDrivers(drivers []models.Driver) []DriverOutput {
	out := make([]DriverOutput, 0, len(drivers))
	for i := range drivers {
		out = append(out, DumpDriver(&drivers[i]))
	}
	return out
}
