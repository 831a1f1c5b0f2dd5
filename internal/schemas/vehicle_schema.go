package schemas

import "school_transport/internal/models"

type VehicleInput struct {
	RegistrationNumber string         `json:"registration_number" validate:"required,max=50"`
	Model              string         `json:"model" validate:"required,max=100"`
	Color              string         `json:"color" validate:"required,max=50"`
	VehicleDetails     map[string]any `json:"vehicle_details"`
	DriverID           uint           `json:"driver_id" validate:"required"`
}

type VehicleOutput struct {
	ID                 uint           `json:"id"`
	RegistrationNumber string         `json:"registration_number"`
	Model              string         `json:"model"`
	Color              string         `json:"color"`
	VehicleDetails     map[string]any `json:"vehicle_details"`
	DriverID           uint           `json:"driver_id"`
}

func LoadVehicle(body []byte) (*VehicleInput, error) {
	var in VehicleInput
	if err := load(body, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func CreateVehicle(in *VehicleInput) (*models.Vehicle, error) {
	return models.NewVehicle(in.DriverID, in.RegistrationNumber, in.Model, in.Color, models.VehicleDetails(in.VehicleDetails))
}

func DumpVehicle(v *models.Vehicle) VehicleOutput {
	return VehicleOutput{
		ID:                 v.ID,
		RegistrationNumber: v.RegistrationNumber,
		Model:              v.Model,
		Color:              v.Color,
		VehicleDetails:     v.VehicleDetails,
		DriverID:           v.DriverID,
	}
}

func DumpVehicles(vehicles []models.Vehicle) []VehicleOutput {
	out := make([]VehicleOutput, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, DumpVehicle(&vehicles[i]))
	}
	return out
}
