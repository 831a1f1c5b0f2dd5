package repository

import (
	"context"

	"github.com/pkg/errors"

	"school_transport/internal/models"
)

// CreateVehicle inserts a vehicle owned by an existing driver.
func (s *Store) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	found, err := s.exists(ctx, &models.Driver{}, "id = ?", vehicle.DriverID)
	if err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(ErrParentNotFound, "driver %d", vehicle.DriverID)
	}

	if err := s.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles := []models.Vehicle{}
	if err := s.db.WithContext(ctx).Order("id").Find(&vehicles).Error; err != nil {
		return nil, translate(err)
	}
	return vehicles, nil
}

// ListVehiclesByDriver returns ErrNotFound for an unknown driver.
func (s *Store) ListVehiclesByDriver(ctx context.Context, driverID uint) ([]models.Vehicle, error) {
	found, err := s.exists(ctx, &models.Driver{}, "id = ?", driverID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}

	vehicles := []models.Vehicle{}
	if err := s.db.WithContext(ctx).Where("driver_id = ?", driverID).Order("id").Find(&vehicles).Error; err != nil {
		return nil, translate(err)
	}
	return vehicles, nil
}
