package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"school_transport/internal/models"
)

// CreateDriver attaches a driver profile to an existing user. A user has at
// most one driver profile and unique_identifier is unique across drivers.
func (s *Store) CreateDriver(ctx context.Context, driver *models.Driver) error {
	found, err := s.exists(ctx, &models.User{}, "id = ?", driver.UserID)
	if err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(ErrParentNotFound, "user %d", driver.UserID)
	}

	taken, err := s.exists(ctx, &models.Driver{}, "user_id = ?", driver.UserID)
	if err != nil {
		return err
	}
	if taken {
		return errors.Wrapf(ErrConflict, "user %d already has a driver profile", driver.UserID)
	}

	taken, err = s.exists(ctx, &models.Driver{}, "unique_identifier = ?", driver.UniqueIdentifier)
	if err != nil {
		return err
	}
	if taken {
		return errors.Wrap(ErrConflict, "driver unique_identifier already in use")
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(driver).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) GetDriver(ctx context.Context, id uint) (*models.Driver, error) {
	var driver models.Driver
	if err := s.db.WithContext(ctx).Preload("Vehicles", orderByID).First(&driver, id).Error; err != nil {
		return nil, translate(err)
	}
	return &driver, nil
}

func (s *Store) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	drivers := []models.Driver{}
	if err := s.db.WithContext(ctx).Preload("Vehicles", orderByID).Order("id").Find(&drivers).Error; err != nil {
		return nil, translate(err)
	}
	return drivers, nil
}
