package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"school_transport/internal/models"
)

// CreateGuardian attaches a guardian profile to an existing user. A user
// has at most one guardian profile.
func (s *Store) CreateGuardian(ctx context.Context, guardian *models.Guardian) error {
	found, err := s.exists(ctx, &models.User{}, "id = ?", guardian.UserID)
	if err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(ErrParentNotFound, "user %d", guardian.UserID)
	}

	taken, err := s.exists(ctx, &models.Guardian{}, "user_id = ?", guardian.UserID)
	if err != nil {
		return err
	}
	if taken {
		return errors.Wrapf(ErrConflict, "user %d already has a guardian profile", guardian.UserID)
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(guardian).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) GetGuardian(ctx context.Context, id uint) (*models.Guardian, error) {
	var guardian models.Guardian
	if err := s.db.WithContext(ctx).Preload("Students", orderByID).First(&guardian, id).Error; err != nil {
		return nil, translate(err)
	}
	return &guardian, nil
}

func (s *Store) ListGuardians(ctx context.Context) ([]models.Guardian, error) {
	guardians := []models.Guardian{}
	if err := s.db.WithContext(ctx).Preload("Students", orderByID).Order("id").Find(&guardians).Error; err != nil {
		return nil, translate(err)
	}
	return guardians, nil
}
