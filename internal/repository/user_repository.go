package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"school_transport/internal/models"
)

func (s *Store) withProfiles(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Driver").
		Preload("Driver.Vehicles", orderByID).
		Preload("Guardian").
		Preload("Guardian.Students", orderByID)
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// CreateUser inserts user and assigns its id. The email must be unused.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	taken, err := s.exists(ctx, &models.User{}, "email = ?", user.Email)
	if err != nil {
		return err
	}
	if taken {
		return errors.Wrap(ErrConflict, "email already in use")
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error; err != nil {
		return translate(err)
	}
	return nil
}

// SaveUser writes every column of user and advances updated_at.
func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	if user.ID == 0 {
		return errors.New("save user: missing id")
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error; err != nil {
		return translate(err)
	}
	return nil
}

// GetUser loads a user with its driver and guardian profiles.
func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.withProfiles(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.withProfiles(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}
