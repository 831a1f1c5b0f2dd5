package repository

import (
	"context"

	"github.com/pkg/errors"

	"school_transport/internal/models"
)

// CreateStudent inserts a student owned by an existing guardian.
func (s *Store) CreateStudent(ctx context.Context, student *models.Student) error {
	found, err := s.exists(ctx, &models.Guardian{}, "id = ?", student.GuardianID)
	if err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(ErrParentNotFound, "guardian %d", student.GuardianID)
	}

	taken, err := s.exists(ctx, &models.Student{}, "unique_identifier = ?", student.UniqueIdentifier)
	if err != nil {
		return err
	}
	if taken {
		return errors.Wrap(ErrConflict, "student unique_identifier already in use")
	}

	if err := s.db.WithContext(ctx).Create(student).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) ListStudents(ctx context.Context) ([]models.Student, error) {
	students := []models.Student{}
	if err := s.db.WithContext(ctx).Order("id").Find(&students).Error; err != nil {
		return nil, translate(err)
	}
	return students, nil
}

// ListStudentsByGuardian returns ErrNotFound for an unknown guardian and an
// empty slice for a guardian without students.
func (s *Store) ListStudentsByGuardian(ctx context.Context, guardianID uint) ([]models.Student, error) {
	found, err := s.exists(ctx, &models.Guardian{}, "id = ?", guardianID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}

	students := []models.Student{}
	if err := s.db.WithContext(ctx).Where("guardian_id = ?", guardianID).Order("id").Find(&students).Error; err != nil {
		return nil, translate(err)
	}
	return students, nil
}
