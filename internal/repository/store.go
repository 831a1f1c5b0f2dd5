// Package repository is the storage collaborator: create, get by id, list
// all and list by foreign key over gorm.
package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"school_transport/internal/models"
)

// Store wraps a gorm handle. A Store obtained inside Transaction is bound
// to that transaction.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates the tables of the five entities.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Guardian{},
		&models.Driver{},
		&models.Student{},
		&models.Vehicle{},
	)
	return errors.Wrap(err, "auto-migration failed")
}

// Transaction runs fn in a single database transaction. The transaction is
// rolled back when fn returns an error or panics.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Ping checks the underlying connection pool.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) exists(ctx context.Context, model any, query string, args ...any) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}
