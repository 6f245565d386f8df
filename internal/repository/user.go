// Package repository provides the data access layer for the KPA form service.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kpa-platform/form-service/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	FindByCredentials(ctx context.Context, phoneNumber, passwordHash string) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByCredentials looks up the user whose phone number and password digest
// both match. A miss returns ErrNotFound without saying which part was wrong.
func (r *userRepository) FindByCredentials(ctx context.Context, phoneNumber, passwordHash string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("phone_number = ? AND password_hash = ?", phoneNumber, passwordHash).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by credentials: %w", err)
	}
	return &user, nil
}
