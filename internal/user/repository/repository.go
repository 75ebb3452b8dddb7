// Package repository provides the credential store for user accounts.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fablite/fablite/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a new user. The unique index on email is the
	// backstop against concurrent registrations with the same address.
	Create(ctx context.Context, user *model.User) error

	// GetByEmail finds a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID finds a user by id.
	GetByID(ctx context.Context, id uint) (*model.User, error)

	// UpdateProfile overwrites name and surname for the provided (non-nil) fields.
	UpdateProfile(ctx context.Context, userID uint, name, surname *string) (*model.User, error)

	// Delete removes a user record.
	Delete(ctx context.Context, userID uint) error

	// CountMemberships returns the number of teams the user belongs to.
	CountMemberships(ctx context.Context, userID uint) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new user.
func (r *repository) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if isDuplicateError(err) {
			r.logger.Debugw("Create duplicate email", "email", user.Email)
			return model.ErrEmailTaken
		}
		r.logger.Errorw("Create database error", "email", user.Email, "error", err)
		return err
	}
	return nil
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// GetByEmail finds a user by email.
func (r *repository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByEmail database error", "email", email, "error", err)
		return nil, err
	}

	return &user, nil
}

// GetByID finds a user by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByID database error", "user_id", id, "error", err)
		return nil, err
	}

	return &user, nil
}

// UpdateProfile overwrites name and surname for the provided (non-nil) fields.
func (r *repository) UpdateProfile(ctx context.Context, userID uint, name, surname *string) (*model.User, error) {
	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
	}
	if surname != nil {
		updates["surname"] = *surname
	}

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).
			Model(&model.User{}).
			Where("id = ?", userID).
			Updates(updates)

		if result.Error != nil {
			r.logger.Errorw("UpdateProfile database error", "user_id", userID, "error", result.Error)
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, model.ErrUserNotFound
		}
	}

	return r.GetByID(ctx, userID)
}

// Delete removes a user record.
func (r *repository) Delete(ctx context.Context, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", userID).
		Delete(&model.User{})

	if result.Error != nil {
		r.logger.Errorw("Delete database error", "user_id", userID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrUserNotFound
	}

	return nil
}

// CountMemberships returns the number of teams the user belongs to.
func (r *repository) CountMemberships(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("user_team").
		Where("user_id = ?", userID).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("CountMemberships database error", "user_id", userID, "error", err)
		return 0, err
	}

	return count, nil
}
