package repositories

import (
	"context"
	"errors"

	"dronekids/groundcontrol/internal/constants"
	"dronekids/groundcontrol/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// UserRepositoryGORM resolves player accounts. Deleted accounts are
// soft-deleted via the status flag and treated as absent.
type UserRepositoryGORM struct {
	db *gormlib.DB
}

// NewUserRepositoryGORM creates a new user repository
func NewUserRepositoryGORM(db *gormlib.DB) *UserRepositoryGORM {
	return &UserRepositoryGORM{db: db}
}

// FindByID returns the user or nil when absent or soft-deleted.
func (r *UserRepositoryGORM) FindByID(ctx context.Context, id string) (*gorm.User, error) {
	var user gorm.User

	err := r.db.WithContext(ctx).
		Where("id = ? AND status <> ?", id, constants.UserDeleted).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
