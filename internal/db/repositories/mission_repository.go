package repositories

import (
	"context"
	"errors"

	"dronekids/groundcontrol/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// MissionRepository handles mission table lookups and the unlock update.
type MissionRepository struct {
	db *gormlib.DB
}

// NewMissionRepository creates a new mission repository
func NewMissionRepository(db *gormlib.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// FindByID returns the mission or nil when it does not exist.
func (r *MissionRepository) FindByID(ctx context.Context, id int64) (*gorm.Mission, error) {
	var mission gorm.Mission

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&mission).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &mission, nil
}

// FindByOrderIndex returns the mission at the given ordering position,
// or nil when the sequence ends there.
func (r *MissionRepository) FindByOrderIndex(ctx context.Context, orderIndex int) (*gorm.Mission, error) {
	var mission gorm.Mission

	err := r.db.WithContext(ctx).
		Where("order_index = ?", orderIndex).
		First(&mission).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &mission, nil
}

// Unlock clears the locked flag on a mission.
func (r *MissionRepository) Unlock(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&gorm.Mission{}).
		Where("id = ?", id).
		Update("locked", false).Error
}
