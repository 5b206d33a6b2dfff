package repositories

import (
	"context"

	"dronekids/groundcontrol/internal/constants"
	"dronekids/groundcontrol/internal/models/gorm"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository tracks per-user mission progress rows.
type ProgressRepository struct {
	db *gormlib.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *gormlib.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// EnsureReady creates a READY progress row for the user+mission pair if
// none exists. Concurrent completions for the same pair resolve to a
// single row via the unique index; an existing row is left untouched.
func (r *ProgressRepository) EnsureReady(ctx context.Context, userID string, missionID int64) error {
	progress := gorm.UserMissionProgress{
		ID:        uuid.New().String(),
		UserID:    userID,
		MissionID: missionID,
		State:     constants.ProgressReady,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "mission_id"}},
			DoNothing: true,
		}).
		Create(&progress).Error
}

// FindByUserAndMission returns the progress row or nil when none exists.
func (r *ProgressRepository) FindByUserAndMission(ctx context.Context, userID string, missionID int64) (*gorm.UserMissionProgress, error) {
	var progress gorm.UserMissionProgress

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND mission_id = ?", userID, missionID).
		First(&progress).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &progress, nil
}
