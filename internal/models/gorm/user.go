package gorm

import (
	"time"

	"dronekids/groundcontrol/internal/constants"
)

type User struct {
	ID        string               `gorm:"column:id;primaryKey;type:uuid"`
	Nickname  string               `gorm:"column:nickname"`
	Email     *string              `gorm:"column:email;uniqueIndex"`
	Status    constants.UserStatus `gorm:"column:status;default:ACTIVE"`
	CreatedAt time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time            `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Progress []UserMissionProgress `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// UserMissionProgress tracks a user's standing on a single mission.
// One row per user+mission pair; the unique index backs the idempotent
// create on mission unlock.
type UserMissionProgress struct {
	ID        string                  `gorm:"column:id;primaryKey;type:uuid"`
	UserID    string                  `gorm:"column:user_id;type:uuid;uniqueIndex:idx_user_mission"`
	MissionID int64                   `gorm:"column:mission_id;uniqueIndex:idx_user_mission"`
	State     constants.ProgressState `gorm:"column:state;default:LOCKED"`
	CreatedAt time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time               `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	User User `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (UserMissionProgress) TableName() string {
	return "user_mission_progress"
}
