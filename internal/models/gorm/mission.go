package gorm

import (
	"time"

	"dronekids/groundcontrol/internal/constants"
)

// Mission is the playable mission definition. The completion flow reads
// Type, TotalCoinCount and OrderIndex; the unlock step flips Locked on
// the mission with the next order index.
type Mission struct {
	ID             int64                 `gorm:"column:id;primaryKey;autoIncrement"`
	Name           string                `gorm:"column:name"`
	Type           constants.MissionType `gorm:"column:type"`
	TotalCoinCount int                   `gorm:"column:total_coin_count;default:0"`
	OrderIndex     int                   `gorm:"column:order_index;uniqueIndex"`
	Locked         bool                  `gorm:"column:locked;default:true"`
	CreatedAt      time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Mission) TableName() string {
	return "missions"
}
