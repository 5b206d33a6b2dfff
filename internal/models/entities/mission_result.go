package entities

import (
	"time"

	"dronekids/groundcontrol/internal/constants"
)

// MissionResult is the append-only record of one completion attempt.
type MissionResult struct {
	ID             int64                         `db:"id"`
	UserID         string                        `db:"user_id"`
	MissionID      int64                         `db:"mission_id"`
	DroneID        string                        `db:"drone_id"`
	TotalTime      float64                       `db:"total_time"`
	DeviationCount int                           `db:"deviation_count"`
	CollisionCount int                           `db:"collision_count"`
	Score          int                           `db:"score"`
	Success        bool                          `db:"success"`
	Status         constants.MissionResultStatus `db:"status"`
	CompletedAt    time.Time                     `db:"completed_at"`
}
