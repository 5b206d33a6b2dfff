package entities

import "time"

// PositionSample is one telemetry report from a drone. Samples form a
// per-drone time series ordered by LoggedAt.
type PositionSample struct {
	ID        int64     `db:"id"`
	DroneID   string    `db:"drone_id"`
	MissionID int64     `db:"mission_id"`
	X         float64   `db:"x"`
	Y         float64   `db:"y"`
	Z         float64   `db:"z"`
	RotationY float64   `db:"rotation_y"`
	LoggedAt  time.Time `db:"logged_at"`
}
