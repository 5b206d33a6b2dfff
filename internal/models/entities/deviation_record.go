package entities

import "time"

// DeviationRecord is written when a sample is classified as a route
// deviation. Append-only; the debrief screen reads these back per mission.
type DeviationRecord struct {
	ID         int64     `db:"id"`
	MissionID  int64     `db:"mission_id"`
	DroneID    string    `db:"drone_id"`
	X          float64   `db:"x"`
	Y          float64   `db:"y"`
	Z          float64   `db:"z"`
	RotationY  float64   `db:"rotation_y"`
	RecordedAt time.Time `db:"recorded_at"`
}
