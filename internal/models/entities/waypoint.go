package entities

// Waypoint is a single point on a mission's reference flight path.
// Waypoints are loaded in bulk and never individually mutated.
type Waypoint struct {
	ID        int64   `db:"id" json:"id"`
	MissionID int64   `db:"mission_id" json:"missionId"`
	X         float64 `db:"x" json:"x"`
	Y         float64 `db:"y" json:"y"`
	Z         float64 `db:"z" json:"z"`
}
