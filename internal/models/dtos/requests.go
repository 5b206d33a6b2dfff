package dtos

import "time"

// TelemetryRequest is one position sample from the game client.
// MissionID is a pointer so a missing field can be told apart from zero.
type TelemetryRequest struct {
	DroneID   string     `json:"droneId"`
	MissionID *int64     `json:"missionId"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	Z         float64    `json:"z"`
	RotationY float64    `json:"rotationY"`
	LoggedAt  *time.Time `json:"loggedAt,omitempty"`
}

// WaypointInput is one entry of a reference-path bulk save.
type WaypointInput struct {
	MissionID int64   `json:"missionId"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
}

// MissionCompleteRequest carries the client-measured run summary.
// CollectedCoinCount and PhotoCaptured are only meaningful for their
// respective mission types.
type MissionCompleteRequest struct {
	DroneID            string  `json:"droneId"`
	TotalTime          float64 `json:"totalTime"`
	DeviationCount     int     `json:"deviationCount"`
	CollisionCount     int     `json:"collisionCount"`
	CollectedCoinCount *int    `json:"collectedCoinCount,omitempty"`
	PhotoCaptured      *bool   `json:"photoCaptured,omitempty"`
}

// Coins returns the collected coin count, treating a missing field as zero.
func (r *MissionCompleteRequest) Coins() int {
	if r.CollectedCoinCount == nil {
		return 0
	}
	return *r.CollectedCoinCount
}

// Photo reports whether the client captured the mission photo.
func (r *MissionCompleteRequest) Photo() bool {
	return r.PhotoCaptured != nil && *r.PhotoCaptured
}
