package dtos

import "time"

// TelemetryResponse is the classification returned for every sample.
type TelemetryResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PathSaveResponse reports how many waypoints a bulk save stored.
type PathSaveResponse struct {
	MissionID int64 `json:"missionId"`
	Saved     int   `json:"saved"`
}

// MissionCompleteResponse is the full debrief payload for one run.
// Message is sanitized for the speech relay; RawMessage keeps the
// original punctuation for on-screen display.
type MissionCompleteResponse struct {
	Score          int     `json:"score"`
	Duration       float64 `json:"duration"`
	DeviationCount int     `json:"deviationCount"`
	CollisionCount int     `json:"collisionCount"`
	Success        bool    `json:"success"`
	Message        string  `json:"message"`
	RawMessage     string  `json:"rawMessage"`
	AudioURL       string  `json:"audioUrl"`
}

// DeviationEntry is one flagged sample on the debrief map.
type DeviationEntry struct {
	ID         int64     `json:"id"`
	DroneID    string    `json:"droneId"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	Z          float64   `json:"z"`
	RotationY  float64   `json:"rotationY"`
	RecordedAt time.Time `json:"recordedAt"`
}

// MissionDeviationsResponse lists a mission's deviations with their count.
type MissionDeviationsResponse struct {
	MissionID  int64            `json:"missionId"`
	Count      int64            `json:"count"`
	Deviations []DeviationEntry `json:"deviations"`
}

// ResultHistoryEntry is one row of a user's completion history.
type ResultHistoryEntry struct {
	MissionID      int64     `json:"missionId"`
	DroneID        string    `json:"droneId"`
	Score          int       `json:"score"`
	Success        bool      `json:"success"`
	TotalTime      float64   `json:"totalTime"`
	DeviationCount int       `json:"deviationCount"`
	CollisionCount int       `json:"collisionCount"`
	CompletedAt    time.Time `json:"completedAt"`
}

// ResultHistoryResponse is the per-user history payload.
type ResultHistoryResponse struct {
	UserID  string               `json:"userId"`
	Results []ResultHistoryEntry `json:"results"`
}
