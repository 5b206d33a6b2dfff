package constants

import "errors"

var (
	ErrMissionNotFound        = errors.New("mission not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrUnsupportedMissionType = errors.New("unsupported mission type")
	ErrEmptyPath              = errors.New("reference path must contain at least one waypoint")
	ErrInvalidMissionID       = errors.New("missionId must be a positive value")
)

const (
	MsgInternalError    = "An unexpected error occurred"
	MsgDroneIDRequired  = "droneId is required"
	MsgMissionIDMissing = "missionId is required"
	MsgMissionIDInvalid = "missionId must be a positive value"
)
