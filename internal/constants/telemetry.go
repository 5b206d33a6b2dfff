package constants

// TelemetryStatus is the classification assigned to a single telemetry sample.
type TelemetryStatus string

const (
	StatusOK            TelemetryStatus = "OK"
	StatusOutOfBounds   TelemetryStatus = "OUT_OF_BOUNDS"
	StatusAltitudeError TelemetryStatus = "ALTITUDE_ERROR"
	StatusCollision     TelemetryStatus = "COLLISION"
	StatusError         TelemetryStatus = "ERROR"
)

// Player-facing status messages. The game client renders these verbatim,
// so they stay in Korean to match the voice feedback clips.
const (
	MsgNormal        = "정상"
	MsgOutOfBounds   = "경로 이탈"
	MsgAltitudeError = "고도 이상"
	MsgCollision     = "충돌 의심"
)

// StatusMessage returns the display message for a classification.
func StatusMessage(status TelemetryStatus) string {
	switch status {
	case StatusOK:
		return MsgNormal
	case StatusOutOfBounds:
		return MsgOutOfBounds
	case StatusAltitudeError:
		return MsgAltitudeError
	case StatusCollision:
		return MsgCollision
	default:
		return ""
	}
}
