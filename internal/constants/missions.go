package constants

// MissionType selects the scoring and success rules for a mission.
type MissionType string

const (
	MissionTypeCoin     MissionType = "COIN"
	MissionTypeObstacle MissionType = "OBSTACLE"
	MissionTypePhoto    MissionType = "PHOTO"
)

// MissionResultStatus is the persisted outcome of a completion attempt.
type MissionResultStatus string

const (
	ResultSuccess MissionResultStatus = "SUCCESS"
	ResultFail    MissionResultStatus = "FAIL"
)

// ProgressState tracks a user's standing on a mission.
type ProgressState string

const (
	ProgressLocked     ProgressState = "LOCKED"
	ProgressReady      ProgressState = "READY"
	ProgressInProgress ProgressState = "IN_PROGRESS"
	ProgressCompleted  ProgressState = "COMPLETED"
)

// UserStatus is the soft-delete flag on user accounts.
type UserStatus string

const (
	UserActive   UserStatus = "ACTIVE"
	UserInactive UserStatus = "INACTIVE"
	UserDeleted  UserStatus = "DELETED"
)

// Pre-recorded voice clip URLs. The speech relay serves these directly;
// the backend only picks which one to send back.
const (
	AudioURLSuccess = "https://cdn.dronekids.io/audio/common/success.mp3"
	AudioURLFailure = "https://cdn.dronekids.io/audio/common/failure.mp3"
)

// MissionFailureAudioURLs maps the missions that shipped with their own
// failure narration. Anything else falls back to AudioURLFailure.
var MissionFailureAudioURLs = map[int64]string{
	1: "https://cdn.dronekids.io/audio/missions/1/failure.mp3",
	2: "https://cdn.dronekids.io/audio/missions/2/failure.mp3",
	3: "https://cdn.dronekids.io/audio/missions/3/failure.mp3",
}
