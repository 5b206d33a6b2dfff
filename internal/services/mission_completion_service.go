package services

import (
	"context"
	"fmt"
	"time"

	"dronekids/groundcontrol/internal/constants"
	"dronekids/groundcontrol/internal/logging"
	"dronekids/groundcontrol/internal/metrics"
	"dronekids/groundcontrol/internal/models/dtos"
	"dronekids/groundcontrol/internal/models/entities"
	gormModels "dronekids/groundcontrol/internal/models/gorm"
)

// MissionStore is the mission lookup/unlock surface the orchestrator needs.
type MissionStore interface {
	FindByID(ctx context.Context, id int64) (*gormModels.Mission, error)
	FindByOrderIndex(ctx context.Context, orderIndex int) (*gormModels.Mission, error)
	Unlock(ctx context.Context, id int64) error
}

// UserStore resolves player accounts.
type UserStore interface {
	FindByID(ctx context.Context, id string) (*gormModels.User, error)
}

// ProgressStore creates progress rows on unlock.
type ProgressStore interface {
	EnsureReady(ctx context.Context, userID string, missionID int64) error
}

// ResultStore persists completion records.
type ResultStore interface {
	Insert(ctx context.Context, result *entities.MissionResult) error
}

// MissionCompletionService scores a finished run, records the result,
// unlocks the next mission on success, and builds the voice feedback.
type MissionCompletionService struct {
	missions MissionStore
	users    UserStore
	progress ProgressStore
	results  ResultStore
	scoring  *ScoringService
	metrics  *metrics.MetricsRegistry
}

// NewMissionCompletionService creates a new completion orchestrator.
// metricsReg may be nil in tests.
func NewMissionCompletionService(
	missions MissionStore,
	users UserStore,
	progress ProgressStore,
	results ResultStore,
	scoring *ScoringService,
	metricsReg *metrics.MetricsRegistry,
) *MissionCompletionService {
	return &MissionCompletionService{
		missions: missions,
		users:    users,
		progress: progress,
		results:  results,
		scoring:  scoring,
		metrics:  metricsReg,
	}
}

// Complete processes one mission-completion request for an authenticated
// user. Unknown missions and users fail before anything is written.
func (s *MissionCompletionService) Complete(ctx context.Context, userID string, missionID int64, req *dtos.MissionCompleteRequest) (*dtos.MissionCompleteResponse, error) {
	mission, err := s.missions.FindByID(ctx, missionID)
	if err != nil {
		return nil, fmt.Errorf("mission lookup: %w", err)
	}
	if mission == nil {
		return nil, fmt.Errorf("%w: %d", constants.ErrMissionNotFound, missionID)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user lookup: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrUserNotFound, userID)
	}

	score, err := s.scoring.Score(mission.Type, req, mission)
	if err != nil {
		return nil, err
	}
	success, err := s.scoring.IsSuccess(mission.Type, req, mission)
	if err != nil {
		return nil, err
	}

	status := constants.ResultFail
	if success {
		status = constants.ResultSuccess
	}

	result := &entities.MissionResult{
		UserID:         userID,
		MissionID:      missionID,
		DroneID:        req.DroneID,
		TotalTime:      req.TotalTime,
		DeviationCount: req.DeviationCount,
		CollisionCount: req.CollisionCount,
		Score:          score,
		Success:        success,
		Status:         status,
		CompletedAt:    time.Now().UTC(),
	}
	if err := s.results.Insert(ctx, result); err != nil {
		return nil, fmt.Errorf("persist result: %w", err)
	}

	if success {
		if err := s.unlockNext(ctx, userID, mission); err != nil {
			return nil, err
		}
	}

	rawMessage := ComposeFeedback(mission.Type, success)

	if s.metrics != nil {
		s.metrics.MissionCompletionsTotal.WithLabelValues(string(status)).Inc()
	}
	logging.Info("Mission completed",
		"user_id", userID,
		"mission_id", missionID,
		"score", score,
		"success", success,
	)

	return &dtos.MissionCompleteResponse{
		Score:          score,
		Duration:       req.TotalTime,
		DeviationCount: req.DeviationCount,
		CollisionCount: req.CollisionCount,
		Success:        success,
		Message:        SanitizeFeedback(rawMessage),
		RawMessage:     rawMessage,
		AudioURL:       FeedbackAudioURL(missionID, success),
	}, nil
}

// unlockNext opens the mission following the completed one, if any, and
// seeds a READY progress row for the user. Replays are harmless: the
// progress insert is conditional on the user+mission pair.
func (s *MissionCompletionService) unlockNext(ctx context.Context, userID string, completed *gormModels.Mission) error {
	next, err := s.missions.FindByOrderIndex(ctx, completed.OrderIndex+1)
	if err != nil {
		return fmt.Errorf("next mission lookup: %w", err)
	}
	if next == nil {
		return nil
	}

	if err := s.missions.Unlock(ctx, next.ID); err != nil {
		return fmt.Errorf("unlock mission %d: %w", next.ID, err)
	}
	if err := s.progress.EnsureReady(ctx, userID, next.ID); err != nil {
		return fmt.Errorf("seed progress for mission %d: %w", next.ID, err)
	}
	return nil
}
