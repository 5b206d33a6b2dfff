package services

import (
	"fmt"
	"math"

	"dronekids/groundcontrol/internal/constants"
	"dronekids/groundcontrol/internal/models/dtos"
	gormModels "dronekids/groundcontrol/internal/models/gorm"
)

// ScoringStrategy bundles the score formula and success rule for one
// mission type. Both are pure; adding a mission type means adding one
// table entry.
type ScoringStrategy struct {
	Score   func(result *dtos.MissionCompleteRequest, mission *gormModels.Mission) int
	Success func(result *dtos.MissionCompleteRequest, mission *gormModels.Mission) bool
}

var scoringStrategies = map[constants.MissionType]ScoringStrategy{
	constants.MissionTypeCoin: {
		Score: func(r *dtos.MissionCompleteRequest, m *gormModels.Mission) int {
			return clampScore(r.Coins()*10 - int(math.Floor(r.TotalTime*0.5)))
		},
		Success: func(r *dtos.MissionCompleteRequest, m *gormModels.Mission) bool {
			return r.Coins() == m.TotalCoinCount
		},
	},
	constants.MissionTypeObstacle: {
		Score: func(r *dtos.MissionCompleteRequest, m *gormModels.Mission) int {
			return clampScore(100 - r.DeviationCount*10 - r.CollisionCount*10 - int(math.Floor(r.TotalTime)))
		},
		Success: func(r *dtos.MissionCompleteRequest, m *gormModels.Mission) bool {
			return r.CollisionCount < 3
		},
	},
	constants.MissionTypePhoto: {
		// A clean flight earns full marks, any deviation costs 20.
		Score: func(r *dtos.MissionCompleteRequest, m *gormModels.Mission) int {
			if r.DeviationCount == 0 {
				return 100
			}
			return 80
		},
		Success: func(r *dtos.MissionCompleteRequest, m *gormModels.Mission) bool {
			return r.Photo()
		},
	},
}

// ScoringService applies the per-type scoring rules.
type ScoringService struct{}

// NewScoringService creates a new scoring service
func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Score computes the [0,100] score for a completed run.
func (s *ScoringService) Score(missionType constants.MissionType, result *dtos.MissionCompleteRequest, mission *gormModels.Mission) (int, error) {
	strategy, ok := scoringStrategies[missionType]
	if !ok {
		return 0, fmt.Errorf("%w: %q", constants.ErrUnsupportedMissionType, missionType)
	}
	return strategy.Score(result, mission), nil
}

// IsSuccess applies the success rule for a completed run.
func (s *ScoringService) IsSuccess(missionType constants.MissionType, result *dtos.MissionCompleteRequest, mission *gormModels.Mission) (bool, error) {
	strategy, ok := scoringStrategies[missionType]
	if !ok {
		return false, fmt.Errorf("%w: %q", constants.ErrUnsupportedMissionType, missionType)
	}
	return strategy.Success(result, mission), nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
