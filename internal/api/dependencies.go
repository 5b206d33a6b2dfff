package api

import (
	"dronekids/groundcontrol/internal/common"
	"dronekids/groundcontrol/internal/db"
	"dronekids/groundcontrol/internal/db/repositories"
	"dronekids/groundcontrol/internal/metrics"
	"dronekids/groundcontrol/internal/services"
)

type Repositories struct {
	Positions  *repositories.PositionRepository
	Waypoints  *repositories.WaypointRepository
	Deviations *repositories.DeviationRepository
	Results    *repositories.MissionResultRepository
	Missions   *repositories.MissionRepository
	Users      *repositories.UserRepositoryGORM
	Progress   *repositories.ProgressRepository
}

type Services struct {
	Cache      common.CacheInterface
	Paths      *services.PathService
	Telemetry  *services.TelemetryService
	Scoring    *services.ScoringService
	Completion *services.MissionCompletionService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Positions:  repositories.NewPositionRepository(db.DB),
		Waypoints:  repositories.NewWaypointRepository(db.DB),
		Deviations: repositories.NewDeviationRepository(db.DB),
		Results:    repositories.NewMissionResultRepository(db.DB),
		Missions:   repositories.NewMissionRepository(db.PgDB),
		Users:      repositories.NewUserRepositoryGORM(db.PgDB),
		Progress:   repositories.NewProgressRepository(db.PgDB),
	}

	cacheSvc := common.NewCacheFromEnv()
	pathSvc := services.NewPathService(repos.Waypoints, cacheSvc)
	scoringSvc := services.NewScoringService()

	svcs := &Services{
		Cache:   cacheSvc,
		Paths:   pathSvc,
		Scoring: scoringSvc,
		Telemetry: services.NewTelemetryService(
			services.EvaluatorConfigFromEnv(),
			repos.Positions,
			repos.Deviations,
			pathSvc,
			metricsReg,
		),
		Completion: services.NewMissionCompletionService(
			repos.Missions,
			repos.Users,
			repos.Progress,
			repos.Results,
			scoringSvc,
			metricsReg,
		),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}
