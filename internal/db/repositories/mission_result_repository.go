package repositories

import (
	"context"

	"dronekids/groundcontrol/internal/constants"
	"dronekids/groundcontrol/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// MissionResultRepository keeps the append-only completion history.
type MissionResultRepository struct {
	db *sqlx.DB
}

func NewMissionResultRepository(db *sqlx.DB) *MissionResultRepository {
	return &MissionResultRepository{db}
}

func (r *MissionResultRepository) Insert(ctx context.Context, result *entities.MissionResult) error {
	return r.db.QueryRowxContext(ctx, constants.InsertMissionResult,
		result.UserID,
		result.MissionID,
		result.DroneID,
		result.TotalTime,
		result.DeviationCount,
		result.CollisionCount,
		result.Score,
		result.Success,
		result.Status,
		result.CompletedAt,
	).StructScan(result)
}

func (r *MissionResultRepository) ListByUser(ctx context.Context, userID string) ([]entities.MissionResult, error) {
	results := []entities.MissionResult{}

	if err := r.db.SelectContext(ctx, &results, constants.GetResultsByUser, userID); err != nil {
		return nil, err
	}

	return results, nil
}
