package repositories

import (
	"context"

	"dronekids/groundcontrol/internal/constants"
	"dronekids/groundcontrol/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// DeviationRepository is the append-only log of route deviations.
type DeviationRepository struct {
	db *sqlx.DB
}

func NewDeviationRepository(db *sqlx.DB) *DeviationRepository {
	return &DeviationRepository{db}
}

func (r *DeviationRepository) Insert(ctx context.Context, record *entities.DeviationRecord) error {
	return r.db.QueryRowxContext(ctx, constants.InsertDeviationRecord,
		record.MissionID,
		record.DroneID,
		record.X,
		record.Y,
		record.Z,
		record.RotationY,
		record.RecordedAt,
	).StructScan(record)
}

func (r *DeviationRepository) ListByMission(ctx context.Context, missionID int64) ([]entities.DeviationRecord, error) {
	records := []entities.DeviationRecord{}

	if err := r.db.SelectContext(ctx, &records, constants.GetDeviationsByMission, missionID); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *DeviationRepository) CountByMission(ctx context.Context, missionID int64) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, constants.CountDeviationsByMission, missionID)
	return count, err
}
