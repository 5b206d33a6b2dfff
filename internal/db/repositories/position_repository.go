package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dronekids/groundcontrol/internal/constants"
	"dronekids/groundcontrol/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// PositionRepository is the append-only log of telemetry samples.
type PositionRepository struct {
	db *sqlx.DB
}

func NewPositionRepository(db *sqlx.DB) *PositionRepository {
	return &PositionRepository{db}
}

func (r *PositionRepository) Insert(ctx context.Context, sample *entities.PositionSample) error {
	return r.db.QueryRowxContext(ctx, constants.InsertPositionSample,
		sample.DroneID,
		sample.MissionID,
		sample.X,
		sample.Y,
		sample.Z,
		sample.RotationY,
		sample.LoggedAt,
	).StructScan(sample)
}

// LatestBefore returns the most recent sample for a drone strictly before
// the given time, or nil when the drone has no earlier samples.
func (r *PositionRepository) LatestBefore(ctx context.Context, droneID string, before time.Time) (*entities.PositionSample, error) {
	var sample entities.PositionSample

	err := r.db.QueryRowxContext(ctx, constants.GetLatestSampleBefore, droneID, before).StructScan(&sample)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &sample, nil
}

// DeleteOlderThan prunes samples past the retention window. Deviation
// records are kept; only the raw sample log is trimmed.
func (r *PositionRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, constants.DeleteSamplesOlderThan, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
