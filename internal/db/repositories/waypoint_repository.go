package repositories

import (
	"context"
	"fmt"

	"dronekids/groundcontrol/internal/constants"
	"dronekids/groundcontrol/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// WaypointRepository stores mission reference paths.
type WaypointRepository struct {
	db *sqlx.DB
}

func NewWaypointRepository(db *sqlx.DB) *WaypointRepository {
	return &WaypointRepository{db}
}

// BulkInsert saves a reference path batch inside one transaction.
// A failing entry rolls back the whole batch, never a prefix.
func (r *WaypointRepository) BulkInsert(ctx context.Context, waypoints []entities.Waypoint) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin path save: %w", err)
	}

	for i := range waypoints {
		wp := &waypoints[i]
		if err := tx.QueryRowxContext(ctx, constants.InsertWaypoint,
			wp.MissionID, wp.X, wp.Y, wp.Z,
		).StructScan(wp); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert waypoint %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func (r *WaypointRepository) FindByMissionID(ctx context.Context, missionID int64) ([]entities.Waypoint, error) {
	waypoints := []entities.Waypoint{}

	if err := r.db.SelectContext(ctx, &waypoints, constants.GetWaypointsByMission, missionID); err != nil {
		return nil, err
	}

	return waypoints, nil
}
