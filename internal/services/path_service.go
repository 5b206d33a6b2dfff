package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dronekids/groundcontrol/internal/common"
	"dronekids/groundcontrol/internal/constants"
	"dronekids/groundcontrol/internal/models/dtos"
	"dronekids/groundcontrol/internal/models/entities"

	"golang.org/x/sync/singleflight"
)

const pathCacheTTL = 5 * time.Minute

// WaypointStore is the persistence surface the path service needs.
type WaypointStore interface {
	BulkInsert(ctx context.Context, waypoints []entities.Waypoint) error
	FindByMissionID(ctx context.Context, missionID int64) ([]entities.Waypoint, error)
}

// PathService owns mission reference paths. Reads go through the cache
// because every telemetry sample needs the full waypoint set; the
// singleflight group collapses concurrent loads for the same mission.
type PathService struct {
	store WaypointStore
	cache common.CacheInterface
	group singleflight.Group
}

// NewPathService creates a new path service
func NewPathService(store WaypointStore, cache common.CacheInterface) *PathService {
	return &PathService{store: store, cache: cache}
}

// SavePath validates and stores a reference-path batch. An empty batch or
// any entry with a non-positive missionId rejects the whole batch.
func (s *PathService) SavePath(ctx context.Context, points []dtos.WaypointInput) (int, error) {
	if len(points) == 0 {
		return 0, constants.ErrEmptyPath
	}

	waypoints := make([]entities.Waypoint, len(points))
	for i, p := range points {
		if p.MissionID <= 0 {
			return 0, fmt.Errorf("waypoint %d: %w", i, constants.ErrInvalidMissionID)
		}
		waypoints[i] = entities.Waypoint{
			MissionID: p.MissionID,
			X:         p.X,
			Y:         p.Y,
			Z:         p.Z,
		}
	}

	if err := s.store.BulkInsert(ctx, waypoints); err != nil {
		return 0, fmt.Errorf("save reference path: %w", err)
	}

	for _, p := range points {
		s.cache.Delete(pathCacheKey(p.MissionID))
	}

	return len(waypoints), nil
}

// GetPath returns the reference path for a mission, from cache when warm.
func (s *PathService) GetPath(ctx context.Context, missionID int64) ([]entities.Waypoint, error) {
	key := pathCacheKey(missionID)

	if val, found := s.cache.Get(key); found {
		if waypoints, err := decodeWaypoints(val); err == nil {
			return waypoints, nil
		}
		// Unreadable cache entry, fall through to a fresh load.
		s.cache.Delete(key)
	}

	val, err, _ := s.group.Do(key, func() (interface{}, error) {
		waypoints, err := s.store.FindByMissionID(ctx, missionID)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, waypoints, pathCacheTTL)
		return waypoints, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load reference path: %w", err)
	}

	return val.([]entities.Waypoint), nil
}

func pathCacheKey(missionID int64) string {
	return fmt.Sprintf("%s%d", constants.CachePrefixMissionPath, missionID)
}

// decodeWaypoints handles both cache backends: the in-memory cache hands
// back the slice itself, Redis hands back generic decoded JSON.
func decodeWaypoints(val interface{}) ([]entities.Waypoint, error) {
	if waypoints, ok := val.([]entities.Waypoint); ok {
		return waypoints, nil
	}

	raw, err := json.Marshal(val)
	if err != nil {
		return nil, err
	}

	var waypoints []entities.Waypoint
	if err := json.Unmarshal(raw, &waypoints); err != nil {
		return nil, err
	}
	return waypoints, nil
}
