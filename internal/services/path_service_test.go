package services

import (
	"context"
	"errors"
	"testing"

	"dronekids/groundcontrol/internal/common"
	"dronekids/groundcontrol/internal/constants"
	"dronekids/groundcontrol/internal/models/dtos"
	"dronekids/groundcontrol/internal/models/entities"
)

type mockWaypointStore struct {
	inserted  []entities.Waypoint
	waypoints []entities.Waypoint
	findCalls int
	insertErr error
	findErr   error
}

func (m *mockWaypointStore) BulkInsert(ctx context.Context, waypoints []entities.Waypoint) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, waypoints...)
	return nil
}

func (m *mockWaypointStore) FindByMissionID(ctx context.Context, missionID int64) ([]entities.Waypoint, error) {
	m.findCalls++
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.waypoints, nil
}

func newPathService(store *mockWaypointStore) *PathService {
	return NewPathService(store, common.NewCacheService(60, 120))
}

func TestSavePath_EmptyBatch(t *testing.T) {
	store := &mockWaypointStore{}
	svc := newPathService(store)

	_, err := svc.SavePath(context.Background(), nil)
	if !errors.Is(err, constants.ErrEmptyPath) {
		t.Errorf("Expected ErrEmptyPath, got %v", err)
	}
	if len(store.inserted) != 0 {
		t.Error("Expected nothing persisted")
	}
}

func TestSavePath_InvalidMissionIDRejectsBatch(t *testing.T) {
	store := &mockWaypointStore{}
	svc := newPathService(store)

	points := []dtos.WaypointInput{
		{MissionID: 1, X: 0, Y: 1, Z: 0},
		{MissionID: 0, X: 1, Y: 1, Z: 0},
	}

	_, err := svc.SavePath(context.Background(), points)
	if !errors.Is(err, constants.ErrInvalidMissionID) {
		t.Errorf("Expected ErrInvalidMissionID, got %v", err)
	}
	if len(store.inserted) != 0 {
		t.Error("Expected no waypoints persisted for a bad batch")
	}
}

func TestSavePath_PersistsAllPoints(t *testing.T) {
	store := &mockWaypointStore{}
	svc := newPathService(store)

	points := []dtos.WaypointInput{
		{MissionID: 1, X: 0, Y: 1, Z: 0},
		{MissionID: 1, X: 1, Y: 1, Z: 0},
		{MissionID: 1, X: 2, Y: 1, Z: 1},
	}

	count, err := svc.SavePath(context.Background(), points)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if count != 3 {
		t.Errorf("Expected count 3, got %d", count)
	}
	if len(store.inserted) != 3 {
		t.Fatalf("Expected 3 waypoints persisted, got %d", len(store.inserted))
	}
	if store.inserted[2].Z != 1 {
		t.Errorf("Expected last waypoint z=1, got %v", store.inserted[2].Z)
	}
}

func TestGetPath_CachesResult(t *testing.T) {
	store := &mockWaypointStore{
		waypoints: []entities.Waypoint{
			{ID: 1, MissionID: 1, X: 0, Y: 1, Z: 0},
			{ID: 2, MissionID: 1, X: 1, Y: 1, Z: 0},
		},
	}
	svc := newPathService(store)

	for i := 0; i < 3; i++ {
		waypoints, err := svc.GetPath(context.Background(), 1)
		if err != nil {
			t.Fatalf("Read %d: expected no error, got %v", i, err)
		}
		if len(waypoints) != 2 {
			t.Fatalf("Read %d: expected 2 waypoints, got %d", i, len(waypoints))
		}
	}

	if store.findCalls != 1 {
		t.Errorf("Expected a single store load, got %d", store.findCalls)
	}
}

func TestSavePath_InvalidatesCachedPath(t *testing.T) {
	store := &mockWaypointStore{
		waypoints: []entities.Waypoint{{ID: 1, MissionID: 1, X: 0, Y: 1, Z: 0}},
	}
	svc := newPathService(store)

	if _, err := svc.GetPath(context.Background(), 1); err != nil {
		t.Fatalf("Warm-up read failed: %v", err)
	}

	points := []dtos.WaypointInput{{MissionID: 1, X: 5, Y: 1, Z: 5}}
	if _, err := svc.SavePath(context.Background(), points); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := svc.GetPath(context.Background(), 1); err != nil {
		t.Fatalf("Re-read failed: %v", err)
	}
	if store.findCalls != 2 {
		t.Errorf("Expected cache invalidation to force a reload, got %d loads", store.findCalls)
	}
}

func TestGetPath_StoreError(t *testing.T) {
	store := &mockWaypointStore{findErr: errors.New("db down")}
	svc := newPathService(store)

	if _, err := svc.GetPath(context.Background(), 1); err == nil {
		t.Error("Expected error from store to propagate")
	}
}
