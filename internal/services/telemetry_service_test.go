package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"dronekids/groundcontrol/internal/constants"
	"dronekids/groundcontrol/internal/models/dtos"
	"dronekids/groundcontrol/internal/models/entities"
)

// Mock stores
type mockPositionStore struct {
	inserted  []*entities.PositionSample
	prev      *entities.PositionSample
	insertErr error
	lookupErr error
}

func (m *mockPositionStore) Insert(ctx context.Context, sample *entities.PositionSample) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	sample.ID = int64(len(m.inserted) + 1)
	m.inserted = append(m.inserted, sample)
	return nil
}

func (m *mockPositionStore) LatestBefore(ctx context.Context, droneID string, before time.Time) (*entities.PositionSample, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	return m.prev, nil
}

type mockDeviationStore struct {
	records   []*entities.DeviationRecord
	insertErr error
}

func (m *mockDeviationStore) Insert(ctx context.Context, record *entities.DeviationRecord) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	record.ID = int64(len(m.records) + 1)
	m.records = append(m.records, record)
	return nil
}

type mockPathProvider struct {
	waypoints []entities.Waypoint
	err       error
}

func (m *mockPathProvider) GetPath(ctx context.Context, missionID int64) ([]entities.Waypoint, error) {
	return m.waypoints, m.err
}

func newEvaluator(positions *mockPositionStore, deviations *mockDeviationStore, paths *mockPathProvider) *TelemetryService {
	return NewTelemetryService(DefaultEvaluatorConfig(), positions, deviations, paths, nil)
}

func missionID(id int64) *int64 {
	return &id
}

func sampleRequest(x, y, z, rot float64) *dtos.TelemetryRequest {
	return &dtos.TelemetryRequest{
		DroneID:   "drone-1",
		MissionID: missionID(1),
		X:         x,
		Y:         y,
		Z:         z,
		RotationY: rot,
	}
}

func TestEvaluate_OnRouteReturnsOK(t *testing.T) {
	positions := &mockPositionStore{}
	deviations := &mockDeviationStore{}
	paths := &mockPathProvider{waypoints: []entities.Waypoint{{MissionID: 1, X: 0, Y: 1.5, Z: 0}}}
	svc := newEvaluator(positions, deviations, paths)

	eval, err := svc.Evaluate(context.Background(), sampleRequest(0, 1.5, 0, 0))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if eval.Status != constants.StatusOK {
		t.Errorf("Expected status OK, got %s", eval.Status)
	}
	if eval.Message != constants.MsgNormal {
		t.Errorf("Expected message %q, got %q", constants.MsgNormal, eval.Message)
	}
	if len(positions.inserted) != 1 {
		t.Errorf("Expected exactly one sample persisted, got %d", len(positions.inserted))
	}
	if len(deviations.records) != 0 {
		t.Errorf("Expected no deviation records, got %d", len(deviations.records))
	}
}

func TestEvaluate_OffRouteWritesDeviation(t *testing.T) {
	positions := &mockPositionStore{}
	deviations := &mockDeviationStore{}
	paths := &mockPathProvider{waypoints: []entities.Waypoint{{MissionID: 1, X: 0, Y: 1.5, Z: 0}}}
	svc := newEvaluator(positions, deviations, paths)

	// Distance to the only waypoint is 3.0, past the 2.0 threshold.
	eval, err := svc.Evaluate(context.Background(), sampleRequest(3, 1.5, 0, 0))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if eval.Status != constants.StatusOutOfBounds {
		t.Errorf("Expected status OUT_OF_BOUNDS, got %s", eval.Status)
	}
	if len(deviations.records) != 1 {
		t.Fatalf("Expected one deviation record, got %d", len(deviations.records))
	}

	rec := deviations.records[0]
	if rec.X != 3 || rec.Y != 1.5 || rec.Z != 0 {
		t.Errorf("Deviation record has wrong coordinates: (%v, %v, %v)", rec.X, rec.Y, rec.Z)
	}
	if rec.MissionID != 1 || rec.DroneID != "drone-1" {
		t.Errorf("Deviation record has wrong identifiers: mission=%d drone=%s", rec.MissionID, rec.DroneID)
	}
}

func TestEvaluate_AltitudeOutsideBand(t *testing.T) {
	cases := []struct {
		name string
		y    float64
	}{
		{"too low", 0.1},
		{"too high", 4.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			positions := &mockPositionStore{}
			deviations := &mockDeviationStore{}
			paths := &mockPathProvider{waypoints: []entities.Waypoint{{MissionID: 1, X: 0, Y: 1.5, Z: 0}}}
			svc := newEvaluator(positions, deviations, paths)

			eval, err := svc.Evaluate(context.Background(), sampleRequest(0, tc.y, 0, 0))
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if eval.Status != constants.StatusAltitudeError {
				t.Errorf("Expected status ALTITUDE_ERROR, got %s", eval.Status)
			}
			// Altitude errors never write deviation records, even when the
			// sample is also off route.
			if len(deviations.records) != 0 {
				t.Errorf("Expected no deviation records, got %d", len(deviations.records))
			}
		})
	}
}

func TestEvaluate_RotationJumpIsCollision(t *testing.T) {
	positions := &mockPositionStore{
		prev: &entities.PositionSample{DroneID: "drone-1", RotationY: 10, LoggedAt: time.Now().Add(-time.Second)},
	}
	deviations := &mockDeviationStore{}
	paths := &mockPathProvider{waypoints: []entities.Waypoint{{MissionID: 1, X: 0, Y: 1.5, Z: 0}}}
	svc := newEvaluator(positions, deviations, paths)

	eval, err := svc.Evaluate(context.Background(), sampleRequest(0, 1.5, 0, 90))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if eval.Status != constants.StatusCollision {
		t.Errorf("Expected status COLLISION, got %s", eval.Status)
	}
	if eval.Message != constants.MsgCollision {
		t.Errorf("Expected message %q, got %q", constants.MsgCollision, eval.Message)
	}
}

func TestEvaluate_RotationDeltaWrapsAround(t *testing.T) {
	// 350 to 20 degrees is a 30 degree turn, not 330.
	positions := &mockPositionStore{
		prev: &entities.PositionSample{DroneID: "drone-1", RotationY: 350, LoggedAt: time.Now().Add(-time.Second)},
	}
	deviations := &mockDeviationStore{}
	paths := &mockPathProvider{waypoints: []entities.Waypoint{{MissionID: 1, X: 0, Y: 1.5, Z: 0}}}
	svc := newEvaluator(positions, deviations, paths)

	eval, err := svc.Evaluate(context.Background(), sampleRequest(0, 1.5, 0, 20))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if eval.Status != constants.StatusOK {
		t.Errorf("Expected status OK, got %s", eval.Status)
	}
}

func TestEvaluate_CollisionTakesPrecedence(t *testing.T) {
	// Off route, outside the altitude band, and a rotation jump all at
	// once: collision wins and no deviation record is written.
	positions := &mockPositionStore{
		prev: &entities.PositionSample{DroneID: "drone-1", RotationY: 0, LoggedAt: time.Now().Add(-time.Second)},
	}
	deviations := &mockDeviationStore{}
	paths := &mockPathProvider{waypoints: []entities.Waypoint{{MissionID: 1, X: 0, Y: 1.5, Z: 0}}}
	svc := newEvaluator(positions, deviations, paths)

	eval, err := svc.Evaluate(context.Background(), sampleRequest(10, 5.0, 0, 180))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if eval.Status != constants.StatusCollision {
		t.Errorf("Expected status COLLISION, got %s", eval.Status)
	}
	if len(deviations.records) != 0 {
		t.Errorf("Expected no deviation records, got %d", len(deviations.records))
	}
}

func TestEvaluate_NoWaypointsSkipsRouteCheck(t *testing.T) {
	positions := &mockPositionStore{}
	deviations := &mockDeviationStore{}
	paths := &mockPathProvider{waypoints: []entities.Waypoint{}}
	svc := newEvaluator(positions, deviations, paths)

	eval, err := svc.Evaluate(context.Background(), sampleRequest(100, 1.5, 100, 0))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if eval.Status != constants.StatusOK {
		t.Errorf("Expected status OK with no reference path, got %s", eval.Status)
	}
}

func TestEvaluate_ValidationFailuresPersistNothing(t *testing.T) {
	cases := []struct {
		name    string
		req     *dtos.TelemetryRequest
		message string
	}{
		{
			"missing droneId",
			&dtos.TelemetryRequest{MissionID: missionID(1)},
			constants.MsgDroneIDRequired,
		},
		{
			"missing missionId",
			&dtos.TelemetryRequest{DroneID: "drone-1"},
			constants.MsgMissionIDMissing,
		},
		{
			"non-positive missionId",
			&dtos.TelemetryRequest{DroneID: "drone-1", MissionID: missionID(0)},
			constants.MsgMissionIDInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			positions := &mockPositionStore{}
			deviations := &mockDeviationStore{}
			svc := newEvaluator(positions, deviations, &mockPathProvider{})

			eval, err := svc.Evaluate(context.Background(), tc.req)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if eval.Status != constants.StatusError {
				t.Errorf("Expected status ERROR, got %s", eval.Status)
			}
			if eval.Message != tc.message {
				t.Errorf("Expected message %q, got %q", tc.message, eval.Message)
			}
			if len(positions.inserted) != 0 {
				t.Errorf("Expected no samples persisted, got %d", len(positions.inserted))
			}
			if len(deviations.records) != 0 {
				t.Errorf("Expected no deviation records, got %d", len(deviations.records))
			}
		})
	}
}

func TestEvaluate_StoreFailurePropagates(t *testing.T) {
	positions := &mockPositionStore{insertErr: errors.New("connection reset")}
	svc := newEvaluator(positions, &mockDeviationStore{}, &mockPathProvider{})

	_, err := svc.Evaluate(context.Background(), sampleRequest(0, 1.5, 0, 0))
	if err == nil {
		t.Fatal("Expected an error when the sample insert fails")
	}
}

func TestEvaluate_UsesSuppliedTimestamp(t *testing.T) {
	loggedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	positions := &mockPositionStore{}
	svc := newEvaluator(positions, &mockDeviationStore{}, &mockPathProvider{})

	req := sampleRequest(0, 1.5, 0, 0)
	req.LoggedAt = &loggedAt

	if _, err := svc.Evaluate(context.Background(), req); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !positions.inserted[0].LoggedAt.Equal(loggedAt) {
		t.Errorf("Expected sample logged at %v, got %v", loggedAt, positions.inserted[0].LoggedAt)
	}
}

func TestAngularDelta(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{10, 90, 80},
		{90, 10, 80},
		{350, 20, 30},
		{0, 180, 180},
		{0, 360, 0},
	}

	for _, tc := range cases {
		if got := angularDelta(tc.a, tc.b); got != tc.want {
			t.Errorf("angularDelta(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
