package services

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"dronekids/groundcontrol/internal/constants"
	"dronekids/groundcontrol/internal/logging"
	"dronekids/groundcontrol/internal/metrics"
	"dronekids/groundcontrol/internal/models/dtos"
	"dronekids/groundcontrol/internal/models/entities"
)

// PositionStore is the sample log surface the evaluator needs.
type PositionStore interface {
	Insert(ctx context.Context, sample *entities.PositionSample) error
	LatestBefore(ctx context.Context, droneID string, before time.Time) (*entities.PositionSample, error)
}

// DeviationStore records route deviations.
type DeviationStore interface {
	Insert(ctx context.Context, record *entities.DeviationRecord) error
}

// PathProvider yields the reference path for a mission.
type PathProvider interface {
	GetPath(ctx context.Context, missionID int64) ([]entities.Waypoint, error)
}

// EvaluatorConfig holds the classification thresholds. Defaults match the
// shipped mission maps; each is overridable per environment.
type EvaluatorConfig struct {
	// RouteThreshold is the max distance to the nearest waypoint before a
	// sample counts as off-route.
	RouteThreshold float64
	// AltMin and AltMax bound the acceptable flight height.
	AltMin float64
	AltMax float64
	// RotationDeltaDeg is the max plausible heading change between two
	// consecutive samples. Anything above it reads as an impact.
	RotationDeltaDeg float64
}

// DefaultEvaluatorConfig returns the shipped thresholds.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		RouteThreshold:   2.0,
		AltMin:           0.2,
		AltMax:           3.5,
		RotationDeltaDeg: 45.0,
	}
}

// EvaluatorConfigFromEnv reads threshold overrides from the environment,
// falling back to the defaults for anything unset or unparsable.
func EvaluatorConfigFromEnv() EvaluatorConfig {
	cfg := DefaultEvaluatorConfig()
	cfg.RouteThreshold = envFloat("EVAL_ROUTE_THRESHOLD", cfg.RouteThreshold)
	cfg.AltMin = envFloat("EVAL_ALT_MIN", cfg.AltMin)
	cfg.AltMax = envFloat("EVAL_ALT_MAX", cfg.AltMax)
	cfg.RotationDeltaDeg = envFloat("EVAL_ROTATION_DELTA", cfg.RotationDeltaDeg)
	return cfg
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logging.Warn("Ignoring unparsable threshold override", "key", key, "value", raw)
		return fallback
	}
	return val
}

// Evaluation is the classification result for one sample.
type Evaluation struct {
	Status  constants.TelemetryStatus
	Message string
}

// TelemetryService classifies incoming samples against the mission's
// reference path and the drone's previous sample.
type TelemetryService struct {
	cfg        EvaluatorConfig
	positions  PositionStore
	deviations DeviationStore
	paths      PathProvider
	metrics    *metrics.MetricsRegistry
}

// NewTelemetryService creates a new telemetry evaluator. metricsReg may be
// nil in tests.
func NewTelemetryService(
	cfg EvaluatorConfig,
	positions PositionStore,
	deviations DeviationStore,
	paths PathProvider,
	metricsReg *metrics.MetricsRegistry,
) *TelemetryService {
	return &TelemetryService{
		cfg:        cfg,
		positions:  positions,
		deviations: deviations,
		paths:      paths,
		metrics:    metricsReg,
	}
}

// Evaluate validates, persists, and classifies one telemetry sample.
// Validation failures come back as StatusError with nothing persisted;
// store failures come back as errors.
//
// When several checks fire at once a single status wins, most
// safety-critical first: COLLISION, then ALTITUDE_ERROR, then
// OUT_OF_BOUNDS. Only an OUT_OF_BOUNDS outcome writes a deviation record.
func (s *TelemetryService) Evaluate(ctx context.Context, req *dtos.TelemetryRequest) (*Evaluation, error) {
	if req.DroneID == "" {
		return s.record(&Evaluation{Status: constants.StatusError, Message: constants.MsgDroneIDRequired}), nil
	}
	if req.MissionID == nil {
		return s.record(&Evaluation{Status: constants.StatusError, Message: constants.MsgMissionIDMissing}), nil
	}
	if *req.MissionID <= 0 {
		return s.record(&Evaluation{Status: constants.StatusError, Message: constants.MsgMissionIDInvalid}), nil
	}

	missionID := *req.MissionID
	loggedAt := time.Now().UTC()
	if req.LoggedAt != nil {
		loggedAt = req.LoggedAt.UTC()
	}

	sample := &entities.PositionSample{
		DroneID:   req.DroneID,
		MissionID: missionID,
		X:         req.X,
		Y:         req.Y,
		Z:         req.Z,
		RotationY: req.RotationY,
		LoggedAt:  loggedAt,
	}
	if err := s.positions.Insert(ctx, sample); err != nil {
		return nil, fmt.Errorf("persist sample: %w", err)
	}

	waypoints, err := s.paths.GetPath(ctx, missionID)
	if err != nil {
		return nil, err
	}

	// A mission without waypoints has no corridor to deviate from, so the
	// route check simply does not apply.
	offRoute := false
	if len(waypoints) > 0 {
		offRoute = nearestDistance(sample, waypoints) > s.cfg.RouteThreshold
	}

	badAltitude := sample.Y < s.cfg.AltMin || sample.Y > s.cfg.AltMax

	collision := false
	prev, err := s.positions.LatestBefore(ctx, sample.DroneID, sample.LoggedAt)
	if err != nil {
		return nil, fmt.Errorf("previous sample lookup: %w", err)
	}
	if prev != nil {
		collision = angularDelta(sample.RotationY, prev.RotationY) > s.cfg.RotationDeltaDeg
	}

	status := constants.StatusOK
	switch {
	case collision:
		status = constants.StatusCollision
	case badAltitude:
		status = constants.StatusAltitudeError
	case offRoute:
		status = constants.StatusOutOfBounds
	}

	if status == constants.StatusOutOfBounds {
		record := &entities.DeviationRecord{
			MissionID:  missionID,
			DroneID:    sample.DroneID,
			X:          sample.X,
			Y:          sample.Y,
			Z:          sample.Z,
			RotationY:  sample.RotationY,
			RecordedAt: time.Now().UTC(),
		}
		if err := s.deviations.Insert(ctx, record); err != nil {
			return nil, fmt.Errorf("persist deviation: %w", err)
		}
		if s.metrics != nil {
			s.metrics.DeviationsRecordedTotal.Inc()
		}
	}

	return s.record(&Evaluation{Status: status, Message: constants.StatusMessage(status)}), nil
}

func (s *TelemetryService) record(eval *Evaluation) *Evaluation {
	if s.metrics != nil {
		s.metrics.TelemetrySamplesTotal.WithLabelValues(string(eval.Status)).Inc()
	}
	return eval
}

// nearestDistance is the minimum Euclidean distance from the sample to
// any waypoint. Callers guarantee a non-empty waypoint set.
func nearestDistance(sample *entities.PositionSample, waypoints []entities.Waypoint) float64 {
	min := math.Inf(1)
	for _, wp := range waypoints {
		dx := sample.X - wp.X
		dy := sample.Y - wp.Y
		dz := sample.Z - wp.Z
		if d := math.Sqrt(dx*dx + dy*dy + dz*dz); d < min {
			min = d
		}
	}
	return min
}

// angularDelta is the minimal angle between two headings in degrees.
func angularDelta(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
