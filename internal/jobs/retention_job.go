package jobs

import (
	"context"
	"time"

	"dronekids/groundcontrol/internal/logging"
	"dronekids/groundcontrol/internal/metrics"
)

// SampleLog is the pruning surface of the position store.
type SampleLog interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// RetentionJob periodically prunes old position samples. Deviation
// records and mission results are never touched; the raw sample log is
// the only table that grows with every frame of gameplay.
type RetentionJob struct {
	samples   SampleLog
	retention time.Duration
	metrics   *metrics.MetricsRegistry
}

// NewRetentionJob creates a new retention job instance
func NewRetentionJob(samples SampleLog, retention time.Duration, metricsReg *metrics.MetricsRegistry) *RetentionJob {
	return &RetentionJob{
		samples:   samples,
		retention: retention,
		metrics:   metricsReg,
	}
}

// Run executes one pruning pass.
func (j *RetentionJob) Run(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-j.retention)

	pruned, err := j.samples.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	if j.metrics != nil {
		j.metrics.SamplesPrunedTotal.Add(float64(pruned))
	}
	logging.Info("Sample retention pass finished",
		"pruned", pruned,
		"cutoff", cutoff.Format(time.RFC3339),
	)
	return nil
}

// RunScheduled runs pruning passes on the given interval until the
// context is cancelled.
func (j *RetentionJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				logging.Error("Sample retention pass failed", "error", err.Error())
			}
		case <-ctx.Done():
			return
		}
	}
}
