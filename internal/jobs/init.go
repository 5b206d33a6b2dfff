package jobs

import (
	"context"
	"time"

	"dronekids/groundcontrol/internal/metrics"
)

// Raw samples stay queryable for a week; long enough for support
// tickets, short enough to keep the table bounded.
const sampleRetention = 7 * 24 * time.Hour

// InitializeJobs initializes and starts all background jobs
func InitializeJobs(ctx context.Context, samples SampleLog, metricsReg *metrics.MetricsRegistry) *RetentionJob {
	retentionJob := NewRetentionJob(samples, sampleRetention, metricsReg)

	// Start scheduled pruning in background
	go retentionJob.RunScheduled(ctx, 1*time.Hour)

	return retentionJob
}
