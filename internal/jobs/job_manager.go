package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"parcelhub/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalledShipmentJob *StalledShipmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the query handler and inactivity window as dependencies.
func NewJobManager(
	stalledHandler queries.GetStalledShipmentsQueryHandler,
	stalledAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalledShipmentJob: NewStalledShipmentJob(stalledHandler, stalledAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalledShipmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start stalled shipment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalledShipmentJob.Stop()
}
