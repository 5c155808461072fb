package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates the scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingOrdersJob *PendingOrdersJob
}

// NewJobManager creates a job manager wired to the read side.
func NewJobManager(pendingOrdersHandler PendingOrdersHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		pendingOrdersJob: NewPendingOrdersJob(pendingOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending orders job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrdersJob.Stop()
}
