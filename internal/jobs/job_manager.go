package jobs

import (
	"fmt"
	"log/slog"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	drugExpiryJob *DrugExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireDrugsHandler commands.ExpireDrugsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		drugExpiryJob: NewDrugExpiryJob(expireDrugsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.drugExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start drug expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.drugExpiryJob.Stop()
}
