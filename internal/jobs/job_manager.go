package jobs

import (
	"fmt"
	"log/slog"

	"quoting/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pricingConfigRefreshJob *PricingConfigRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(configProvider ports.PricingConfigProvider, logger *slog.Logger) *JobManager {
	return &JobManager{
		pricingConfigRefreshJob: NewPricingConfigRefreshJob(configProvider, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pricingConfigRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start pricing config refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pricingConfigRefreshJob.Stop()
}
