package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stockAlertJob *StockAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up job execution.
func NewJobManager(
	stockLevelsHandler queries.GetStockLevelsQueryHandler,
	checkAlertsHandler commands.CheckAlertsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stockAlertJob: NewStockAlertJob(stockLevelsHandler, checkAlertsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stockAlertJob.Start(); err != nil {
		return fmt.Errorf("failed to start stock alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stockAlertJob.Stop()
}
