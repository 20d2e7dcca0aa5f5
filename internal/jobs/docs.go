// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the fulfillment service.
//
// # Available Jobs
//
// 1. StockAlertJob - Runs every minute to evaluate inventory alert thresholds
// across all active items (low stock, approaching expiration, overstock).
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(stockLevelsHandler, checkAlertsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Per-item alert failures are logged and skipped so one bad item cannot stall
// the sweep. Raised alerts are logged at warn level in addition to the events
// the alert command publishes.
package jobs
