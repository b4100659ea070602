// Package jobs provides scheduled background tasks for the quoting engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the quoting service.
//
// # Available Jobs
//
// 1. PricingConfigRefreshJob - Runs every ten minutes to discard and re-warm
// the cached pricing configuration, picking up edits made outside the API.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(configProvider, logger)
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
// A failed refresh is logged and retried on the next tick; quoting keeps
// serving the previously cached configuration in the meantime.
package jobs
